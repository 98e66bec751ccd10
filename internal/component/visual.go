// internal/component/visual.go
package component

// DamageFlash указывает, что сущность мигает после урона.
// Альфа уходит к MinAlpha за HalfPeriod и возвращается обратно (Repeat+1) раз.
type DamageFlash struct {
	Timer      float64 // Сколько времени эффект уже активен
	HalfPeriod float64
	Repeat     int
	MinAlpha   float64
}

// Duration возвращает полную длительность вспышки.
func (f *DamageFlash) Duration() float64 {
	return f.HalfPeriod * 2 * float64(f.Repeat+1)
}

// Effect — одноразовый визуальный эффект, который исчезает сам.
type Effect struct {
	StartAlpha float64
	StartScale float64
	EndScale   float64
	Timer      float64 // Сколько времени эффект уже активен
	Duration   float64 // Общая продолжительность эффекта
}
