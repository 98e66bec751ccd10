package component

// Health — компонент здоровья. 0 <= Value <= Max.
type Health struct {
	Value int
	Max   int
}

// Damaged сообщает, получала ли сущность урон.
func (h *Health) Damaged() bool {
	return h.Value < h.Max
}

// Ratio возвращает долю оставшегося здоровья в диапазоне [0, 1].
func (h *Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Value) / float64(h.Max)
}
