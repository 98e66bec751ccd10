// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости в пикселях в секунду
type Velocity struct {
	X, Y float64
}

// Body — физическое тело сущности. Тело не выходит за границы мира.
type Body struct {
	Width, Height float64
}

// Direction — направление взгляда
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

// String возвращает суффикс направления для ключей анимаций.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "down"
	}
}

// Delta возвращает единичный вектор направления.
func (d Direction) Delta() (float64, float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 1
	}
}

// Angle возвращает угол оружия в градусах для направления.
func (d Direction) Angle() float64 {
	switch d {
	case DirUp:
		return -90
	case DirLeft:
		return 180
	case DirRight:
		return 0
	default:
		return 90
	}
}
