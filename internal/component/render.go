// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки
type Renderable struct {
	Color         color.RGBA
	Width, Height float32
	Radius        float32 // если > 0, рисуется кругом
	Depth         int
	Alpha         float64
	Scale         float64
	Tint          *color.RGBA
}

// Animation — текущее состояние проигрывания анимации.
type Animation struct {
	Key     string
	Frame   int
	Elapsed float64
}
