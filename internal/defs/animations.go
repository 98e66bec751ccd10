// internal/defs/animations.go
package defs

// AnimationDefinition описывает последовательность кадров спрайта.
type AnimationDefinition struct {
	Frames    []string
	FrameRate float64 // кадров в секунду
	Loop      bool
}

// AnimationLibrary is a map of all animations, keyed by animation key.
var AnimationLibrary = buildPlayerAnimations()

// Directions перечисляет суффиксы направлений в ключах анимаций.
var Directions = []string{"up", "down", "left", "right"}

func buildPlayerAnimations() map[string]AnimationDefinition {
	lib := make(map[string]AnimationDefinition)
	for _, dir := range Directions {
		first := "player-" + dir + "-1"
		second := "player-" + dir + "-2"

		lib["player-"+dir] = AnimationDefinition{Frames: []string{first, second}, FrameRate: 8, Loop: true}
		lib["player-idle-"+dir] = AnimationDefinition{Frames: []string{first}, FrameRate: 1}
		lib["player-attack-"+dir] = AnimationDefinition{Frames: []string{first}, FrameRate: 1}
	}
	return lib
}
