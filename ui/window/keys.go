package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game/types"
	"gridsnake/input"
)

// keyName translates a raylib key code into the key names control bindings
// use. Unknown keys map to "".
func keyName(key int32) string {
	switch {
	case key == rl.KeyUp:
		return types.KeyArrowUp
	case key == rl.KeyDown:
		return types.KeyArrowDown
	case key == rl.KeyLeft:
		return types.KeyArrowLeft
	case key == rl.KeyRight:
		return types.KeyArrowRight
	case key == rl.KeyEscape:
		return input.KeyEscape
	case key >= rl.KeyA && key <= rl.KeyZ:
		return string(rune('a' + key - rl.KeyA))
	case key >= rl.KeyZero && key <= rl.KeyNine:
		return string(rune('0' + key - rl.KeyZero))
	}
	return ""
}

// pressedKeys drains raylib's key queue for this frame.
func pressedKeys() []string {
	var keys []string
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if name := keyName(key); name != "" {
			keys = append(keys, name)
		}
	}
	return keys
}
