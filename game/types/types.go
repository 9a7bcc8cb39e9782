package types

import "fmt"

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether c lies inside [0,Width) x [0,Height).
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Area returns the number of cells on the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Cell is a grid coordinate. (0,0) is the top-left corner, Y grows downwards.
type Cell struct {
	X, Y int
}

// Add returns the neighbouring cell one step towards d.
func (c Cell) Add(d Direction) Cell {
	v := d.Delta()
	return Cell{X: c.X + v.X, Y: c.Y + v.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Kind tags what owns an occupied cell. It doubles as the color class
// handed to render sinks.
type Kind int

const (
	KindSnake Kind = iota
	KindApple
)

func (k Kind) String() string {
	switch k {
	case KindSnake:
		return "snake"
	case KindApple:
		return "apple"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Collision represents the type of collision that ended a session
type Collision int

const (
	NoCollision Collision = iota
	WallCollision
	SelfCollision
	SnakeCollision // head landed on another snake
)

func (c Collision) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case SnakeCollision:
		return "snake"
	default:
		return fmt.Sprintf("collision(%d)", int(c))
	}
}
