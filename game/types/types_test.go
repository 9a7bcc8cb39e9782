package types

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d, want Direction
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
		{None, None},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			if got := tt.d.Opposite(); got != tt.want {
				t.Errorf("%s.Opposite() = %s, want %s", tt.d, got, tt.want)
			}
			// The opposite vector must cancel out.
			v, o := tt.d.Delta(), tt.d.Opposite().Delta()
			if v.X+o.X != 0 || v.Y+o.Y != 0 {
				t.Errorf("vectors %v and %v do not cancel", v, o)
			}
		})
	}
}

func TestDirectionTurns(t *testing.T) {
	for _, d := range Directions {
		if got := d.TurnLeft().TurnRight(); got != d {
			t.Errorf("%s left then right = %s", d, got)
		}
		if got := d.TurnRight().TurnRight(); got != d.Opposite() {
			t.Errorf("%s two right turns = %s, want %s", d, got, d.Opposite())
		}
	}
}

func TestCellAdd(t *testing.T) {
	c := Cell{X: 5, Y: 5}
	if got := c.Add(Right); got != (Cell{X: 6, Y: 5}) {
		t.Errorf("Add(Right) = %v", got)
	}
	if got := c.Add(Up); got != (Cell{X: 5, Y: 4}) {
		t.Errorf("Add(Up) = %v", got)
	}
	if got := c.Add(None); got != c {
		t.Errorf("Add(None) = %v", got)
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 10, Height: 10}
	tests := []struct {
		c    Cell
		want bool
	}{
		{Cell{0, 0}, true},
		{Cell{9, 9}, true},
		{Cell{10, 5}, false},
		{Cell{5, 10}, false},
		{Cell{-1, 0}, false},
		{Cell{0, -1}, false},
	}
	for _, tt := range tests {
		if got := g.Contains(tt.c); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"up", "Down", " LEFT ", "right"} {
		if _, err := ParseDirection(s); err != nil {
			t.Errorf("ParseDirection(%q): %v", s, err)
		}
	}
	if _, err := ParseDirection("north"); err == nil {
		t.Error("expected error for unknown direction")
	}

	var d Direction
	if err := d.UnmarshalText([]byte("left")); err != nil || d != Left {
		t.Errorf("UnmarshalText = %v, %v", d, err)
	}
}

func TestControlSchemes(t *testing.T) {
	for name, b := range ControlSchemes {
		if err := b.Validate(); err != nil {
			t.Errorf("scheme %s invalid: %v", name, err)
		}
	}

	hjkl, err := LookupScheme("HJKL")
	if err != nil {
		t.Fatal(err)
	}
	if d, ok := hjkl.Lookup("k"); !ok || d != Up {
		t.Errorf("HJKL k = %v, %v; want up", d, ok)
	}
	if _, ok := hjkl.Lookup("w"); ok {
		t.Error("HJKL should not bind w")
	}
	if _, err := LookupScheme("ZQSD"); err == nil {
		t.Error("expected unknown scheme error")
	}
}

func TestResolveBinding(t *testing.T) {
	custom := ControlBinding{Up: "8", Down: "2", Left: "4", Right: "6"}
	b, err := ResolveBinding("WASD", custom)
	if err != nil {
		t.Fatal(err)
	}
	if b != custom {
		t.Errorf("custom binding not preferred: %+v", b)
	}

	dup := ControlBinding{Up: "x", Down: "x", Left: "a", Right: "d"}
	if _, err := ResolveBinding("", dup); err == nil {
		t.Error("expected duplicate key error")
	}
	if _, err := ResolveBinding("", ControlBinding{}); err == nil {
		t.Error("expected error for empty binding")
	}
}

func TestTowards(t *testing.T) {
	c := Cell{X: 3, Y: 3}
	for _, d := range Directions {
		if got := Towards(c, c.Add(d)); got != d {
			t.Errorf("Towards(%v, %v) = %v, want %v", c, c.Add(d), got, d)
		}
	}
	if got := Towards(c, Cell{X: 4, Y: 4}); got != None {
		t.Errorf("diagonal step = %v, want none", got)
	}
}
