// Package input turns frontend key names into game commands.
package input

import (
	"gridsnake/game"
	"gridsnake/game/types"
)

// Action is what a key press asks the frontend to do.
type Action int

const (
	ActionNone Action = iota
	ActionSteer
	ActionPause
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionSteer:
		return "steer"
	case ActionPause:
		return "pause"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

const (
	KeyPause  = "p"
	KeyEscape = "Escape"
)

// Dispatcher maps key names onto the players bound to them. A key bound
// by several players steers all of them.
type Dispatcher struct {
	bindings []types.ControlBinding
	pause    map[string]bool
	quit     map[string]bool
}

func NewDispatcher(bindings []types.ControlBinding) *Dispatcher {
	d := &Dispatcher{
		bindings: bindings,
		pause:    map[string]bool{KeyPause: true, "P": true},
		quit:     map[string]bool{KeyEscape: true, "q": true, "Q": true},
	}
	// keys claimed by a player never pause or quit
	for _, b := range bindings {
		for _, dir := range types.Directions {
			delete(d.pause, b.Key(dir))
			delete(d.quit, b.Key(dir))
		}
	}
	return d
}

// Dispatch resolves key. Steering keys return one command per bound player.
func (d *Dispatcher) Dispatch(key string) (Action, []game.Command) {
	var cmds []game.Command
	for player, b := range d.bindings {
		if dir, ok := b.Lookup(key); ok {
			cmds = append(cmds, game.Command{Player: player, Direction: dir})
		}
	}
	switch {
	case len(cmds) > 0:
		return ActionSteer, cmds
	case d.pause[key]:
		return ActionPause, nil
	case d.quit[key]:
		return ActionQuit, nil
	default:
		return ActionNone, nil
	}
}

// Steerer accepts direction requests, like *game.Session.
type Steerer interface {
	SetDirection(player int, d types.Direction) error
}

// Apply dispatches key and hands any steering commands straight to s. It
// is for frontends that own the tick loop on the same goroutine.
func (d *Dispatcher) Apply(s Steerer, key string) (Action, error) {
	action, cmds := d.Dispatch(key)
	for _, c := range cmds {
		if err := s.SetDirection(c.Player, c.Direction); err != nil {
			return action, err
		}
	}
	return action, nil
}
