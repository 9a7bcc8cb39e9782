package manager

import (
	"fmt"
	"time"

	"gridsnake/game/types"
)

// State is a session lifecycle phase.
type State int

const (
	Initializing State = iota
	Running
	Terminal
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Running:
		return "running"
	case Terminal:
		return "terminal"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// StateManager drives Initializing -> Running -> Terminal. Terminal is
// absorbing.
type StateManager struct {
	state     State
	reason    types.Collision
	culprit   int
	ticks     int
	startTime time.Time
	endTime   time.Time
	now       func() time.Time
}

func NewStateManager(now func() time.Time) *StateManager {
	if now == nil {
		now = time.Now
	}
	return &StateManager{state: Initializing, culprit: -1, now: now}
}

func (sm *StateManager) State() State {
	return sm.state
}

func (sm *StateManager) Running() bool {
	return sm.state == Running
}

// Start moves Initializing to Running. It fails from any other state.
func (sm *StateManager) Start() error {
	if sm.state != Initializing {
		return fmt.Errorf("cannot start from %s", sm.state)
	}
	sm.state = Running
	sm.startTime = sm.now()
	return nil
}

// CountTick records one processed tick.
func (sm *StateManager) CountTick() {
	sm.ticks++
}

func (sm *StateManager) Ticks() int {
	return sm.ticks
}

// Terminate ends a running session. Only the first call while running has
// any effect; it reports whether this call did the transition.
func (sm *StateManager) Terminate(reason types.Collision, culprit int) bool {
	if sm.state != Running {
		return false
	}
	sm.state = Terminal
	sm.reason = reason
	sm.culprit = culprit
	sm.endTime = sm.now()
	return true
}

// Reason returns the collision that ended the session and the index of the
// snake that caused it (-1 while not terminal).
func (sm *StateManager) Reason() (types.Collision, int) {
	return sm.reason, sm.culprit
}

// Duration is the wall time spent running so far, or in total once terminal.
func (sm *StateManager) Duration() time.Duration {
	switch sm.state {
	case Running:
		return sm.now().Sub(sm.startTime)
	case Terminal:
		return sm.endTime.Sub(sm.startTime)
	default:
		return 0
	}
}

func (sm *StateManager) StartTime() time.Time {
	return sm.startTime
}
