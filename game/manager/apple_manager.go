package manager

import (
	"gridsnake/game/entity"

	"golang.org/x/exp/rand"
)

// AppleManager owns the live apple set.
type AppleManager struct {
	apples       []*entity.Apple
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewAppleManager(collisionMgr *CollisionManager, seed uint64) *AppleManager {
	return &AppleManager{
		apples:       make([]*entity.Apple, 0),
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// Apples returns the live apples in spawn order.
func (am *AppleManager) Apples() []*entity.Apple {
	return am.apples
}

func (am *AppleManager) Count() int {
	return len(am.apples)
}

// Add registers an apple placed by the caller.
func (am *AppleManager) Add(a *entity.Apple) {
	am.apples = append(am.apples, a)
}

// Kill marks the apple eaten and drops it from the live set. Unknown or
// already removed apples are ignored.
func (am *AppleManager) Kill(a *entity.Apple) {
	a.Kill()
	for i, item := range am.apples {
		if item == a {
			am.apples = append(am.apples[:i], am.apples[i+1:]...)
			return
		}
	}
}

// Mark contributes every live apple's mark to the tick index.
func (am *AppleManager) Mark(idx *entity.Occupancy) {
	for _, a := range am.apples {
		a.Mark(idx)
	}
}

// Spawn places up to n apples with the given bonus on random free cells of
// idx and returns how many were placed. New apples are marked into idx so
// they are not stacked on each other.
func (am *AppleManager) Spawn(idx *entity.Occupancy, n, lengthBonus int) int {
	if n <= 0 {
		return 0
	}
	available := am.collisionMgr.FreeCells(idx)

	placed := 0
	for placed < n && len(available) > 0 {
		i := am.rng.Intn(len(available))
		apple := entity.NewApple(available[i], lengthBonus)
		// remove chosen slot
		available[i] = available[len(available)-1]
		available = available[:len(available)-1]

		apple.Mark(idx)
		am.apples = append(am.apples, apple)
		placed++
	}
	return placed
}

// TopUp spawns the apples missing to reach target.
func (am *AppleManager) TopUp(idx *entity.Occupancy, target, lengthBonus int) int {
	return am.Spawn(idx, target-len(am.apples), lengthBonus)
}
