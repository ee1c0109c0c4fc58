package components

import (
	"time"

	cfg "github.com/automoto/arena-duel/config"
	"github.com/yohamta/donburi"
)

// NoWinner marks a match that has not ended yet
const NoWinner = -1

// MatchData stores the current match state.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	ID       string
	State    cfg.MatchStateID
	Fighters [2]*donburi.Entry

	Winner    int           // slot of the winner, NoWinner while running
	HoldTimer time.Duration // time left on the final frame once ended
	Finished  bool          // hold elapsed; the caller should stop the loop

	Frame   int
	Delta   time.Duration // length of the current tick
	Elapsed time.Duration // match time, advanced by each tick's delta
}

var Match = donburi.NewComponentType[MatchData]()

// Opponent returns the slot facing slot.
func Opponent(slot int) int {
	return 1 - slot
}

// Running reports whether the simulation is still live.
func (m *MatchData) Running() bool {
	return m.State == cfg.MatchStateRunning
}

// End moves the match to the ended state with the given winner and starts
// the final hold.
func (m *MatchData) End(winner int) {
	if m.State == cfg.MatchStateEnded {
		return
	}
	m.State = cfg.MatchStateEnded
	m.Winner = winner
	m.HoldTimer = cfg.Match.EndHold
}
