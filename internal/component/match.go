// internal/component/match.go
package component

// Phase is the coarse match state the input drivers switch on.
type Phase int

const (
	PhasePreGame Phase = iota
	PhasePlaying
	PhasePostGame
)

// Outcome records how the match ended.
type Outcome int

const (
	OutcomeUndecided Outcome = iota
	OutcomePlayerWin
	OutcomeEnemyWin
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerWin:
		return "Player Wins!"
	case OutcomeEnemyWin:
		return "Enemy Wins!"
	case OutcomeDraw:
		return "Draw"
	default:
		return ""
	}
}

// Match holds the global counters owned by the orchestrator.
type Match struct {
	Phase   Phase
	Outcome Outcome

	TimeLeft float64

	PlayerElixir int
	EnemyElixir  int
	ElixirTimer  float64

	FreezeReady    bool
	FreezeCooldown float64
}
