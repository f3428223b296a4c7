package models

// SessionStatus reports whether the active trading window is open.
type SessionStatus string

const (
	SessionOpen   SessionStatus = "OPEN"
	SessionClosed SessionStatus = "CLOSED"
)

// Bias is the locked directional constraint for the current session.
type Bias string

const (
	BiasNeutral Bias = "NEUTRAL"
	BiasBullish Bias = "BULLISH"
	BiasBearish Bias = "BEARISH"
)

// KeyLevels holds the structural levels captured when a bias locks.
type KeyLevels struct {
	Support    float64 `json:"support"`
	Resistance float64 `json:"resistance"`
}

// SessionSnapshot is an immutable copy of the session bias state taken
// at the start of a scoring cycle. Instruction is the human-readable
// directive for the downstream decision collaborator.
type SessionSnapshot struct {
	SessionStatus SessionStatus `json:"session_status"`
	LockedBias    Bias          `json:"locked_bias"`
	KeyLevels     KeyLevels     `json:"key_levels"`
	Instruction   string        `json:"instruction"`
}
