package cipher

// Stage identifies one hop of the signal path through the machine.
type Stage string

const (
	StagePlugboard     Stage = "plugboard"
	StageRotor         Stage = "rotor"
	StageFourth        Stage = "fourth"
	StageReflector     Stage = "reflector"
	StageFourthBack    Stage = "fourth-back"
	StageRotorBack     Stage = "rotor-back"
	StagePlugboardBack Stage = "plugboard-back"
)

// StageEvent describes a single substitution made during one keystroke.
// Wiring carries the active permutation (or the plugboard's swap pairs) at
// the time of the hop, Position the wheel's rotational position. Rotor is
// the index into the rotating chain for StageRotor and StageRotorBack
// events and -1 otherwise.
type StageEvent struct {
	Stage    Stage
	Rotor    int
	In       byte
	Out      byte
	Wiring   string
	Position int
}

// A StageSink receives one event per stage of every keystroke. Sinks are
// pure observers: the machine never reads anything back from them, and a
// machine without a listener behaves identically to one with.
type StageSink interface {
	OnStage(StageEvent)
}

// NopSink discards every event. The machine uses it in place of a nil sink
// so the signal path carries no nil checks.
type NopSink struct{}

func (NopSink) OnStage(StageEvent) {}
