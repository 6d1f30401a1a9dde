package gocube

// Tracker wraps a Cube and reports phase changes as moves are applied.
type Tracker struct {
	cube          *Cube
	lastPhase     Phase
	highestPhase  Phase // Monotonic - never goes backwards
	phaseCallback func(phase Phase, phaseKey string)
}

// NewTracker creates a tracker over a copy of start. A nil start means a
// solved cube.
func NewTracker(start *Cube) *Tracker {
	if start == nil {
		start = NewCube()
	}
	t := &Tracker{cube: start.Clone()}
	t.lastPhase = t.cube.Phase()
	t.highestPhase = t.lastPhase
	return t
}

// SetPhaseCallback sets a callback that fires when a new highest phase is
// reached.
func (t *Tracker) SetPhaseCallback(cb func(phase Phase, phaseKey string)) {
	t.phaseCallback = cb
}

// Reset puts the tracker back on cube c.
func (t *Tracker) Reset(c *Cube) {
	t.cube = c.Clone()
	t.lastPhase = t.cube.Phase()
	t.highestPhase = t.lastPhase
}

// ApplyMove applies a move and checks for phase transitions.
func (t *Tracker) ApplyMove(m Move) {
	t.cube.Apply(m)
	t.checkPhaseTransition()
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

func (t *Tracker) checkPhaseTransition() {
	current := t.cube.Phase()
	t.lastPhase = current

	if current > t.highestPhase {
		t.highestPhase = current
		if t.phaseCallback != nil {
			t.phaseCallback(current, current.String())
		}
	}
}

// CurrentPhase returns the phase after the last move.
func (t *Tracker) CurrentPhase() Phase {
	return t.lastPhase
}

// HighestPhase returns the highest phase reached.
func (t *Tracker) HighestPhase() Phase {
	return t.highestPhase
}

// Progress returns the phase-1 coordinates of the tracked cube.
func (t *Tracker) Progress() Progress {
	return t.cube.Progress()
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}
