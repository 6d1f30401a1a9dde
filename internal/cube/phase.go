package cube

// Phase is how far a cube is from solved in terms of the two-phase method.
// Phases are ordered, so they compare with < and >.
type Phase int

const (
	// PhaseScrambled means corner twist, edge flip or the slice edges are
	// still wrong.
	PhaseScrambled Phase = iota

	// PhaseSubgroup means twist, flip and slice are solved, so the cube can
	// be finished with U, D and half turns of the side faces.
	PhaseSubgroup

	// PhaseSolved means the cube is solved in some orientation.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseSubgroup:
		return "subgroup"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseSubgroup:
		return "Oriented (phase 2 subgroup)"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// Progress holds the phase-1 coordinates of a cube in standard orientation.
type Progress struct {
	Twist int
	Flip  int
	Slice int
}

// Done reports whether all phase-1 coordinates are solved.
func (p Progress) Done() bool {
	return p.Twist == 0 && p.Flip == 0 && p.Slice == 0
}

// GetProgress returns the phase-1 coordinates after uprighting a copy.
func (c *Cube) GetProgress() Progress {
	clone := c.Clone()
	clone.uprightInPlace()
	return Progress{Twist: clone.Twist(), Flip: clone.Flip(), Slice: clone.Slice()}
}

// DetectPhase returns the phase the cube is in.
func (c *Cube) DetectPhase() Phase {
	if c.IsSolved() {
		return PhaseSolved
	}
	if c.GetProgress().Done() {
		return PhaseSubgroup
	}
	return PhaseScrambled
}
