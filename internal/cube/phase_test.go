package cube

import "testing"

func TestPhaseDetection(t *testing.T) {
	tests := []struct {
		alg  string
		want Phase
	}{
		{"", PhaseSolved},
		{"x y", PhaseSolved},
		{"U", PhaseSubgroup},
		{"R2 U D' F2", PhaseSubgroup},
		{"R", PhaseScrambled},
		{"R U R' U'", PhaseScrambled},
	}
	for _, tt := range tests {
		if got := New().MustMove(tt.alg).DetectPhase(); got != tt.want {
			t.Errorf("DetectPhase(%q) = %v, want %v", tt.alg, got, tt.want)
		}
	}
}

func TestPhaseOrdering(t *testing.T) {
	if !(PhaseScrambled < PhaseSubgroup && PhaseSubgroup < PhaseSolved) {
		t.Error("phases should be ordered scrambled < subgroup < solved")
	}
	if PhaseSubgroup.String() != "subgroup" {
		t.Errorf("unexpected key %q", PhaseSubgroup.String())
	}
}
