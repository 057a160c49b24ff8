package numberutils

import "testing"

func TestToIntWithDefault(t *testing.T) {
	tests := []struct {
		in   string
		def  int
		want int
	}{
		{"5", 8, 5},
		{"", 8, 8},
		{"abc", 8, 8},
		{"-3", 8, -3},
	}
	for _, tt := range tests {
		if got := ToIntWithDefault(tt.in, tt.def); got != tt.want {
			t.Errorf("ToIntWithDefault(%q, %d) = %d, want %d", tt.in, tt.def, got, tt.want)
		}
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(20, 1, 8); got != 8 {
		t.Errorf("ClampInt(20) = %d", got)
	}
	if got := ClampInt(-1, 1, 8); got != 1 {
		t.Errorf("ClampInt(-1) = %d", got)
	}
	if got := ClampInt(4, 1, 8); got != 4 || !IsIntInRange(got, 1, 8) {
		t.Errorf("ClampInt(4) = %d", got)
	}
}
