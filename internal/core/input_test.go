package core

import "testing"

func TestParseDirection(t *testing.T) {
	tests := []struct {
		token string
		want  Direction
		ok    bool
	}{
		{"up", DirUp, true},
		{"DOWN", DirDown, true},
		{"Left", DirLeft, true},
		{" right\n", DirRight, true},
		{"exit", DirNone, false},
		{"", DirNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseDirection(tt.token)
			if (err == nil) != tt.ok {
				t.Fatalf("ParseDirection(%q) error = %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestDirectionVector(t *testing.T) {
	for _, d := range Directions {
		dr, dc := d.Vector()
		if dr*dr+dc*dc != 1 {
			t.Errorf("%s vector = (%d, %d), want unit step", d, dr, dc)
		}
		if !d.Valid() {
			t.Errorf("%s should be valid", d)
		}
		parsed, err := ParseDirection(d.String())
		if err != nil || parsed != d {
			t.Errorf("String/Parse round trip failed for %v", d)
		}
	}
	if DirNone.Valid() {
		t.Error("DirNone should not be valid")
	}
}

func TestResolvedSeed(t *testing.T) {
	if got := (RuntimeConfig{Seed: 7}).ResolvedSeed(); got != 7 {
		t.Errorf("ResolvedSeed() = %d, want 7", got)
	}
	if DefaultConfig().ResolvedSeed() == 0 {
		t.Error("unset seed should resolve to a time-based value")
	}
}
