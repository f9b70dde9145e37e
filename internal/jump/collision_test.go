package jump

import "testing"

func TestLanded(t *testing.T) {
	cfg := testConfig()
	// Platform top at 500; feet must land in [500, 525)
	pl := Platform{X: 100, Y: 500}

	tests := []struct {
		name     string
		x, y, vy float64
		expected bool
	}{
		{"falling onto top", 120, 465, 3, true},
		{"feet exactly on top", 120, 460, 3, true},
		{"feet inside tolerance", 120, 484, 3, true},
		{"feet at end of tolerance", 120, 485, 3, false},
		{"feet above platform", 120, 455, 3, false},
		{"rising through platform", 120, 465, -3, false},
		{"zero vertical velocity", 120, 465, 0, false},
		{"overhanging left edge", 70, 465, 3, true},
		{"touching left edge", 60, 465, 3, false},
		{"touching right edge", 185, 465, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Player{X: tc.x, Y: tc.y, VY: tc.vy, W: 40, H: 40}
			if got := Landed(p, pl, cfg); got != tc.expected {
				t.Errorf("Landed() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
