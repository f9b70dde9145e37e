package core

import "testing"

func TestBoxOverlapsX(t *testing.T) {
	platform := NewBox(100, 500, 85, 15)

	tests := []struct {
		name     string
		x        float64
		expected bool
	}{
		{"centered", 120, true},
		{"overhanging left edge", 70, true},
		{"overhanging right edge", 180, true},
		{"touching left edge", 60, false},
		{"touching right edge", 185, false},
		{"far away", 300, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			player := NewBox(tc.x, 0, 40, 40)
			if got := player.OverlapsX(platform); got != tc.expected {
				t.Errorf("OverlapsX() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxScale(t *testing.T) {
	b := NewBox(200, 300, 85, 15)
	r := b.Scale(0.2, 0.04) // 400x600 world onto 80x24 cells

	if r.X != 40 || r.Y != 12 {
		t.Errorf("Scale() origin = (%d, %d), expected (40, 12)", r.X, r.Y)
	}
	if r.W != 17 {
		t.Errorf("Scale() width = %d, expected 17", r.W)
	}
	// 15 * 0.04 = 0.6 rounds to 1
	if r.H != 1 {
		t.Errorf("Scale() height = %d, expected 1", r.H)
	}

	thin := NewBox(0, 0, 1, 1).Scale(0.01, 0.01)
	if thin.W != 1 || thin.H != 1 {
		t.Errorf("non-empty boxes should cover at least one cell, got %dx%d", thin.W, thin.H)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
