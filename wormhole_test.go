package voyager

import "testing"

func TestNewWormHoleValidation(t *testing.T) {
	entry, exit := NewVec2(0, 0), NewVec2(10, 10)
	if _, err := NewWormHole(1, entry, exit, 10, 5); err == nil {
		t.Fatal("t_open >= t_close should be rejected")
	}
	if _, err := NewWormHole(1, entry, exit, 5, 10); err != nil {
		t.Fatalf("valid window rejected: %v", err)
	}
}

func TestWormHoleIsOpen(t *testing.T) {
	wh, err := NewWormHole(1, NewVec2(0, 0), NewVec2(1, 1), 10, 20)
	if err != nil {
		t.Fatalf("NewWormHole: %v", err)
	}
	cases := []struct {
		t    float64
		want bool
	}{
		{9, false},
		{10, true},
		{15, true},
		{20, true},
		{21, false},
	}
	for _, c := range cases {
		if got := wh.IsOpen(c.t); got != c.want {
			t.Errorf("IsOpen(%g) = %v, want %v", c.t, got, c.want)
		}
	}
}

func TestWormHolePositionAtIsStatic(t *testing.T) {
	wh, err := NewWormHole(1, NewVec2(3, 4), NewVec2(9, 9), 0, 1)
	if err != nil {
		t.Fatalf("NewWormHole: %v", err)
	}
	p0 := wh.PositionAt(0)
	p1 := wh.PositionAt(100)
	if p0.X() != p1.X() || p0.Y() != p1.Y() {
		t.Fatalf("PositionAt not static: %v vs %v", p0, p1)
	}
	if p0.X() != 3 || p0.Y() != 4 {
		t.Fatalf("PositionAt should be the entry point, got %v", p0)
	}
}
