package entity

import "testing"

// fixedRand returns the queued values in order, then zeros.
type fixedRand struct {
	vals []int
}

func (r *fixedRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v % n
}

func TestBallMovesByVelocity(t *testing.T) {
	b := NewBall(20, 20)

	ev := b.Update(testW, testH, nil, nil, &fixedRand{})
	if ev != 0 {
		t.Fatalf("unexpected event %b", ev)
	}
	if b.X != 82 || b.Y != 330 {
		t.Errorf("ball at (%d, %d), want (82, 330)", b.X, b.Y)
	}
	if b.VX != 5 || b.VY != 5 {
		t.Errorf("velocity (%d, %d), want (5, 5)", b.VX, b.VY)
	}
}

func TestBallWallBounce(t *testing.T) {
	tests := []struct {
		name   string
		y, vy  int
		wantVY int
	}{
		{"bottom", testH - 22, 5, -5},
		{"top", 3, -5, 5},
		{"inside", 300, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Ball{X: 600, Y: tt.y, W: 20, H: 20, VX: 5, VY: tt.vy}
			ev := b.Update(testW, testH, nil, nil, &fixedRand{})
			if b.VY != tt.wantVY {
				t.Errorf("vy = %d, want %d", b.VY, tt.wantVY)
			}
			if ev.Has(EventWall) != (tt.vy != tt.wantVY) {
				t.Errorf("wall event = %v", ev.Has(EventWall))
			}
		})
	}
}

func TestBallWallBounceStaysFlipped(t *testing.T) {
	b := &Ball{X: 600, Y: testH - 22, W: 20, H: 20, VX: 5, VY: 5}
	b.Update(testW, testH, nil, nil, &fixedRand{})
	b.Update(testW, testH, nil, nil, &fixedRand{})
	if b.VY != -5 {
		t.Errorf("vy = %d after leaving the wall, want -5", b.VY)
	}
}

func TestBallPaddleBounce(t *testing.T) {
	left := NewPaddle(40, 300, 20, 120)
	right := NewPaddle(1220, 300, 20, 120)

	b := &Ball{X: 65, Y: 350, W: 20, H: 20, VX: -10, VY: 0}
	ev := b.Update(testW, testH, left, right, &fixedRand{})
	if b.VX <= 0 {
		t.Errorf("left paddle: vx = %d, want > 0", b.VX)
	}
	if !ev.Has(EventPaddle) {
		t.Error("left paddle: missing paddle event")
	}

	b = &Ball{X: 1195, Y: 350, W: 20, H: 20, VX: 10, VY: 0}
	b.Update(testW, testH, left, right, &fixedRand{})
	if b.VX >= 0 {
		t.Errorf("right paddle: vx = %d, want < 0", b.VX)
	}
}

func TestBallPaddleBounceKeepsDirectionAway(t *testing.T) {
	left := NewPaddle(40, 300, 20, 120)
	// already moving right while still overlapping: stays positive
	b := &Ball{X: 45, Y: 350, W: 20, H: 20, VX: 5, VY: 0}
	b.Update(testW, testH, left, nil, &fixedRand{})
	if b.VX != 5 {
		t.Errorf("vx = %d, want 5", b.VX)
	}
}

func TestBallBothPaddlesRightWins(t *testing.T) {
	left := NewPaddle(100, 300, 50, 120)
	right := NewPaddle(120, 300, 50, 120)

	b := &Ball{X: 120, Y: 350, W: 20, H: 20, VX: 5, VY: 0}
	b.Update(testW, testH, left, right, &fixedRand{})
	if b.VX != -5 {
		t.Errorf("vx = %d, want -5", b.VX)
	}
}

func TestBallResetOnExit(t *testing.T) {
	b := &Ball{X: 0, Y: 325, W: 20, H: 20, VX: -5, VY: 5}
	ev := b.Update(testW, testH, nil, nil, &fixedRand{vals: []int{1, 0}})

	if !ev.Has(EventReset) {
		t.Fatal("missing reset event")
	}
	if b.X != 640 || b.Y != 360 {
		t.Errorf("ball at (%d, %d), want (640, 360)", b.X, b.Y)
	}
	if b.VX != ResetSpeed || b.VY != -ResetSpeed {
		t.Errorf("velocity (%d, %d), want (%d, %d)", b.VX, b.VY, ResetSpeed, -ResetSpeed)
	}
}

func TestBallResetRightEdge(t *testing.T) {
	b := &Ball{X: testW - 2, Y: 325, W: 20, H: 20, VX: 5, VY: 5}
	b.Update(testW, testH, nil, nil, &fixedRand{vals: []int{0, 1}})
	if b.X != testW/2 || b.Y != testH/2 {
		t.Errorf("ball at (%d, %d), want center", b.X, b.Y)
	}
	if b.VX != -ResetSpeed || b.VY != ResetSpeed {
		t.Errorf("velocity (%d, %d)", b.VX, b.VY)
	}
}

func TestBallResetVelocityDomain(t *testing.T) {
	for i := 0; i < 4; i++ {
		b := &Ball{}
		b.Reset(testW, testH, &fixedRand{vals: []int{i & 1, i >> 1}})
		for _, v := range []int{b.VX, b.VY} {
			if v != ResetSpeed && v != -ResetSpeed {
				t.Errorf("velocity component %d not in {-10, 10}", v)
			}
		}
	}
}
