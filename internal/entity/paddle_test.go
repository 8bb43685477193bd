package entity

import "testing"

const (
	testW = 1280
	testH = 720
)

func TestPaddleStepsInsideBounds(t *testing.T) {
	p := NewPaddle(40, 300, 20, 120)

	p.Update(true, false, testH)
	if p.Y != 300-PaddleStep {
		t.Fatalf("up: y = %d, want %d", p.Y, 300-PaddleStep)
	}

	p.Update(false, true, testH)
	if p.Y != 300 {
		t.Fatalf("down: y = %d, want 300", p.Y)
	}
}

func TestPaddleRefusesMovePastEdges(t *testing.T) {
	tests := []struct {
		name     string
		y        int
		up, down bool
		wantY    int
	}{
		{"top edge at zero", 0, true, false, 0},
		{"bottom edge at window height", testH - 120, false, true, testH - 120},
		{"near top overshoots", 10, true, false, 10 - PaddleStep},
		{"near bottom overshoots", testH - 130, false, true, testH - 130 + PaddleStep},
		{"both keys cancel", 300, true, true, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaddle(40, tt.y, 20, 120)
			p.Update(tt.up, tt.down, testH)
			if p.Y != tt.wantY {
				t.Errorf("y = %d, want %d", p.Y, tt.wantY)
			}
		})
	}
}

func TestPaddleRepeatedUpStopsAtTop(t *testing.T) {
	p := NewPaddle(40, 45, 20, 120)
	for i := 0; i < 10; i++ {
		p.MoveUp()
	}
	if p.Y != 0 {
		t.Errorf("y = %d, want 0", p.Y)
	}
}
