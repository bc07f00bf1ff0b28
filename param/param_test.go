package param

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestSweepEndpoints(t *testing.T) {
	const tol = 1e-5
	for _, n := range []int{1, 3, 4, 16} {
		for _, test := range []struct {
			s     Sweep
			start float32
			end   float32
		}{
			{Full(n), 0, 2 * math32.Pi},
			{Half(n), 0, math32.Pi},
			{Quarter(math32.Pi, n), math32.Pi, 1.5 * math32.Pi},
		} {
			if got := test.s.Angle(0); math32.Abs(got-test.start) > tol {
				t.Errorf("n=%d: got start %v, want %v", n, got, test.start)
			}
			if got := test.s.Angle(n); math32.Abs(got-test.end) > tol {
				t.Errorf("n=%d: got end %v, want %v", n, got, test.end)
			}
			if got := test.s.Fraction(n); got != 1 {
				t.Errorf("n=%d: got last fraction %v, want 1", n, got)
			}
		}
	}
}

func TestSweepSincos(t *testing.T) {
	s := Full(4)
	want := [][2]float32{{0, 1}, {1, 0}, {0, -1}, {-1, 0}, {0, 1}}
	for i, w := range want {
		sin, cos := s.Sincos(i)
		if math32.Abs(sin-w[0]) > 1e-6 || math32.Abs(cos-w[1]) > 1e-6 {
			t.Errorf("sample %d: got (%v,%v), want %v", i, sin, cos, w)
		}
	}
}

func TestLinear(t *testing.T) {
	s := Linear(0, 2, 4)
	for i, want := range []float32{0, 0.5, 1, 1.5, 2} {
		if got := s.At(i); got != want {
			t.Errorf("sample %d: got %v, want %v", i, got, want)
		}
	}
	if got := s.Fraction(2); got != 0.5 {
		t.Errorf("got fraction %v, want 0.5", got)
	}
}

func TestGridForEach(t *testing.T) {
	g := NewGrid(2, 3)
	if g.Len() != 12 || g.Cells() != 6 {
		t.Fatalf("got len %d cells %d, want 12 6", g.Len(), g.Cells())
	}
	n := 0
	g.ForEach(func(ring, seg int) {
		if idx := g.Index(ring, seg); idx != n {
			t.Errorf("(%d,%d): got index %d, want %d", ring, seg, idx, n)
		}
		n++
	})
	if n != g.Len() {
		t.Errorf("visited %d pairs, want %d", n, g.Len())
	}
}

func TestZeroStepsPanics(t *testing.T) {
	for name, fn := range map[string]func(){
		"full":   func() { Full(0) },
		"linear": func() { Linear(0, 1, 0) },
		"grid":   func() { NewGrid(1, 0) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic for zero steps", name)
				}
			}()
			fn()
		}()
	}
}
