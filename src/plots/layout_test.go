package plots

import "testing"

func TestGridShape(t *testing.T) {
	cases := []struct {
		n, cols          int
		wantRows, wantCs int
	}{
		{4, 2, 2, 2},
		{5, 2, 3, 2},
		{1, 2, 1, 1},
		{0, 2, 0, 0},
		{3, 0, 1, 3},
		{7, 7, 1, 7},
	}
	for _, c := range cases {
		r, cs := GridShape(c.n, c.cols)
		if r != c.wantRows || cs != c.wantCs {
			t.Fatalf("GridShape(%d,%d) = (%d,%d), want (%d,%d)", c.n, c.cols, r, cs, c.wantRows, c.wantCs)
		}
	}
}

func TestComputeCellSizeClamps(t *testing.T) {
	w, h := ComputeCellSize(1400, 2, 0.5)
	if w != 700 || h != 350 {
		t.Fatalf("got %dx%d, want 700x350", w, h)
	}
	w, h = ComputeCellSize(1400, 20, 1)
	if w != 140 || h != 140 {
		t.Fatalf("dense grid should clamp to 140x140; got %dx%d", w, h)
	}
	_, h = ComputeCellSize(3000, 1, 1)
	if h != 420 {
		t.Fatalf("tall cells should clamp to 420; got %d", h)
	}
}

func TestComputeTitleHeight(t *testing.T) {
	if got := ComputeTitleHeight(200); got != 36 {
		t.Fatalf("small figure title height %d, want 36", got)
	}
	if got := ComputeTitleHeight(1440); got != 60 {
		t.Fatalf("title height %d, want 60", got)
	}
	if got := ComputeTitleHeight(10000); got != 90 {
		t.Fatalf("large figure title height %d, want 90", got)
	}
}
