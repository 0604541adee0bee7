package plots

// GridShape returns the rows and columns for n panels laid out cols wide.
// Rows round up so an odd panel count still gets a slot.
func GridShape(n, cols int) (rows, c int) {
	if n <= 0 {
		return 0, 0
	}
	if cols <= 0 || cols > n {
		cols = n
	}
	return (n + cols - 1) / cols, cols
}

// ComputeCellSize splits a figure width into cells and derives a cell height
// from the aspect ratio, clamped so dense grids stay legible.
// Rules: width at least minCell; height aspect*width clamped to [minCell, maxCellHeight].
func ComputeCellSize(gridW, cols int, aspect float64) (int, int) {
	const (
		minCell       = 140
		maxCellHeight = 420
	)
	if cols <= 0 {
		cols = 1
	}
	w := gridW / cols
	if w < minCell {
		w = minCell
	}
	h := int(float64(w) * aspect)
	if h < minCell {
		h = minCell
	}
	if h > maxCellHeight {
		h = maxCellHeight
	}
	return w, h
}

// ComputeTitleHeight reserves a band above a grid for its suptitle,
// proportional to the figure width and clamped to [36, 90] pixels.
func ComputeTitleHeight(gridW int) int {
	h := gridW / 24
	if h < 36 {
		h = 36
	}
	if h > 90 {
		h = 90
	}
	return h
}

// cellFontSize scales tick and legend text with the cell width.
func cellFontSize(cellW int) float64 {
	switch {
	case cellW >= 600:
		return 10
	case cellW >= 360:
		return 8
	case cellW >= 220:
		return 7
	default:
		return 6
	}
}
