package plots

import (
	"image"
	"image/color"
	"strings"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/iafilius/fepplots/src/fep"
)

// grid is a multi-panel figure: a suptitle band above rows*cols equally
// sized cells. Tiles are row-major; nil tiles leave their cell blank.
type grid struct {
	Title        string
	Rows, Cols   int
	CellW, CellH int
	Tiles        []image.Image
}

var (
	regularOnce sync.Once
	regularFont *opentype.Font
)

// textFace returns a Go Regular face at size points, falling back to the
// fixed 7x13 bitmap font if the embedded TTF cannot be parsed.
func textFace(size float64) font.Face {
	regularOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			fep.Warnf("parse embedded font: %v; using basic font", err)
			return
		}
		regularFont = f
	})
	if regularFont == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(regularFont, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// composeGrid draws the suptitle and places every tile in its cell.
func composeGrid(g grid) *image.RGBA {
	titleH := 0
	if strings.TrimSpace(g.Title) != "" {
		titleH = ComputeTitleHeight(g.Cols * g.CellW)
	}
	w := g.Cols * g.CellW
	h := titleH + g.Rows*g.CellH
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	if titleH > 0 {
		face := textFace(float64(titleH) * 0.55)
		drawCentered(canvas, g.Title, face, w/2, titleH*3/4, color.Black)
	}
	for i, tile := range g.Tiles {
		if tile == nil || i >= g.Rows*g.Cols {
			continue
		}
		r, c := i/g.Cols, i%g.Cols
		cell := image.Rect(c*g.CellW, titleH+r*g.CellH, (c+1)*g.CellW, titleH+(r+1)*g.CellH)
		fitTile(canvas, cell, tile)
	}
	return canvas
}

// fitTile copies src into cell, resampling only when the sizes differ.
func fitTile(dst draw.Image, cell image.Rectangle, src image.Image) {
	sb := src.Bounds()
	if sb.Size() == cell.Size() {
		draw.Draw(dst, cell, src, sb.Min, draw.Src)
		return
	}
	draw.CatmullRom.Scale(dst, cell, src, sb, draw.Src, nil)
}

// drawCentered draws text with its baseline at y, horizontally centered on cx.
func drawCentered(dst draw.Image, text string, face font.Face, cx, y int, col color.Color) {
	dr := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face}
	tw := dr.MeasureString(text).Ceil()
	dr.Dot = fixed.Point26_6{X: fixed.I(cx - tw/2), Y: fixed.I(y)}
	dr.DrawString(text)
}
