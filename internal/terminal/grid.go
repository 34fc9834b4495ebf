package terminal

import (
	"math"

	"spaceaction/internal/game"
)

// Persistence is how much of the previous frame survives into the next one,
// giving moving rects a short trail.
const Persistence = 0.9

// Blank is the channel level below which a cell is drawn as background.
const Blank = 0.02

// Cell is a linear RGB colour in 0..1.
type Cell struct {
	R, G, B float32
}

func (c Cell) Lit() bool {
	return c.R >= Blank || c.G >= Blank || c.B >= Blank
}

// Grid rasterizes canvas rectangles onto a cols x rows character grid.
type Grid struct {
	Cols, Rows int
	CanvasW    float64
	CanvasH    float64
	Cells      []Cell
}

func NewGrid(cols, rows int, canvasW, canvasH float64) *Grid {
	g := &Grid{CanvasW: canvasW, CanvasH: canvasH}
	g.Resize(cols, rows)
	return g
}

// Resize changes the grid size and clears it.
func (g *Grid) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g.Cols, g.Rows = cols, rows
	g.Cells = make([]Cell, cols*rows)
}

func (g *Grid) At(col, row int) Cell { return g.Cells[row*g.Cols+col] }

func (g *Grid) cellW() float64 { return g.CanvasW / float64(g.Cols) }
func (g *Grid) cellH() float64 { return g.CanvasH / float64(g.Rows) }

// CanvasToCell maps a canvas point to the cell that covers it.
func (g *Grid) CanvasToCell(x, y float64) (int, int) {
	col := int(math.Floor(x / g.cellW()))
	row := int(math.Floor(y / g.cellH()))
	return col, row
}

// CellToCanvas returns the canvas point at the centre of a cell.
func (g *Grid) CellToCanvas(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * g.cellW(), (float64(row) + 0.5) * g.cellH()
}

// Fade scales every cell toward black.
func (g *Grid) Fade(k float32) {
	for i := range g.Cells {
		c := &g.Cells[i]
		c.R *= k
		c.G *= k
		c.B *= k
	}
}

// Paint blends a render buffer of [x, y, w, h, r, g, b, a] records into the
// grid. Any cell a rect touches gets its colour.
func (g *Grid) Paint(buf []float32) {
	cw, ch := g.cellW(), g.cellH()
	for i := 0; i+game.RectStride <= len(buf); i += game.RectStride {
		x, y := float64(buf[i]), float64(buf[i+1])
		w, h := float64(buf[i+2]), float64(buf[i+3])
		col := Cell{buf[i+4], buf[i+5], buf[i+6]}
		a := buf[i+7]

		c0 := max(int(math.Floor(x/cw)), 0)
		r0 := max(int(math.Floor(y/ch)), 0)
		c1 := min(int(math.Ceil((x+w)/cw))-1, g.Cols-1)
		r1 := min(int(math.Ceil((y+h)/ch))-1, g.Rows-1)
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				dst := &g.Cells[r*g.Cols+c]
				dst.R = dst.R*(1-a) + col.R*a
				dst.G = dst.G*(1-a) + col.G*a
				dst.B = dst.B*(1-a) + col.B*a
			}
		}
	}
}
