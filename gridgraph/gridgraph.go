package gridgraph

import (
	"github.com/katalvlaran/gps/graph"
)

// forward neighbour offsets; each undirected edge is added once, from the
// cell that precedes the other in row-major order.
var (
	forward4 = [][2]int{{1, 0}, {0, 1}}
	forward8 = [][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// Grid is an immutable 2D grid of cell values and its cell graph.
// Cells[y][x] holds the original input value.
type Grid struct {
	Width, Height int
	Cells         [][]int

	opts  Options
	graph *graph.Undirected
}

// New builds a Grid from a non-empty, rectangular 2D slice, deep-copying it.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
// Complexity: O(W×H×d) time and memory.
func New(values [][]int, opts ...Option) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cells := make([][]int, h)
	for y := range cells {
		cells[y] = append([]int(nil), values[y]...)
	}

	gg := &Grid{
		Width:  w,
		Height: h,
		Cells:  cells,
		opts:   o,
		graph:  graph.NewUndirected(graph.WithCapacity(w * h)),
	}
	for i := 0; i < w*h; i++ {
		gg.graph.Add()
	}
	offsets := forward4
	if o.Conn == Conn8 {
		offsets = forward8
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if gg.InBounds(nx, ny) {
					// both ends were added above
					_, _ = gg.graph.AddEdge(gg.Vertex(x, y), gg.Vertex(nx, ny))
				}
			}
		}
	}

	return gg, nil
}

// Graph returns the cell graph. Callers must not mutate it.
func (gg *Grid) Graph() graph.Graph { return gg.graph }

// Conn returns the grid's connectivity.
func (gg *Grid) Conn() Connectivity { return gg.opts.Conn }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Vertex returns the vertex of cell (x,y), or 0 when out of bounds.
func (gg *Grid) Vertex(x, y int) int {
	if !gg.InBounds(x, y) {
		return 0
	}

	return y*gg.Width + x + 1
}

// Cell returns the coordinates of vertex v.
func (gg *Grid) Cell(v int) (x, y int, ok bool) {
	if v <= 0 || v > gg.Width*gg.Height {
		return 0, 0, false
	}

	return (v - 1) % gg.Width, (v - 1) / gg.Width, true
}

// IsLand reports whether vertex v is an in-bounds land cell.
func (gg *Grid) IsLand(v int) bool {
	x, y, ok := gg.Cell(v)
	return ok && gg.Cells[y][x] >= gg.opts.LandThreshold
}
