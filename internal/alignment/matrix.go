package alignment

import "math"

// Sentinel marks cells no alignment may end in. It is far below any real
// score but leaves headroom so adding costs to it cannot wrap around.
const Sentinel = math.MinInt32 / 2

// Grid is a dense rows x cols matrix of scores backed by a single slice.
type Grid struct {
	rows, cols int
	cells      []int
}

func newGrid(rows, cols int) Grid {
	return Grid{rows: rows, cols: cols, cells: make([]int, rows*cols)}
}

// Dims returns the number of rows and columns.
func (g *Grid) Dims() (rows, cols int) {
	return g.rows, g.cols
}

// At returns the value at (row, col).
func (g *Grid) At(row, col int) int {
	return g.cells[row*g.cols+col]
}

func (g *Grid) setAt(row, col, value int) {
	g.cells[row*g.cols+col] = value
}

// RowView returns row as a slice sharing the grid's storage.
func (g *Grid) RowView(row int) []int {
	offset := row * g.cols
	return g.cells[offset : offset+g.cols]
}

// Rows returns all rows as views, in order.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.rows)
	for i := range rows {
		rows[i] = g.RowView(i)
	}
	return rows
}

// Matrices holds the three score matrices of one alignment. Cell (i, j)
// scores the best alignment of seq1[:i] against seq2[:j] whose last column
// is a substitution (S), seq1 against a gap (Ix) or seq2 against a gap (Iy).
type Matrices struct {
	S, Ix, Iy Grid
}

func newMatrices(rows, cols int) *Matrices {
	return &Matrices{
		S:  newGrid(rows, cols),
		Ix: newGrid(rows, cols),
		Iy: newGrid(rows, cols),
	}
}

// Dims returns the shared dimensions of the three matrices.
func (m *Matrices) Dims() (rows, cols int) {
	return m.S.Dims()
}

// Best returns the best score at (i, j) over all three matrices and the
// step that produced it, preferring Diagonal, then Up, then Left on ties.
func (m *Matrices) Best(i, j int) (int, AlignDirection) {
	best, dir := m.S.At(i, j), Diagonal
	if v := m.Ix.At(i, j); v > best {
		best, dir = v, Up
	}
	if v := m.Iy.At(i, j); v > best {
		best, dir = v, Left
	}
	return best, dir
}

func max3(a, b, c int) int {
	return max(a, max(b, c))
}

// max returns the maximum of two integers.
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
