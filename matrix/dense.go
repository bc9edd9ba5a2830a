// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer over any coefficient ring with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Own element storage: Set copies its argument through the ring, outputs never alias inputs.
//
// AI-Hints:
//   - Kernels operate on Raw() directly and hand fresh buffers back through SetRaw.
//   - Elements are immutable values (see package ring); sharing one value between cells is fine.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c); Resize: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlalg/ring"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxResize = "Resize" // method tag used in error wrappers
	ctxSetRaw = "SetRaw" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over the coefficient ring rg.
//   - r,c hold dimensions (rows, cols); zero is legal (0×0 is the trivial space).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[E any] struct {
	rg   ring.Ring[E] // coefficient domain every element belongs to
	r, c int          // row and column counts (>=0)
	data []E          // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates an r×c zero matrix over rg using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation; zero-sized shapes are legal.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate the buffer and fill it with rg.Zero().
//
// Errors:
//   - ErrNilMatrix when rg is nil, ErrBadShape on negative dimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[E any](rg ring.Ring[E], rows, cols int) (*Dense[E], error) {
	if rg == nil {
		return nil, fmt.Errorf("NewDense: nil ring: %w", ErrNilMatrix)
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense[E]{rg: rg, r: rows, c: cols, data: zeroBuffer(rg, rows*cols)}, nil
}

// zeroBuffer allocates n cells holding the ring's zero.
func zeroBuffer[E any](rg ring.Ring[E], n int) []E {
	buf := make([]E, n)
	if n == 0 {
		return buf
	}
	z := rg.Zero()
	for i := range buf {
		buf[i] = z // immutable value; sharing is safe
	}

	return buf
}

// NewDenseFromRows builds a matrix from a slice of equally long rows.
// An empty slice yields a 0×0 matrix. Values are copied through the ring.
//
// Errors:
//   - ErrBadShape for ragged input.
func NewDenseFromRows[E any](rg ring.Ring[E], rows [][]E) (*Dense[E], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(rg, r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d entries, want %d: %w", i, len(rows[i]), c, ErrBadShape)
		}
		for j = 0; j < c; j++ {
			m.data[i*c+j] = rg.Copy(rows[i][j])
		}
	}

	return m, nil
}

// ParseDense builds a matrix from textual entries using rg.Parse.
// Parse failures are reported with their coordinates and wrap ring.ErrParse.
func ParseDense[E any](rg ring.Ring[E], rows [][]string) (*Dense[E], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(rg, r, c)
	if err != nil {
		return nil, err
	}
	var v E
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("ParseDense: row %d has %d entries, want %d: %w", i, len(rows[i]), c, ErrBadShape)
		}
		for j := 0; j < c; j++ {
			if v, err = rg.Parse(rows[i][j]); err != nil {
				return nil, fmt.Errorf("ParseDense(%d,%d): %w", i, j, err)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Identity returns the n×n identity over rg.
func Identity[E any](rg ring.Ring[E], n int) (*Dense[E], error) {
	m, err := NewDense(rg, n, n)
	if err != nil {
		return nil, err
	}
	one := rg.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// Ring returns the coefficient domain of the matrix.
func (m *Dense[E]) Ring() ring.Ring[E] { return m.rg }

// Rows returns the row count. Complexity: O(1).
func (m *Dense[E]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[E]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[E]) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether the matrix has no cells (0×n or n×0).
func (m *Dense[E]) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[E]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// The returned element is shared with the matrix; treat it as immutable.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[E]) At(row, col int) (E, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero E

		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores a copy of v at (row, col) or returns ErrOutOfRange.
//
// Complexity:
//   - Time O(1) plus the ring's Copy cost.
func (m *Dense[E]) Set(row, col int, v E) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = m.rg.Copy(v) // the matrix owns its storage

	return nil
}

// Resize reshapes m to rows×cols and zero-fills it. Previous contents are lost.
// Reuses the backing array when its capacity suffices.
func (m *Dense[E]) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("Dense.%s(%d,%d): %w", ctxResize, rows, cols, ErrBadShape)
	}
	n := rows * cols
	if cap(m.data) >= n {
		m.data = m.data[:n]
		z := m.rg.Zero()
		for i := range m.data {
			m.data[i] = z
		}
	} else {
		m.data = zeroBuffer(m.rg, n)
	}
	m.r, m.c = rows, cols

	return nil
}

// Raw exposes the row-major backing buffer (len == Rows()*Cols()).
// Kernels read it directly; writers must respect element immutability.
func (m *Dense[E]) Raw() []E { return m.data }

// SetRaw adopts data as the new rows×cols row-major contents without copying.
// The caller transfers ownership of data to m.
func (m *Dense[E]) SetRaw(rows, cols int, data []E) error {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return fmt.Errorf("Dense.%s(%d,%d) with %d cells: %w", ctxSetRaw, rows, cols, len(data), ErrBadShape)
	}
	m.r, m.c, m.data = rows, cols, data

	return nil
}

// Clone returns a deep copy (new buffer, same ring).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[E]) Clone() *Dense[E] {
	cp := make([]E, len(m.data))
	for i, v := range m.data {
		cp[i] = m.rg.Copy(v)
	}

	return &Dense[E]{rg: m.rg, r: m.r, c: m.c, data: cp}
}

// String HUMAN-READABLE dump of rows for diagnostics, values rendered by the ring.
// Not for hot paths; intended for logs and debugging.
func (m *Dense[E]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(m.rg.Format(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Complexity: O(r*c).
func (m *Dense[E]) Do(f func(i, j int, v E) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Rows2D returns the contents as a fresh slice of rows (shared element values).
func (m *Dense[E]) Rows2D() [][]E {
	out := make([][]E, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = append([]E(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}
