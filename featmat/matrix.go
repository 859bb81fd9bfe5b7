package featmat

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidShape indicates non-positive requested dimensions or empty input data.
	ErrInvalidShape = errors.New("featmat: dimensions must be > 0")

	// ErrRagged indicates input rows (or columns) of differing lengths.
	ErrRagged = errors.New("featmat: all rows must have the same length")

	// ErrOutOfRange indicates a row or column index outside the matrix bounds.
	ErrOutOfRange = errors.New("featmat: index out of range")
)

// Matrix is a row-major D×T matrix of float64 feature values.
// d is the feature-dimension count (rows), t the frame count (columns),
// and data holds d*t elements in row-major order.
type Matrix struct {
	d, t int
	data []float64
}

// New creates a d×t Matrix initialized to zeros.
// Returns ErrInvalidShape if d <= 0 or t <= 0.
// Complexity: O(d·t) time and memory.
func New(d, t int) (*Matrix, error) {
	if d <= 0 || t <= 0 {
		return nil, ErrInvalidShape
	}

	return &Matrix{d: d, t: t, data: make([]float64, d*t)}, nil
}

// FromRows builds a Matrix from feature-major data: rows[i][j] is
// feature i at frame j. The input is deep-copied, so later mutation of
// rows does not affect the Matrix.
// Returns ErrInvalidShape on empty input, ErrRagged if row lengths differ.
// Complexity: O(d·t) time and memory.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidShape
	}
	d, t := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != t {
			return nil, ErrRagged
		}
	}
	m := &Matrix{d: d, t: t, data: make([]float64, d*t)}
	for i, row := range rows {
		copy(m.data[i*t:(i+1)*t], row)
	}

	return m, nil
}

// FromColumns builds a Matrix from frame-major data: cols[j][i] is
// feature i at frame j. Convenient when upstream analysis emits one
// feature vector per frame. The input is deep-copied.
// Returns ErrInvalidShape on empty input, ErrRagged if frame vectors
// have differing lengths.
// Complexity: O(d·t) time and memory.
func FromColumns(cols [][]float64) (*Matrix, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, ErrInvalidShape
	}
	t, d := len(cols), len(cols[0])
	for _, col := range cols {
		if len(col) != d {
			return nil, ErrRagged
		}
	}
	m := &Matrix{d: d, t: t, data: make([]float64, d*t)}
	for j, col := range cols {
		for i, v := range col {
			m.data[i*t+j] = v
		}
	}

	return m, nil
}

// Dims returns the feature-dimension count d and the frame count t.
// Complexity: O(1).
func (m *Matrix) Dims() (d, t int) {
	return m.d, m.t
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.d || col < 0 || col >= m.t {
		return 0, fmt.Errorf("featmat: (%d,%d) of %dx%d: %w", row, col, m.d, m.t, ErrOutOfRange)
	}

	return row*m.t + col, nil
}

// At retrieves the value of feature row at frame col.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v to feature row at frame col.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of feature row i across all frames.
// Complexity: O(t).
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.d {
		return nil, fmt.Errorf("featmat: row %d of %d: %w", i, m.d, ErrOutOfRange)
	}
	out := make([]float64, m.t)
	copy(out, m.data[i*m.t:(i+1)*m.t])

	return out, nil
}

// Column returns a copy of the feature vector at frame j.
// Complexity: O(d).
func (m *Matrix) Column(j int) ([]float64, error) {
	if j < 0 || j >= m.t {
		return nil, fmt.Errorf("featmat: column %d of %d: %w", j, m.t, ErrOutOfRange)
	}
	out := make([]float64, m.d)
	for i := 0; i < m.d; i++ {
		out[i] = m.data[i*m.t+j]
	}

	return out, nil
}

// SetColumn assigns the feature vector at frame j.
// Returns ErrOutOfRange on a bad index, ErrRagged on a wrong-length vector.
// Complexity: O(d).
func (m *Matrix) SetColumn(j int, col []float64) error {
	if j < 0 || j >= m.t {
		return fmt.Errorf("featmat: column %d of %d: %w", j, m.t, ErrOutOfRange)
	}
	if len(col) != m.d {
		return fmt.Errorf("featmat: column length %d, want %d: %w", len(col), m.d, ErrRagged)
	}
	for i, v := range col {
		m.data[i*m.t+j] = v
	}

	return nil
}

// Clone returns a deep copy of the Matrix.
// Complexity: O(d·t) time and memory.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Matrix{d: m.d, t: m.t, data: data}
}

// Equal reports whether m and other have identical shape and values.
// NaN values are not equal to anything, matching float64 comparison.
// Complexity: O(d·t).
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.d != other.d || m.t != other.t {
		return false
	}
	for k, v := range m.data {
		if v != other.data[k] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging.
// Complexity: O(d·t).
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.d; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.t; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.t+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
