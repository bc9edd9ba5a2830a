// SPDX-License-Identifier: MIT

package linalg

import (
	"github.com/katalvlaran/lvlalg/kernel/numeric"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// wrap adopts data (row-major, len rows*cols) as a matrix over rg without copying.
func wrap[E any](rg ring.Ring[E], rows, cols int, data []E) (*matrix.Dense[E], error) {
	d, err := matrix.NewDense[E](rg, 0, 0)
	if err != nil {
		return nil, err
	}
	if err = d.SetRaw(rows, cols, data); err != nil {
		return nil, err
	}

	return d, nil
}

// fromMat adopts a numeric kernel result.
func fromMat[E numeric.Scalar](rg ring.Ring[E], m numeric.Mat[E]) (*matrix.Dense[E], error) {
	return wrap(rg, m.Rows, m.Cols, m.Data)
}
