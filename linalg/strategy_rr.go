// SPDX-License-Identifier: MIT

package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlalg/kernel/numeric"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// rrStrategy serves float64 matrices through gonum's LAPACK-backed mat package.
//
// Implementation:
//   - Shares every derived operation with numericStrategy[float64], with the
//     SVD (SVDStandard) and the square solve bound to gonum.
//   - Overrides det, inverse, product, fused update, eigen, symmetric eigen and
//     the full-rank least squares path with direct gonum calls.
//   - gonum panics on zero-length matrices; the engine never passes them here.
//   - Inputs are wrapped without copying (mat.NewDense shares the slice) and
//     only read; results are copied out of gonum's storage.
type rrStrategy struct {
	numericStrategy[float64]
}

var (
	_ Ranker[float64]               = rrStrategy{}
	_ Determinanter[float64]        = rrStrategy{}
	_ Inverter[float64]             = rrStrategy{}
	_ Multiplier[float64]           = rrStrategy{}
	_ RightNullSpacer[float64]      = rrStrategy{}
	_ LeftNullSpacer[float64]       = rrStrategy{}
	_ RightSolver[float64]          = rrStrategy{}
	_ LeftSolver[float64]           = rrStrategy{}
	_ RankProfiler[float64]         = rrStrategy{}
	_ FusedMultiplier[float64]      = rrStrategy{}
	_ SquareSolver[float64]         = rrStrategy{}
	_ EchelonNullSpacer[float64]    = rrStrategy{}
	_ LUFactorizer[float64]         = rrStrategy{}
	_ Eigensolver[float64]          = rrStrategy{}
	_ HermitianEigensolver[float64] = rrStrategy{}
	_ LeastSquarer[float64]         = rrStrategy{}
	_ SVDecomposer[float64]         = rrStrategy{}
)

func newRRStrategy() rrStrategy {
	return rrStrategy{numericStrategy[float64]{
		name:    "gonum",
		rg:      ring.RR{},
		svd:     gonumSVD,
		solveSq: gonumSolve,
	}}
}

// gview wraps a kernel matrix for gonum without copying.
func gview(m numeric.Mat[float64]) *mat.Dense {
	return mat.NewDense(m.Rows, m.Cols, m.Data)
}

// gdense wraps a Dense matrix for gonum without copying.
func gdense(a *matrix.Dense[float64]) *mat.Dense {
	return mat.NewDense(a.Rows(), a.Cols(), a.Raw())
}

// fromGonum copies a gonum matrix (any stride) into a fresh kernel matrix.
func fromGonum(m *mat.Dense) numeric.Mat[float64] {
	raw := m.RawMatrix()
	out := numeric.New[float64](raw.Rows, raw.Cols)
	for i := 0; i < raw.Rows; i++ {
		copy(out.Data[i*raw.Cols:(i+1)*raw.Cols], raw.Data[i*raw.Stride:i*raw.Stride+raw.Cols])
	}

	return out
}

// gonumSVD is the SVDStandard backend: full U and V from LAPACK dgesvd.
func gonumSVD(a numeric.Mat[float64], _ int) (numeric.SVDResult[float64], bool) {
	if !numeric.AllFinite(a) {
		return numeric.SVDResult[float64]{}, false
	}
	var svd mat.SVD
	if !svd.Factorize(gview(a), mat.SVDFull) {
		return numeric.SVDResult[float64]{}, false
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	return numeric.SVDResult[float64]{
		Sigma: svd.Values(nil),
		U:     fromGonum(&u),
		Vt:    fromGonum(&v).Transpose(),
	}, true
}

// gonumSolve solves square a·X = b with gonum's LU; singular or numerically
// singular (condition error) inputs report false.
func gonumSolve(a, b numeric.Mat[float64]) (numeric.Mat[float64], bool) {
	var x mat.Dense
	if err := x.Solve(gview(a), gview(b)); err != nil {
		return numeric.Mat[float64]{}, false
	}
	out := fromGonum(&x)

	return out, numeric.AllFinite(out)
}

func (s rrStrategy) Determinant(_ *Options, a *matrix.Dense[float64]) (float64, error) {
	return mat.Det(gdense(a)), nil
}

func (s rrStrategy) Inverse(_ *Options, a *matrix.Dense[float64]) (*matrix.Dense[float64], bool, error) {
	var inv mat.Dense
	if err := inv.Inverse(gdense(a)); err != nil {
		return nil, false, nil
	}
	out := fromGonum(&inv)
	if !numeric.AllFinite(out) {
		return nil, false, nil
	}
	d, err := fromMat(s.rg, out)

	return d, err == nil, err
}

func (s rrStrategy) Mult(_ *Options, a, b *matrix.Dense[float64]) (*matrix.Dense[float64], error) {
	var c mat.Dense
	c.Mul(gdense(a), gdense(b))

	return fromMat(s.rg, fromGonum(&c))
}

func (s rrStrategy) AddMul(_ *Options, c, a, b *matrix.Dense[float64]) error {
	var t mat.Dense
	t.Mul(gdense(a), gdense(b))
	cv := gdense(c)
	cv.Add(cv, &t)

	return nil
}

func (s rrStrategy) SubMul(_ *Options, c, a, b *matrix.Dense[float64]) error {
	var t mat.Dense
	t.Mul(gdense(a), gdense(b))
	cv := gdense(c)
	cv.Sub(cv, &t)

	return nil
}

func (s rrStrategy) Eigen(_ *Options, a *matrix.Dense[float64], wantVectors bool) ([]complex128, *matrix.Dense[complex128], bool, error) {
	if !numeric.AllFinite(numeric.View(a)) {
		return nil, nil, false, nil
	}
	kind := mat.EigenNone
	if wantVectors {
		kind = mat.EigenRight
	}
	var eig mat.Eigen
	if !eig.Factorize(gdense(a), kind) {
		return nil, nil, false, nil
	}
	vals := eig.Values(nil)
	if !wantVectors {
		return vals, nil, true, nil
	}

	var cv mat.CDense
	eig.VectorsTo(&cv)
	n := a.Rows()
	data := make([]complex128, n*n)
	var i, j int
	for j = 0; j < n; j++ {
		var nrm float64
		for i = 0; i < n; i++ {
			v := cv.At(i, j)
			data[i*n+j] = v
			nrm += real(v)*real(v) + imag(v)*imag(v)
		}
		if nrm = math.Sqrt(nrm); nrm > 0 {
			for i = 0; i < n; i++ {
				data[i*n+j] /= complex(nrm, 0)
			}
		}
	}
	vecs, err := wrap[complex128](ring.CC{}, n, n, data)

	return vals, vecs, err == nil, err
}

func (s rrStrategy) EigenHermitian(_ *Options, a *matrix.Dense[float64], wantVectors bool) ([]float64, *matrix.Dense[float64], bool, error) {
	if !numeric.AllFinite(numeric.View(a)) {
		return nil, nil, false, nil
	}
	// Only the upper triangle of the shared buffer is read.
	sym := mat.NewSymDense(a.Rows(), a.Raw())
	var es mat.EigenSym
	if !es.Factorize(sym, wantVectors) {
		return nil, nil, false, nil
	}
	vals := es.Values(nil)
	if !wantVectors {
		return vals, nil, true, nil
	}
	var v mat.Dense
	es.VectorsTo(&v)
	vecs, err := fromMat(s.rg, fromGonum(&v))

	return vals, vecs, err == nil, err
}

func (s rrStrategy) LeastSquares(o *Options, a, b *matrix.Dense[float64], assumeFullRank bool) (*matrix.Dense[float64], bool, error) {
	if !assumeFullRank {
		return s.numericStrategy.LeastSquares(o, a, b, false)
	}
	// QR for rows ≥ cols, LQ (minimum norm) otherwise; rank deficiency
	// surfaces as a condition error.
	var x mat.Dense
	if err := x.Solve(gdense(a), gdense(b)); err != nil {
		return nil, false, nil
	}
	out := fromGonum(&x)
	if !numeric.AllFinite(out) {
		return nil, false, nil
	}
	d, err := fromMat(s.rg, out)

	return d, err == nil, err
}
