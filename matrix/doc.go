// Package matrix offers the dense matrix every lvlalg operation works on.
//
// The matrix package provides:
//
//   - Dense[E], a rectangular row-major matrix bound to its coefficient ring.
//     0×0 and other empty shapes are legal and represent trivial spaces.
//   - Safe accessors (At, Set) that return errors instead of panicking, plus
//     Raw/SetRaw for kernels that work on the flat buffer.
//   - Canonical validators (ValidateSquare, ValidateMulCompatible, ...) that
//     return tagged sentinel errors matched with errors.Is.
//   - Ring-generic reference operations: Add, Sub, Scale, Transpose, Mul and the
//     fused AddProduct/SubProduct, plus Equal and AllClose for tests.
//
// Elements are immutable values: every ring operation returns a fresh element,
// so cells may share values while matrices never share buffers.
//
// See package linalg for the domain-aware operation contract built on top.
package matrix
