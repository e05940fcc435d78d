// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	// padeDegree is the degree of the diagonal Padé approximant used by
	// Expm after scaling the argument below expmScaleTarget.
	padeDegree      = 6
	expmScaleTarget = 0.5

	// logmSeriesTarget bounds ||A - I|| before the Gregory series is
	// applied; logmSeriesTerms then keeps the truncation error below
	// double-precision rounding.
	logmSeriesTarget = 0.25
	logmSeriesTerms  = 24
	maxSquareRoots   = 48

	sqrtIterations = 64
	sqrtTolerance  = 1e-14
)

// Expm computes the matrix exponential of a square matrix a by scaling
// and squaring with a degree-6 diagonal Padé approximant.
func Expm(a *mat.Dense) (*mat.Dense, error) {
	mustSquareDense("Expm", a)
	n, _ := a.Dims()

	s := 0
	if nrm := mat.Norm(a, math.Inf(1)); nrm > expmScaleTarget {
		s = int(math.Ceil(math.Log2(nrm / expmScaleTarget)))
	}
	scaled := mat.NewDense(n, n, nil)
	scaled.Scale(math.Ldexp(1, -s), a)

	// Diagonal Padé approximant: num = Σ c_k A^k, den = Σ (-c)_k A^k.
	num := eye(n)
	den := eye(n)
	pow := eye(n)
	ck := 1.0
	tmp := mat.NewDense(n, n, nil)
	for k := 1; k <= padeDegree; k++ {
		ck *= float64(padeDegree-k+1) / float64((2*padeDegree-k+1)*k)
		tmp.Mul(pow, scaled)
		pow.Copy(tmp)
		tmp.Scale(ck, pow)
		num.Add(num, tmp)
		if k%2 == 0 {
			den.Add(den, tmp)
		} else {
			den.Sub(den, tmp)
		}
	}

	var x mat.Dense
	if err := x.Solve(den, num); err != nil && !isCondition(err) {
		return nil, &NumericalDomainError{Op: "Expm", Reason: "Padé denominator is singular"}
	}
	out := mat.DenseCopyOf(&x)
	for ; s > 0; s-- {
		tmp.Mul(out, out)
		out.Copy(tmp)
	}
	return out, nil
}

// ExpmSym computes the matrix exponential of a symmetric matrix a by
// eigendecomposition: the eigenvalues are exponentiated and the matrix
// reconstructed by conjugation with the eigenvector basis. Symmetry of a
// is a precondition and is not checked; a non-symmetric input yields an
// undefined result.
func ExpmSym(a *mat.Dense) (*mat.Dense, error) {
	return symEigenApply("ExpmSym", a, func(w float64) (float64, error) {
		return math.Exp(w), nil
	})
}

// Logm computes the principal matrix logarithm of a square matrix a by
// inverse scaling and squaring: Denman–Beavers square-root iterations
// bring the argument into a neighborhood of the identity, where a
// Gregory series evaluates log(I + X); the result is rescaled by the
// number of square roots taken.
//
// The principal logarithm is defined for nonsingular matrices with no
// eigenvalues on the closed negative real axis. Inputs outside that
// domain are reported as *NumericalDomainError.
func Logm(a *mat.Dense) (*mat.Dense, error) {
	mustSquareDense("Logm", a)
	n, _ := a.Dims()

	cur := mat.DenseCopyOf(a)
	s := 0
	for distFromIdentity(cur) > logmSeriesTarget {
		if s == maxSquareRoots {
			return nil, &NumericalDomainError{
				Op:     "Logm",
				Reason: "square-root reduction did not contract; spectrum touches the closed negative real axis",
			}
		}
		root, err := sqrtmDenmanBeavers(cur)
		if err != nil {
			return nil, err
		}
		cur = root
		s++
	}

	// Gregory series on X = cur - I: log(I+X) = Σ (-1)^{k+1} X^k / k.
	x := mat.NewDense(n, n, nil)
	x.Sub(cur, eye(n))
	acc := mat.DenseCopyOf(x)
	pow := mat.DenseCopyOf(x)
	tmp := mat.NewDense(n, n, nil)
	for k := 2; k <= logmSeriesTerms; k++ {
		tmp.Mul(pow, x)
		pow.Copy(tmp)
		coeff := 1 / float64(k)
		if k%2 == 0 {
			coeff = -coeff
		}
		tmp.Scale(coeff, pow)
		acc.Add(acc, tmp)
	}
	acc.Scale(math.Ldexp(1, s), acc)
	return acc, nil
}

// LogmSPD computes the matrix logarithm of a symmetric positive-definite
// matrix a by eigendecomposition. A nonpositive eigenvalue is outside
// the domain and reported as *NumericalDomainError. Symmetry of a is a
// precondition and is not checked.
func LogmSPD(a *mat.Dense) (*mat.Dense, error) {
	return symEigenApply("LogmSPD", a, func(w float64) (float64, error) {
		if w <= 0 {
			return 0, &NumericalDomainError{
				Op:     "LogmSPD",
				Reason: fmt.Sprintf("nonpositive eigenvalue %g; matrix is not positive definite", w),
			}
		}
		return math.Log(w), nil
	})
}

// Expm is the batched form of the package-level Expm.
func (b *Batch) Expm() (*Batch, error) { return b.mapFunc("Expm", Expm) }

// ExpmSym is the batched form of the package-level ExpmSym.
func (b *Batch) ExpmSym() (*Batch, error) { return b.mapFunc("ExpmSym", ExpmSym) }

// Logm is the batched form of the package-level Logm.
func (b *Batch) Logm() (*Batch, error) { return b.mapFunc("Logm", Logm) }

// LogmSPD is the batched form of the package-level LogmSPD.
func (b *Batch) LogmSPD() (*Batch, error) { return b.mapFunc("LogmSPD", LogmSPD) }

func (b *Batch) mapFunc(op string, f func(*mat.Dense) (*mat.Dense, error)) (*Batch, error) {
	b.mustSquare(op)
	out := NewBatch(b.k, b.rows, b.cols)
	for i := 0; i < b.k; i++ {
		m, err := f(b.At(i))
		if err != nil {
			return nil, fmt.Errorf("slice %d: %w", i, err)
		}
		out.At(i).Copy(m)
	}
	return out, nil
}

// symEigenApply factorizes the symmetric matrix a, maps f over its
// eigenvalues and reconstructs v·diag(f(w))·vᵀ.
func symEigenApply(op string, a *mat.Dense, f func(float64) (float64, error)) (*mat.Dense, error) {
	mustSquareDense(op, a)
	n, _ := a.Dims()

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, a.At(i, j))
		}
	}
	var es mat.EigenSym
	if !es.Factorize(sym, true) {
		return nil, &NumericalDomainError{Op: op, Reason: "eigendecomposition failed to converge"}
	}
	w := es.Values(nil)
	for i, v := range w {
		fv, err := f(v)
		if err != nil {
			return nil, err
		}
		w[i] = fv
	}
	var v mat.Dense
	es.VectorsTo(&v)

	scaled := mat.NewDense(n, n, nil)
	scaled.Copy(&v)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			scaled.Set(i, j, scaled.At(i, j)*w[j])
		}
	}
	out := mat.NewDense(n, n, nil)
	out.Mul(scaled, v.T())
	return out, nil
}

// sqrtmDenmanBeavers computes the principal square root of a by the
// coupled Denman–Beavers iteration. The iteration converges
// quadratically exactly on the domain of the principal logarithm.
func sqrtmDenmanBeavers(a *mat.Dense) (*mat.Dense, error) {
	n, _ := a.Dims()
	y := mat.DenseCopyOf(a)
	z := eye(n)

	var yi, zi mat.Dense
	yNext := mat.NewDense(n, n, nil)
	zNext := mat.NewDense(n, n, nil)
	diff := mat.NewDense(n, n, nil)
	for iter := 0; iter < sqrtIterations; iter++ {
		if err := yi.Inverse(y); err != nil && !isCondition(err) {
			return nil, &NumericalDomainError{Op: "Logm", Reason: "singular iterate in square-root iteration"}
		}
		if err := zi.Inverse(z); err != nil && !isCondition(err) {
			return nil, &NumericalDomainError{Op: "Logm", Reason: "singular iterate in square-root iteration"}
		}
		yNext.Add(y, &zi)
		yNext.Scale(0.5, yNext)
		zNext.Add(z, &yi)
		zNext.Scale(0.5, zNext)

		diff.Sub(yNext, y)
		converged := mat.Norm(diff, 1) <= sqrtTolerance*mat.Norm(yNext, 1)
		y.Copy(yNext)
		z.Copy(zNext)
		if converged {
			return y, nil
		}
	}
	return nil, &NumericalDomainError{
		Op:     "Logm",
		Reason: "square-root iteration did not converge; matrix is outside the principal-logarithm domain",
	}
}

func distFromIdentity(a *mat.Dense) float64 {
	n, _ := a.Dims()
	d := mat.NewDense(n, n, nil)
	d.Sub(a, eye(n))
	return mat.Norm(d, 1)
}

func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// isCondition reports whether err is gonum's ill-conditioning warning
// with a finite condition number, in which case the computed result is
// still usable. An infinite condition number means the matrix is
// singular and the result is garbage.
func isCondition(err error) bool {
	var c mat.Condition
	return errors.As(err, &c) && !math.IsInf(float64(c), 1)
}
