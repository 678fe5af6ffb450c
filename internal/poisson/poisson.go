// Package poisson solves Langmuir's dimensionless Poisson equation for
// space-charge-limited electron flow between infinite parallel plates:
//
//	d²ψ/dξ² = ½·exp(ψ)·(1 − erf(√ψ))   ξ ≥ 0  (retarding-field branch)
//	d²ψ/dξ² = ½·exp(ψ)·(1 + erf(√ψ))   ξ < 0  (accelerating-field branch)
//
// with ψ(0) = 0, ψ'(0) = 0. ψ is dimensionless motive, ξ dimensionless
// position. The equation is integrated once at construction; afterwards the
// solution is an immutable pair of interpolated lookups per branch and is
// safe for concurrent readers.
package poisson

import (
	"math"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
	"github.com/cpmech/gosl/utl"
)

// Branch selects one of the two sides of the solution. The inverse lookup
// needs the branch spelled out because ξ(ψ) is not single-valued.
type Branch int

const (
	LHS Branch = iota // ξ ≤ 0, bounded by the asymptote at LHSEndPosition
	RHS               // ξ > 0, unbounded
)

const (
	// LHSEndPosition is where the accelerating-field branch becomes
	// multi-valued; the physical solution asymptotes there.
	LHSEndPosition = -2.5538
	// RHSEndPosition bounds the sampled retarding-field branch. Queries past
	// it extrapolate with the edge polynomial.
	RHSEndPosition = 100.0

	defaultResolution = 1000
)

type branch struct {
	motiveOfPosition *fun.DataInterp
	positionOfMotive *fun.DataInterp
	endPosition      float64
	endMotive        float64 // ψ at endPosition; ≈18.7 on the lhs
}

// Solution holds the numerically-obtained solution of the dimensionless
// Poisson equation, one lookup pair per branch.
type Solution struct {
	lhs, rhs branch
}

// New integrates both branches at the default resolution.
func New() *Solution {
	return NewWithResolution(defaultResolution)
}

// NewWithResolution integrates both branches over numPoints samples each.
func NewWithResolution(numPoints int) *Solution {
	return &Solution{
		lhs: solveBranch(LHSEndPosition, numPoints),
		rhs: solveBranch(RHSEndPosition, numPoints),
	}
}

// solveBranch integrates from the origin to endpoint and builds the forward
// and inverse interpolants. Integration runs in the mirrored variable |ξ| so
// the solver always marches forward; the second derivative is invariant
// under reflection.
func solveBranch(endpoint float64, numPoints int) branch {
	accelerating := endpoint < 0
	fcn := func(f la.Vector, dx, x float64, y la.Vector) {
		psi := math.Max(y[0], 0) // roundoff can push ψ barely below 0 near the origin
		f[0] = y[1]
		if accelerating {
			f[1] = 0.5 * math.Exp(psi) * (1 + math.Erf(math.Sqrt(psi)))
		} else {
			// erfc form keeps exp(ψ)·(1−erf) finite for large ψ
			f[1] = 0.5 * math.Exp(psi) * math.Erfc(math.Sqrt(psi))
		}
	}

	conf := ode.NewConfig("dopri5", "")
	conf.SetTols(1e-10, 1e-10)
	solver := ode.NewSolver(2, conf, fcn, nil, nil)
	defer solver.Free()

	grid := utl.LinSpace(0, math.Abs(endpoint), numPoints)
	motive := make([]float64, numPoints)
	y := la.NewVector(2)
	for i := 1; i < numPoints; i++ {
		solver.Solve(y, grid[i-1], grid[i])
		motive[i] = y[0]
	}

	position := grid
	if accelerating {
		position = make([]float64, numPoints)
		for i := range grid {
			position[i] = -grid[i]
		}
	}

	// ψ(ξ) needs ascending abscissae; the lhs samples run 0 → −|endpoint|.
	posAsc, motAtPosAsc := position, motive
	if accelerating {
		posAsc = reversed(position)
		motAtPosAsc = reversed(motive)
	}

	return branch{
		// local cubic polynomials for the forward lookup, linear for the
		// inverse to avoid overshoot near the origin where ψ' = 0
		motiveOfPosition: fun.NewDataInterp("poly", 3, posAsc, motAtPosAsc),
		positionOfMotive: fun.NewDataInterp("lin", 1, motive, position),
		endPosition:      position[numPoints-1],
		endMotive:        motive[numPoints-1],
	}
}

func reversed(a []float64) []float64 {
	b := make([]float64, len(a))
	for i := range a {
		b[i] = a[len(a)-1-i]
	}
	return b
}

// Motive evaluates ψ(ξ). Positions beyond the lhs asymptote lie outside the
// solution and yield NaN.
func (s *Solution) Motive(xi float64) float64 {
	switch {
	case math.IsNaN(xi) || xi < s.lhs.endPosition:
		return math.NaN()
	case xi <= 0:
		return s.lhs.motiveOfPosition.P(xi)
	default:
		return s.rhs.motiveOfPosition.P(xi)
	}
}

// Position evaluates ξ(ψ) on the requested branch. Negative motive is
// nonphysical and yields NaN. On the lhs the true inverse is essentially
// flat past the asymptote, so motives beyond the branch endpoint clamp to
// the endpoint position instead of extrapolating.
func (s *Solution) Position(psi float64, br Branch) float64 {
	if psi < 0 || math.IsNaN(psi) {
		return math.NaN()
	}
	b := &s.rhs
	if br == LHS {
		b = &s.lhs
		if psi > b.endMotive {
			return b.endPosition
		}
	}
	return b.positionOfMotive.P(psi)
}

// LHSEndMotive reports ψ at the lhs asymptote (≈18.7), past which inverse
// lookups on that branch saturate.
func (s *Solution) LHSEndMotive() float64 {
	return s.lhs.endMotive
}
