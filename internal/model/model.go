// Package model implements electron transport models for a thermionic
// converter: Ideal (no space charge), Langmuir and NEAC (space charge via
// the dimensionless Poisson solution) and SimpleTunnelBarrier.
package model

import (
	"math"

	"github.com/cpmech/gosl/num"

	"github.com/wildstyl3r/tecsim/internal/constants"
	"github.com/wildstyl3r/tecsim/internal/electrode"
	"github.com/wildstyl3r/tecsim/internal/errs"
)

// TransportModel is the narrow contract every transport variant implements.
// Current densities are in A m^-2, motives in J relative to ground.
type TransportModel interface {
	Emitter() electrode.Electrode
	Collector() electrode.Electrode
	MaxMotive() (float64, error)
	ForwardCurrentDensity() (float64, error)
	BackCurrentDensity() (float64, error)
}

// OperatingPoint is a (voltage, current density) pair bounding a transport
// regime.
type OperatingPoint struct {
	Voltage        float64 // [V]
	CurrentDensity float64 // [A m^-2]
}

// Regime labels the transport mode the device operates in at its present
// bias. It is a pure function of the bias and the regime boundaries, never
// stored state.
type Regime int

const (
	Accelerating Regime = iota
	SpaceChargeLimited
	Retarding
)

func (r Regime) String() string {
	switch r {
	case Accelerating:
		return "accelerating"
	case SpaceChargeLimited:
		return "space charge limited"
	case Retarding:
		return "retarding"
	}
	return "unknown"
}

// pair holds the model's private snapshots of both electrodes and the
// geometry- and bias-derived quantities every model shares.
type pair struct {
	em, co electrode.Electrode
}

func checkPair(em, co electrode.Electrode) error {
	if em.Temp <= co.Temp {
		return errs.Constraint("emitter.temp", "> collector.temp")
	}
	if em.Barrier <= co.Barrier {
		return errs.Constraint("emitter.barrier", "> collector.barrier")
	}
	if em.Position >= co.Position {
		return errs.Constraint("emitter.position", "< collector.position")
	}
	return nil
}

func (p pair) Emitter() electrode.Electrode   { return p.em }
func (p pair) Collector() electrode.Electrode { return p.co }

// InterelectrodeSpacing is the emitter-collector gap in m.
func (p pair) InterelectrodeSpacing() float64 {
	return p.co.Position - p.em.Position
}

// OutputVoltage is the collector bias relative to the emitter in V.
func (p pair) OutputVoltage() float64 {
	return p.co.Voltage - p.em.Voltage
}

// ContactPotential is the barrier difference in V.
func (p pair) ContactPotential() float64 {
	return (p.em.Barrier - p.co.Barrier) / constants.ElectronCharge
}

func (p pair) emitterKT() float64 {
	return constants.KBoltzmann * p.em.Temp
}

// normalizationLength is x₀(J): the length scale mapping physical distance
// to dimensionless position. +Inf at J == 0; negative J is caller misuse.
func (p pair) normalizationLength(j float64) (float64, error) {
	if j < 0 {
		return 0, errs.Domain("normalization length", "current density must be non-negative")
	}
	if j == 0 {
		return math.Inf(1), nil
	}
	return x0Prefactor() * math.Pow(p.em.Temp, 0.75) / math.Sqrt(j), nil
}

// dimensionlessSpacing is d/x₀(J); zero at J == 0.
func (p pair) dimensionlessSpacing(j float64) float64 {
	return p.InterelectrodeSpacing() * math.Sqrt(j) /
		(x0Prefactor() * math.Pow(p.em.Temp, 0.75))
}

func x0Prefactor() float64 {
	eps0 := constants.FreeSpacePermittivityE0
	k := constants.KBoltzmann
	return math.Pow(eps0*eps0*k*k*k/
		(2*math.Pi*constants.ElectronMass*constants.ElectronCharge*constants.ElectronCharge), 0.25)
}

// bracketedRoot runs Brent's method after verifying the sign change the
// model guarantees analytically. A missing sign change is a violated model
// invariant, surfaced fatally rather than retried with another bracket.
func bracketedRoot(op string, f func(float64) float64, lo, hi float64) (float64, error) {
	if lo > hi {
		lo, hi = hi, lo
	}
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if math.IsNaN(flo) || math.IsNaN(fhi) || flo*fhi > 0 {
		return 0, errs.Convergence(op, lo, hi)
	}
	solver := num.NewBrent(f, nil)
	return solver.Root(lo, hi), nil
}
