package model

import (
	"math"

	"github.com/wildstyl3r/tecsim/internal/constants"
	"github.com/wildstyl3r/tecsim/internal/electrode"
	"github.com/wildstyl3r/tecsim/internal/errs"
	"github.com/wildstyl3r/tecsim/internal/poisson"
)

// NEAC models space-charge-limited transport with a negative electron
// affinity collector and a positive electron affinity emitter. The collector
// vacuum level sits below its conduction band minimum by the NEA offset,
// which shifts the saturation point and replaces the critical point with a
// "virtual" one anchored at the collector's NEA-adjusted motive.
type NEAC struct {
	pair
	dps *poisson.Solution
}

// NewNEAC validates the electrode pair. The collector must carry a nonzero
// NEA offset; the emitter's, if any, is discarded.
func NewNEAC(em, co electrode.Electrode) (*NEAC, error) {
	if err := checkPair(em, co); err != nil {
		return nil, err
	}
	if co.NEA <= 0 {
		return nil, errs.Constraint("collector.nea", "> 0")
	}
	return &NEAC{
		pair: pair{em: em.Copy().WithoutNEA(), co: co.Copy()},
		dps:  poisson.New(),
	}, nil
}

// SpaceChargeBoundaryDistance is the gap below which the device never
// enters the space-charge-limited mode: the collector's NEA-adjusted
// dimensionless position at saturation, scaled back to meters.
func (m *NEAC) SpaceChargeBoundaryDistance() float64 {
	coMotive := m.co.NEA / m.emitterKT()
	coPosition := m.dps.Position(coMotive, poisson.RHS)
	x0, err := m.normalizationLength(m.em.ThermoelectronCurrentDensity())
	if err != nil {
		// saturation current is non-negative by construction
		panic(err)
	}
	return coPosition * x0
}

// insideBoundarySurface reports whether the gap is too small for space
// charge to limit transport. Within it both regime boundaries degenerate to
// the contact potential at full saturation current, with no root-finding.
// This special case is only partially exercised by the historical data;
// treat results near the boundary with care.
func (m *NEAC) insideBoundarySurface() bool {
	return m.InterelectrodeSpacing() <= m.SpaceChargeBoundaryDistance()
}

// SaturationPoint is the regime boundary at full saturation current. The
// NEA offset raises the boundary voltage relative to the Langmuir model.
func (m *NEAC) SaturationPoint() OperatingPoint {
	js := m.em.ThermoelectronCurrentDensity()
	if m.insideBoundarySurface() {
		return OperatingPoint{Voltage: m.ContactPotential(), CurrentDensity: js}
	}
	psi := m.dps.Motive(m.dimensionlessSpacing(js))
	v := (m.em.Barrier + m.co.NEA - m.co.Barrier - psi*m.emitterKT()) /
		constants.ElectronCharge
	return OperatingPoint{Voltage: v, CurrentDensity: js}
}

// VirtualCriticalPoint is the NEA analogue of the critical point: the
// current at which the collector's NEA-adjusted dimensionless position
// matches the emitter position plus the gap.
func (m *NEAC) VirtualCriticalPoint() (OperatingPoint, error) {
	js := m.em.ThermoelectronCurrentDensity()
	if m.insideBoundarySurface() {
		return OperatingPoint{Voltage: m.ContactPotential(), CurrentDensity: js}, nil
	}
	jr, err := bracketedRoot("virtual critical point", func(j float64) float64 {
		return m.virtualCriticalPointTarget(j, js)
	}, 0, js)
	if err != nil {
		return OperatingPoint{}, err
	}
	v := (m.em.Barrier - m.co.Barrier + math.Log(js/jr)*m.emitterKT()) /
		constants.ElectronCharge
	return OperatingPoint{Voltage: v, CurrentDensity: jr}, nil
}

func (m *NEAC) virtualCriticalPointTarget(j, js float64) float64 {
	coMotive := m.co.NEA / m.emitterKT()
	coPosition := m.dps.Position(coMotive, poisson.RHS)

	emMotive := math.Inf(1)
	if j > 0 {
		emMotive = math.Log(js / j)
	}
	emPosition := m.dps.Position(emMotive, poisson.LHS)

	return coPosition - (emPosition + m.dimensionlessSpacing(j))
}

// OperatingRegime classifies the present bias against the saturation and
// virtual critical points.
func (m *NEAC) OperatingRegime() (Regime, error) {
	sat := m.SaturationPoint()
	crit, err := m.VirtualCriticalPoint()
	if err != nil {
		return 0, err
	}
	return classify(m.OutputVoltage(), sat, crit), nil
}

// MaxMotive is the motive barrier height in J relative to ground. In the
// retarding regime the maximum sits at the collector barrier: vacuum level
// plus the NEA offset.
func (m *NEAC) MaxMotive() (float64, error) {
	sat := m.SaturationPoint()
	crit, err := m.VirtualCriticalPoint()
	if err != nil {
		return 0, err
	}
	switch classify(m.OutputVoltage(), sat, crit) {
	case Accelerating:
		return m.em.Motive(), nil
	case Retarding:
		return m.co.Motive(), nil
	}
	if sat.CurrentDensity == crit.CurrentDensity {
		// degenerate bracket inside the boundary surface
		return m.em.Motive(), nil
	}
	j, err := bracketedRoot("space charge limited current",
		m.outputVoltageTarget, sat.CurrentDensity, crit.CurrentDensity)
	if err != nil {
		return 0, err
	}
	barrier := m.emitterKT() * math.Log(sat.CurrentDensity/j)
	return barrier + m.em.Motive(), nil
}

func (m *NEAC) outputVoltageTarget(j float64) float64 {
	js := m.em.ThermoelectronCurrentDensity()
	kT := m.emitterKT()
	emMotive := math.Log(js / j)
	emPosition := m.dps.Position(emMotive, poisson.LHS)
	coPosition := emPosition + m.dimensionlessSpacing(j)
	coMotive := m.dps.Motive(coPosition)
	implied := ((m.em.Barrier + emMotive*kT) -
		(m.co.Barrier - m.co.NEA + coMotive*kT)) / constants.ElectronCharge
	return m.OutputVoltage() - implied
}

// ForwardCurrentDensity follows the same Richardson suppression as the
// Langmuir model.
func (m *NEAC) ForwardCurrentDensity() (float64, error) {
	maxMotive, err := m.MaxMotive()
	if err != nil {
		return 0, err
	}
	js := m.em.ThermoelectronCurrentDensity()
	if m.em.Motive() >= maxMotive {
		return js, nil
	}
	return js * math.Exp(-(maxMotive-m.em.Motive())/m.emitterKT()), nil
}

// BackCurrentDensity is identically zero by model assumption.
func (m *NEAC) BackCurrentDensity() (float64, error) {
	return 0, nil
}

var _ TransportModel = (*NEAC)(nil)
