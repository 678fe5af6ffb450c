package model

import (
	"math"

	"github.com/wildstyl3r/tecsim/internal/constants"
	"github.com/wildstyl3r/tecsim/internal/electrode"
	"github.com/wildstyl3r/tecsim/internal/poisson"
)

// Langmuir models electron transport with the negative space charge effect
// and no back emission, after Langmuir (Phys. Rev. 21, 419). Both electrodes
// are assumed to have positive electron affinity; any NEA on the inputs is
// discarded. The model owns private electrode copies and one dimensionless
// Poisson solution computed at construction.
type Langmuir struct {
	pair
	dps *poisson.Solution
}

// NewLangmuir validates the electrode pair and solves the dimensionless
// Poisson equation for this instance.
func NewLangmuir(em, co electrode.Electrode) (*Langmuir, error) {
	if err := checkPair(em, co); err != nil {
		return nil, err
	}
	return &Langmuir{
		pair: pair{em: em.Copy().WithoutNEA(), co: co.Copy().WithoutNEA()},
		dps:  poisson.New(),
	}, nil
}

// NormalizationLength is x₀(J) in m: the scale that turns the physical gap
// into dimensionless position. +Inf when J == 0.
func (m *Langmuir) NormalizationLength(j float64) (float64, error) {
	return m.normalizationLength(j)
}

// SaturationPoint is the bias below which the emitter's full thermoelectron
// current flows unsuppressed.
func (m *Langmuir) SaturationPoint() OperatingPoint {
	js := m.em.ThermoelectronCurrentDensity()
	psi := m.dps.Motive(m.dimensionlessSpacing(js))
	v := (m.em.Barrier - m.co.Barrier - psi*m.emitterKT()) / constants.ElectronCharge
	return OperatingPoint{Voltage: v, CurrentDensity: js}
}

// CriticalPoint is the bias above which space charge no longer affects
// transport. Its current density is the root of the two-path position match
// over (0, J_S].
func (m *Langmuir) CriticalPoint() (OperatingPoint, error) {
	js := m.em.ThermoelectronCurrentDensity()
	jr, err := bracketedRoot("critical point", func(j float64) float64 {
		return m.criticalPointTarget(j, js)
	}, 0, js)
	if err != nil {
		return OperatingPoint{}, err
	}
	v := (m.em.Barrier - m.co.Barrier + math.Log(js/jr)*m.emitterKT()) / constants.ElectronCharge
	return OperatingPoint{Voltage: v, CurrentDensity: jr}, nil
}

// criticalPointTarget compares the collector's dimensionless position
// computed from geometry with the inverse lookup of the Poisson solution.
func (m *Langmuir) criticalPointTarget(j, js float64) float64 {
	psi := math.Inf(1)
	if j > 0 {
		psi = math.Log(js / j)
	}
	return -m.dimensionlessSpacing(j) - m.dps.Position(psi, poisson.LHS)
}

// OperatingRegime classifies the present bias against the two boundary
// points.
func (m *Langmuir) OperatingRegime() (Regime, error) {
	sat := m.SaturationPoint()
	crit, err := m.CriticalPoint()
	if err != nil {
		return 0, err
	}
	return classify(m.OutputVoltage(), sat, crit), nil
}

func classify(v float64, sat, crit OperatingPoint) Regime {
	switch {
	case v < sat.Voltage:
		return Accelerating
	case v > crit.Voltage:
		return Retarding
	}
	return SpaceChargeLimited
}

// MaxMotive is the height of the motive barrier in J relative to ground. In
// the space-charge-limited regime it is found by root-finding the output
// current consistent with the present bias.
func (m *Langmuir) MaxMotive() (float64, error) {
	sat := m.SaturationPoint()
	crit, err := m.CriticalPoint()
	if err != nil {
		return 0, err
	}
	switch classify(m.OutputVoltage(), sat, crit) {
	case Accelerating:
		return m.em.Motive(), nil
	case Retarding:
		return m.co.Motive(), nil
	}
	j, err := bracketedRoot("space charge limited current",
		m.outputVoltageTarget, sat.CurrentDensity, crit.CurrentDensity)
	if err != nil {
		return 0, err
	}
	barrier := m.emitterKT() * math.Log(sat.CurrentDensity/j)
	return barrier + m.em.Motive(), nil
}

// outputVoltageTarget returns the difference between the present bias and
// the voltage implied by matching the two electrodes' dimensionless
// positions at trial current density j.
func (m *Langmuir) outputVoltageTarget(j float64) float64 {
	js := m.em.ThermoelectronCurrentDensity()
	kT := m.emitterKT()
	emMotive := math.Log(js / j)
	emPosition := m.dps.Position(emMotive, poisson.LHS)
	coPosition := emPosition + m.dimensionlessSpacing(j)
	coMotive := m.dps.Motive(coPosition)
	implied := ((m.em.Barrier + emMotive*kT) - (m.co.Barrier + coMotive*kT)) /
		constants.ElectronCharge
	return m.OutputVoltage() - implied
}

// ForwardCurrentDensity is the net emitter-to-collector current in A m^-2:
// the saturation current, Richardson-suppressed when the motive barrier
// rises above the emitter's own barrier height.
func (m *Langmuir) ForwardCurrentDensity() (float64, error) {
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

// BackCurrentDensity is identically zero: the Langmuir model family
// suppresses back emission by assumption.
func (m *Langmuir) BackCurrentDensity() (float64, error) {
	return 0, nil
}

// MotiveAt evaluates the motive in J at physical position x in m. NaN
// outside the interelectrode gap, and in the retarding regime where the
// emitter-side dimensionless motive is undefined for this model.
func (m *Langmuir) MotiveAt(x float64) (float64, error) {
	if x < m.em.Position || x > m.co.Position {
		return math.NaN(), nil
	}
	maxMotive, err := m.MaxMotive()
	if err != nil {
		return 0, err
	}
	j, err := m.ForwardCurrentDensity()
	if err != nil {
		return 0, err
	}
	kT := m.emitterKT()
	emMotive := (maxMotive - m.em.Motive()) / kT
	if emMotive < 0 {
		return math.NaN(), nil
	}
	emPosition := m.dps.Position(emMotive, poisson.LHS)
	x0, err := m.normalizationLength(j)
	if err != nil {
		return 0, err
	}
	xi := (x-m.em.Position)/x0 + emPosition
	return maxMotive - kT*m.dps.Motive(xi), nil
}

var _ TransportModel = (*Langmuir)(nil)
