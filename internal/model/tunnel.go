package model

import (
	"math"

	"github.com/wildstyl3r/tecsim/internal/constants"
	"github.com/wildstyl3r/tecsim/internal/electrode"
	"github.com/wildstyl3r/tecsim/internal/errs"
)

// SimpleTunnelBarrier models a collector coated with a square tunnel
// barrier. Thermoelectrons from the emitter are taken as monoenergetic at
// the emitter vacuum level; the output current is the emitter current times
// the barrier transmission coefficient. Space charge and back emission are
// ignored.
type SimpleTunnelBarrier struct {
	pair
	thickness float64 // [m]
}

// NewSimpleTunnelBarrier builds the model with a barrier thickness given in
// nm.
func NewSimpleTunnelBarrier(em, co electrode.Electrode, thicknessNm float64) (*SimpleTunnelBarrier, error) {
	if err := checkPair(em, co); err != nil {
		return nil, err
	}
	if thicknessNm <= 0 {
		return nil, errs.Constraint("thickness", "> 0")
	}
	return &SimpleTunnelBarrier{
		pair:      pair{em: em.Copy(), co: co.Copy()},
		thickness: thicknessNm * constants.Nm2M,
	}, nil
}

// TransmissionCoeff is the square-barrier tunneling probability for an
// electron of energy e in J above the collector Fermi level. Energies at or
// above the barrier pass freely.
func (m *SimpleTunnelBarrier) TransmissionCoeff(e float64) (float64, error) {
	if e < 0 {
		return 0, errs.Domain("transmission coefficient", "electron energy must be non-negative")
	}
	if e >= m.co.Barrier {
		return 1, nil
	}
	exponent := 2 * m.thickness *
		math.Sqrt(2*constants.ElectronMass*(m.co.Barrier-e)) / constants.HBarPlanck
	return math.Exp(-exponent), nil
}

func (m *SimpleTunnelBarrier) MaxMotive() (float64, error) {
	return math.Max(m.em.Motive(), m.co.Motive()), nil
}

// ForwardCurrentDensity is zero once the collector motive rises above the
// emitter's (monoenergetic electrons can no longer reach the barrier).
func (m *SimpleTunnelBarrier) ForwardCurrentDensity() (float64, error) {
	electronEnergy := m.em.Motive() - m.co.Motive()
	if electronEnergy < 0 {
		return 0, nil
	}
	tc, err := m.TransmissionCoeff(electronEnergy)
	if err != nil {
		return 0, err
	}
	return m.em.ThermoelectronCurrentDensity() * tc, nil
}

// BackCurrentDensity is zero by definition in this model.
func (m *SimpleTunnelBarrier) BackCurrentDensity() (float64, error) {
	return 0, nil
}

var _ TransportModel = (*SimpleTunnelBarrier)(nil)
