package model

import (
	"math"

	"github.com/wildstyl3r/tecsim/internal/constants"
	"github.com/wildstyl3r/tecsim/internal/electrode"
)

// Ideal ignores the negative space charge effect entirely: the motive runs
// linearly between the two electrodes' vacuum levels and the maximum motive
// is whichever boundary is higher.
type Ideal struct {
	pair
}

func NewIdeal(em, co electrode.Electrode) (*Ideal, error) {
	if err := checkPair(em, co); err != nil {
		return nil, err
	}
	return &Ideal{pair{em: em.Copy(), co: co.Copy()}}, nil
}

func (m *Ideal) MaxMotive() (float64, error) {
	return math.Max(m.em.VacuumLevel(), m.co.VacuumLevel()), nil
}

// ForwardCurrentDensity is the emitter saturation current, Richardson
// suppressed when the motive maximum exceeds the emitter barrier height.
func (m *Ideal) ForwardCurrentDensity() (float64, error) {
	maxMotive, _ := m.MaxMotive()
	js := m.em.ThermoelectronCurrentDensity()
	if m.em.Motive() >= maxMotive {
		return js, nil
	}
	return js * math.Exp(-(maxMotive-m.em.Motive())/(constants.KBoltzmann*m.em.Temp)), nil
}

// BackCurrentDensity is the collector's emission toward the emitter, with
// the same suppression referenced to the collector's temperature.
func (m *Ideal) BackCurrentDensity() (float64, error) {
	maxMotive, _ := m.MaxMotive()
	jc := m.co.ThermoelectronCurrentDensity()
	if m.co.Motive() >= maxMotive {
		return jc, nil
	}
	return jc * math.Exp(-(maxMotive-m.co.Motive())/(constants.KBoltzmann*m.co.Temp)), nil
}

// MotiveAt interpolates the motive linearly across the gap; NaN outside it.
func (m *Ideal) MotiveAt(x float64) (float64, error) {
	if x < m.em.Position || x > m.co.Position {
		return math.NaN(), nil
	}
	frac := (x - m.em.Position) / m.InterelectrodeSpacing()
	return m.em.VacuumLevel() + frac*(m.co.VacuumLevel()-m.em.VacuumLevel()), nil
}

var _ TransportModel = (*Ideal)(nil)
