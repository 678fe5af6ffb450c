// Package device derives the output quantities of a thermionic energy
// converter from any transport model: power density, efficiencies and heat
// transport rates. Everything here is generic across models; only the
// current density and maximum motive come from the model itself.
package device

import (
	"math"

	"github.com/wildstyl3r/tecsim/internal/constants"
	"github.com/wildstyl3r/tecsim/internal/model"
	"github.com/wildstyl3r/tecsim/internal/utils"
)

type TEC struct {
	m model.TransportModel
}

func New(m model.TransportModel) *TEC {
	return &TEC{m: m}
}

func (t *TEC) Model() model.TransportModel {
	return t.m
}

// InterelectrodeSpacing is the emitter-collector gap in m.
func (t *TEC) InterelectrodeSpacing() float64 {
	return t.m.Collector().Position - t.m.Emitter().Position
}

// OutputVoltage is the collector bias relative to the emitter in V.
func (t *TEC) OutputVoltage() float64 {
	return t.m.Collector().Voltage - t.m.Emitter().Voltage
}

// ContactPotential is the barrier height difference in V. Not to be
// confused with the output voltage.
func (t *TEC) ContactPotential() float64 {
	return (t.m.Emitter().Barrier - t.m.Collector().Barrier) / constants.ElectronCharge
}

// OutputCurrentDensity is forward minus back current in A m^-2.
func (t *TEC) OutputCurrentDensity() (float64, error) {
	forward, err := t.m.ForwardCurrentDensity()
	if err != nil {
		return 0, err
	}
	back, err := t.m.BackCurrentDensity()
	if err != nil {
		return 0, err
	}
	return forward - back, nil
}

// OutputPowerDensity is J·V in W m^-2.
func (t *TEC) OutputPowerDensity() (float64, error) {
	j, err := t.OutputCurrentDensity()
	if err != nil {
		return 0, err
	}
	return j * t.OutputVoltage(), nil
}

// LoadResistance is V/J in ohm·m²; NaN at zero current.
func (t *TEC) LoadResistance() (float64, error) {
	j, err := t.OutputCurrentDensity()
	if err != nil {
		return 0, err
	}
	if j == 0 {
		return math.NaN(), nil
	}
	return t.OutputVoltage() / j, nil
}

// CarnotEfficiency is 1 − T_C/T_E, NaN when the collector is hotter than
// the emitter.
func (t *TEC) CarnotEfficiency() float64 {
	te := t.m.Emitter().Temp
	tc := t.m.Collector().Temp
	if tc > te {
		return math.NaN()
	}
	return 1 - tc/te
}

// ElectronicHeatTransport is the Hatsopoulos-Gyftopoulos electron cooling
// rate in W m^-2: forward-current energy flux minus back-current energy
// flux, each referenced to the maximum motive.
func (t *TEC) ElectronicHeatTransport() (float64, error) {
	maxMotive, err := t.m.MaxMotive()
	if err != nil {
		return 0, err
	}
	forward, err := t.m.ForwardCurrentDensity()
	if err != nil {
		return 0, err
	}
	back, err := t.m.BackCurrentDensity()
	if err != nil {
		return 0, err
	}
	k := constants.KBoltzmann
	e := constants.ElectronCharge
	fluxForward := forward * (maxMotive + 2*k*t.m.Emitter().Temp) / e
	fluxBack := back * (maxMotive + 2*k*t.m.Collector().Temp) / e
	return fluxForward - fluxBack, nil
}

// BlackbodyHeatTransport is the net-emissivity radiative exchange in
// W m^-2; zero when either emissivity is zero.
func (t *TEC) BlackbodyHeatTransport() float64 {
	epsE := t.m.Emitter().Emissivity
	epsC := t.m.Collector().Emissivity
	if epsE == 0 || epsC == 0 {
		return 0
	}
	te := t.m.Emitter().Temp
	tc := t.m.Collector().Temp
	return constants.StefanBoltzmann * (math.Pow(te, 4) - math.Pow(tc, 4)) /
		(1/epsE + 1/epsC - 1)
}

// HeatSupplyRate is the total heat drawn from the emitter in W m^-2.
func (t *TEC) HeatSupplyRate() (float64, error) {
	electronic, err := t.ElectronicHeatTransport()
	if err != nil {
		return 0, err
	}
	return electronic + t.BlackbodyHeatTransport(), nil
}

// RadiationEfficiency considers only blackbody heat transport; NaN unless
// output power is positive. NaN propagates downstream instead of raising.
func (t *TEC) RadiationEfficiency() (float64, error) {
	return t.efficiencyOver(func() (float64, error) {
		return t.BlackbodyHeatTransport(), nil
	})
}

// ElectronicEfficiency considers only electronic heat transport; NaN unless
// output power is positive.
func (t *TEC) ElectronicEfficiency() (float64, error) {
	return t.efficiencyOver(t.ElectronicHeatTransport)
}

// TotalEfficiency considers all heat transport mechanisms; NaN unless
// output power is positive.
func (t *TEC) TotalEfficiency() (float64, error) {
	return t.efficiencyOver(t.HeatSupplyRate)
}

func (t *TEC) efficiencyOver(heat func() (float64, error)) (float64, error) {
	p, err := t.OutputPowerDensity()
	if err != nil {
		return 0, err
	}
	if !(p > 0) {
		return math.NaN(), nil
	}
	q, err := heat()
	if err != nil {
		return 0, err
	}
	return p / q, nil
}

// FindVoltageAtMaximum sweeps the collector bias over [lo, hi] and returns
// the voltage maximizing property, together with the value there. build
// must construct an independent TEC biased at the trial voltage, so no
// shared state is mutated during the search.
func FindVoltageAtMaximum(build func(voltage float64) (*TEC, error), property func(*TEC) (float64, error), lo, hi float64) (voltage, value float64, err error) {
	eval := func(v float64) float64 {
		t, buildErr := build(v)
		if buildErr != nil {
			err = buildErr
			return math.Inf(-1)
		}
		val, propErr := property(t)
		if propErr != nil {
			err = propErr
			return math.Inf(-1)
		}
		return val
	}
	voltage = utils.TernarySearchMax(eval, lo, hi, 1e-6)
	if err != nil {
		return 0, 0, err
	}
	value = eval(voltage)
	return voltage, value, err
}
