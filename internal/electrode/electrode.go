// Package electrode models a single planar thermionic electrode.
package electrode

import (
	"math"

	"github.com/wildstyl3r/tecsim/internal/constants"
	"github.com/wildstyl3r/tecsim/internal/errs"
)

// Params carries electrode properties in practical units. NEA is optional;
// zero means the surface has positive electron affinity.
type Params struct {
	Temp       float64 // [K]
	Barrier    float64 // [eV]
	Richardson float64 // [A cm^-2 K^-2]
	Voltage    float64 // [V]
	Position   float64 // [um]
	Emissivity float64
	NEA        float64 // [eV]
}

// Electrode is an immutable value describing one electrode's physical state,
// stored in SI units. Construct via New; copies are independent by value.
type Electrode struct {
	Temp       float64 // [K]
	Barrier    float64 // [J]
	Richardson float64 // [A m^-2 K^-2]
	Voltage    float64 // [V]
	Position   float64 // [m]
	Emissivity float64
	NEA        float64 // [J]
}

// New validates p and returns the electrode in SI units. Temp or Richardson
// equal to zero switches the electrode off (zero saturation current) and is
// allowed; negative values are not.
func New(p Params) (Electrode, error) {
	if p.Temp < 0 {
		return Electrode{}, errs.Constraint("temp", ">= 0")
	}
	if p.Barrier < 0 {
		return Electrode{}, errs.Constraint("barrier", ">= 0")
	}
	if p.Richardson < 0 {
		return Electrode{}, errs.Constraint("richardson", ">= 0")
	}
	if p.Emissivity <= 0 || p.Emissivity > 1 {
		return Electrode{}, errs.Constraint("emissivity", "0 < emissivity <= 1")
	}
	if p.NEA < 0 {
		return Electrode{}, errs.Constraint("nea", ">= 0")
	}
	return Electrode{
		Temp:       p.Temp,
		Barrier:    p.Barrier * constants.ElectronCharge,
		Richardson: p.Richardson * constants.ACm2K2ToSI,
		Voltage:    p.Voltage,
		Position:   p.Position * constants.Micron2M,
		Emissivity: p.Emissivity,
		NEA:        p.NEA * constants.ElectronCharge,
	}, nil
}

// ThermoelectronCurrentDensity is the Richardson-Dushman saturation current
// density in A m^-2. Returns 0 for a switched-off electrode (Temp == 0).
func (el Electrode) ThermoelectronCurrentDensity() float64 {
	if el.Temp == 0 {
		return 0
	}
	return el.Richardson * el.Temp * el.Temp *
		math.Exp(-el.Barrier/(constants.KBoltzmann*el.Temp))
}

// Motive is the barrier height relative to electrical ground in J.
func (el Electrode) Motive() float64 {
	return el.Barrier + constants.ElectronCharge*el.Voltage
}

// VacuumEnergy is the vacuum level relative to the Fermi energy in J. With
// NEA the vacuum level falls below the conduction band minimum.
func (el Electrode) VacuumEnergy() float64 {
	return el.Barrier - el.NEA
}

// VacuumLevel is the vacuum energy relative to electrical ground in J.
func (el Electrode) VacuumLevel() float64 {
	return el.VacuumEnergy() + constants.ElectronCharge*el.Voltage
}

// ThermoelectronEnergyFlux is the power density carried away by emitted
// thermoelectrons, J_RD*(phi + 2kT)/e, in W m^-2.
func (el Electrode) ThermoelectronEnergyFlux() float64 {
	thermalPotential := (el.Barrier + 2*constants.KBoltzmann*el.Temp) / constants.ElectronCharge
	return thermalPotential * el.ThermoelectronCurrentDensity()
}

// WithVoltage returns a copy biased at v volts.
func (el Electrode) WithVoltage(v float64) Electrode {
	el.Voltage = v
	return el
}

// WithoutNEA returns a copy with any NEA discarded; models that ignore
// negative electron affinity snapshot their electrodes through this.
func (el Electrode) WithoutNEA() Electrode {
	el.NEA = 0
	return el
}

// Copy returns a value-identical, independently-owned instance.
func (el Electrode) Copy() Electrode {
	return el
}
