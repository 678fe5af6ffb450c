// Package config loads device descriptions for the sweep CLI from TOML
// files. Parameters use practical units (K, eV, V, µm, nm, A/cm²K²);
// conversion to SI happens inside the electrode and model constructors.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/wildstyl3r/tecsim/internal/device"
	"github.com/wildstyl3r/tecsim/internal/electrode"
	"github.com/wildstyl3r/tecsim/internal/model"
)

type ElectrodeParameters struct {
	Temp       float64 // [K]
	Barrier    float64 // [eV]
	Richardson float64 // [A cm^-2 K^-2]
	Voltage    float64 // [V]
	Position   float64 // [um]
	Emissivity float64
	NEA        float64 // [eV]
}

type DeviceParameters struct {
	Model     string  // langmuir | neac | ideal | tunnel
	Thickness float64 // [nm], tunnel barrier collectors only

	Emitter   ElectrodeParameters
	Collector ElectrodeParameters

	SweepStart  float64 // [V]
	SweepStop   float64 // [V]
	SweepPoints int
}

type Config struct {
	OutputDir string
	Devices   map[string]DeviceParameters
}

var defaultValues = map[string]any{
	"Model":       "langmuir",
	"SweepPoints": 100,
}

var defaultElectrodeValues = map[string]float64{
	"Richardson": 120.,
	"Emissivity": 0.5,
}

// Load reads and normalizes a TOML config. Defaults are applied only where
// the file left a key undefined, so explicit zeros survive.
func Load(configFileName string) (Config, error) {
	var config Config
	meta, err := toml.DecodeFile(configFileName, &config)
	if err != nil {
		return Config{}, err
	}
	if len(config.Devices) == 0 {
		return Config{}, fmt.Errorf("no devices provided in %s", configFileName)
	}

	for name, parameters := range config.Devices {
		if !meta.IsDefined("Devices", name, "Model") {
			parameters.Model = defaultValues["Model"].(string)
		}
		if !meta.IsDefined("Devices", name, "SweepPoints") {
			parameters.SweepPoints = defaultValues["SweepPoints"].(int)
		}
		if !meta.IsDefined("Devices", name, "SweepStop") {
			// sweep up to the contact potential by default
			parameters.SweepStop = parameters.Emitter.Barrier - parameters.Collector.Barrier
		}
		for side, el := range map[string]*ElectrodeParameters{
			"Emitter":   &parameters.Emitter,
			"Collector": &parameters.Collector,
		} {
			if !meta.IsDefined("Devices", name, side, "Richardson") {
				el.Richardson = defaultElectrodeValues["Richardson"]
			}
			if !meta.IsDefined("Devices", name, side, "Emissivity") {
				el.Emissivity = defaultElectrodeValues["Emissivity"]
			}
		}
		config.Devices[name] = parameters
	}
	return config, nil
}

func (p ElectrodeParameters) build() (electrode.Electrode, error) {
	return electrode.New(electrode.Params{
		Temp:       p.Temp,
		Barrier:    p.Barrier,
		Richardson: p.Richardson,
		Voltage:    p.Voltage,
		Position:   p.Position,
		Emissivity: p.Emissivity,
		NEA:        p.NEA,
	})
}

// Build constructs the configured transport model wrapped in a TEC facade,
// with the collector biased at the given voltage.
func (p DeviceParameters) Build(collectorVoltage float64) (*device.TEC, error) {
	em, err := p.Emitter.build()
	if err != nil {
		return nil, fmt.Errorf("emitter: %w", err)
	}
	co, err := p.Collector.build()
	if err != nil {
		return nil, fmt.Errorf("collector: %w", err)
	}
	co = co.WithVoltage(collectorVoltage)

	var m model.TransportModel
	switch p.Model {
	case "langmuir":
		m, err = model.NewLangmuir(em, co)
	case "neac":
		m, err = model.NewNEAC(em, co)
	case "ideal":
		m, err = model.NewIdeal(em, co)
	case "tunnel":
		m, err = model.NewSimpleTunnelBarrier(em, co, p.Thickness)
	default:
		return nil, fmt.Errorf("unknown model %q", p.Model)
	}
	if err != nil {
		return nil, err
	}
	return device.New(m), nil
}
