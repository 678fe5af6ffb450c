package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cpmech/gosl/utl"
	"github.com/facette/natsort"

	"github.com/wildstyl3r/tecsim/internal/config"
	"github.com/wildstyl3r/tecsim/internal/constants"
	"github.com/wildstyl3r/tecsim/internal/device"
	"github.com/wildstyl3r/tecsim/internal/utils"
)

type output struct {
	saveFlag    *bool
	fileSuffix  string
	columnNames []string
	data        *[]float64
	scaler      func(float64) float64
}

// sweepPoint holds everything derived at one collector bias.
type sweepPoint struct {
	currentDensity float64 // [A m^-2]
	powerDensity   float64 // [W m^-2]
	efficiency     float64
	heatSupply     float64 // [W m^-2]
}

func main() {
	var currentDensity []float64
	var powerDensity []float64
	var efficiency []float64
	var heatSupply []float64
	var voltages []float64

	si2ACm2 := func(j float64) float64 { return j / constants.ACm2ToSI }
	si2WCm2 := func(p float64) float64 { return p / constants.WCm2ToSI }

	outputs := map[string]output{
		"Current density": {
			saveFlag:    flag.Bool("jv", false, "save output current density vs voltage"),
			fileSuffix:  "current_density",
			columnNames: []string{"V (V)", "J (A cm^-2)"},
			data:        &currentDensity,
			scaler:      si2ACm2,
		},
		"Power density": {
			saveFlag:    flag.Bool("p", false, "save output power density vs voltage"),
			fileSuffix:  "power_density",
			columnNames: []string{"V (V)", "P (W cm^-2)"},
			data:        &powerDensity,
			scaler:      si2WCm2,
		},
		"Total efficiency": {
			saveFlag:    flag.Bool("eta", false, "save total efficiency vs voltage"),
			fileSuffix:  "efficiency",
			columnNames: []string{"V (V)", "eta"},
			data:        &efficiency,
		},
		"Heat supply rate": {
			saveFlag:    flag.Bool("q", false, "save emitter heat supply rate vs voltage"),
			fileSuffix:  "heat_supply",
			columnNames: []string{"V (V)", "Q (W cm^-2)"},
			data:        &heatSupply,
			scaler:      si2WCm2,
		},
	}
	var motiveFlag = flag.Bool("motive", false, "save the motive diagram at the configured bias (space charge models only)")
	var maxPowerFlag = flag.Bool("mp", false, "report the bias maximizing output power density")
	var configFileNamePointer = flag.String("input", "devices", "device configuration in toml format")
	flag.Parse()

	startTime := time.Now()
	fmt.Printf("Current time: %s\n", startTime.UTC().Format(time.UnixDate))

	configFileName := strings.TrimSuffix(*configFileNamePointer, ".toml")

	cfg, err := config.Load(configFileName + ".toml")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	deviceNames := make([]string, 0, len(cfg.Devices))
	for name := range cfg.Devices {
		deviceNames = append(deviceNames, name)
	}
	natsort.Sort(deviceNames)

	for _, deviceName := range deviceNames {
		parameters := cfg.Devices[deviceName]
		fmt.Println("\n" + deviceName)

		voltages = utl.LinSpace(parameters.SweepStart, parameters.SweepStop, parameters.SweepPoints)
		points := make([]sweepPoint, len(voltages))

		var wg sync.WaitGroup
		failed := make([]error, len(voltages))
		for i, v := range voltages {
			wg.Add(1)
			go func() {
				defer wg.Done()
				tec, err := parameters.Build(v)
				if err != nil {
					failed[i] = err
					return
				}
				points[i], failed[i] = evaluate(tec)
			}()
		}
		wg.Wait()

		skip := false
		for i, err := range failed {
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s at %.4g V: %v\n", deviceName, voltages[i], err)
				skip = true
			}
		}
		if skip {
			continue
		}

		currentDensity = make([]float64, len(points))
		powerDensity = make([]float64, len(points))
		efficiency = make([]float64, len(points))
		heatSupply = make([]float64, len(points))
		for i, pt := range points {
			currentDensity[i] = pt.currentDensity
			powerDensity[i] = pt.powerDensity
			efficiency[i] = pt.efficiency
			heatSupply[i] = pt.heatSupply
		}

		for name, output := range outputs {
			if !*output.saveFlag {
				continue
			}
			rows := make(utils.CSV, 0, len(voltages))
			for i, v := range voltages {
				y := (*output.data)[i]
				if output.scaler != nil {
					y = output.scaler(y)
				}
				rows = append(rows, []string{
					strconv.FormatFloat(v, 'g', -1, 64),
					strconv.FormatFloat(y, 'g', -1, 64),
				})
			}
			if err := utils.WriteAsCSV(rows, cfg.OutputDir, deviceName+"_"+output.fileSuffix+".txt", output.columnNames); err != nil {
				fmt.Fprintln(os.Stderr, "unable to save "+name+": ", err)
			} else {
				fmt.Println(name + " saved")
			}
		}

		if *motiveFlag {
			if err := saveMotiveDiagram(cfg, deviceName, parameters); err != nil {
				fmt.Fprintln(os.Stderr, "unable to save motive diagram: ", err)
			} else {
				fmt.Println("Motive diagram saved")
			}
		}

		if *maxPowerFlag {
			v, p, err := device.FindVoltageAtMaximum(
				parameters.Build,
				func(t *device.TEC) (float64, error) { return t.OutputPowerDensity() },
				parameters.SweepStart, parameters.SweepStop)
			if err != nil {
				fmt.Fprintln(os.Stderr, "max power search failed: ", err)
			} else {
				fmt.Printf("Max power density %.6g W cm^-2 at %.6g V\n", si2WCm2(p), v)
			}
		}
	}
	fmt.Printf("Elapsed time: %v\n", time.Since(startTime))
}

func evaluate(tec *device.TEC) (sweepPoint, error) {
	var pt sweepPoint
	var err error
	if pt.currentDensity, err = tec.OutputCurrentDensity(); err != nil {
		return pt, err
	}
	if pt.powerDensity, err = tec.OutputPowerDensity(); err != nil {
		return pt, err
	}
	if pt.efficiency, err = tec.TotalEfficiency(); err != nil {
		return pt, err
	}
	if pt.heatSupply, err = tec.HeatSupplyRate(); err != nil {
		return pt, err
	}
	return pt, nil
}

func saveMotiveDiagram(cfg config.Config, deviceName string, parameters config.DeviceParameters) error {
	tec, err := parameters.Build(parameters.Collector.Voltage)
	if err != nil {
		return err
	}
	type motiveAt interface {
		MotiveAt(x float64) (float64, error)
	}
	m, ok := tec.Model().(motiveAt)
	if !ok {
		return fmt.Errorf("model %q has no motive profile", parameters.Model)
	}

	em := tec.Model().Emitter()
	positions := utl.LinSpace(em.Position, em.Position+tec.InterelectrodeSpacing(), motiveDiagramPoints)
	rows := make(utils.CSV, 0, len(positions))
	for _, x := range positions {
		motive, err := m.MotiveAt(x)
		if err != nil {
			return err
		}
		if math.IsNaN(motive) {
			continue
		}
		rows = append(rows, []string{
			strconv.FormatFloat(x/constants.Micron2M, 'g', -1, 64),
			strconv.FormatFloat(utils.J2eV(motive), 'g', -1, 64),
		})
	}
	return utils.WriteAsCSV(rows, cfg.OutputDir, deviceName+"_motive.txt", []string{"x (um)", "motive (eV)"})
}

const motiveDiagramPoints = 500
