package device

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/wildstyl3r/tecsim/internal/electrode"
	"github.com/wildstyl3r/tecsim/internal/model"
)

func idealDevice(tst *testing.T, collectorVoltage float64) *TEC {
	em, err := electrode.New(electrode.Params{
		Temp: 1000, Barrier: 1, Richardson: 10, Emissivity: 0.5, Position: 0,
	})
	if err != nil {
		tst.Fatal(err)
	}
	co, err := electrode.New(electrode.Params{
		Temp: 150, Barrier: 0.5, Richardson: 10, Emissivity: 0.5, Position: 10,
		Voltage: collectorVoltage,
	})
	if err != nil {
		tst.Fatal(err)
	}
	m, err := model.NewIdeal(em, co)
	if err != nil {
		tst.Fatal(err)
	}
	return New(m)
}

func TestGeometryAndBias(tst *testing.T) {
	chk.PrintTitle("derived geometry and bias quantities")

	tec := idealDevice(tst, 5)
	chk.Float64(tst, "spacing [m]", 1e-12, tec.InterelectrodeSpacing(), 10e-6)
	chk.Float64(tst, "output voltage [V]", 1e-12, tec.OutputVoltage(), 5)
	chk.Float64(tst, "contact potential [V]", 1e-9, tec.ContactPotential(), 0.5)
	chk.Float64(tst, "Carnot", 1e-12, tec.CarnotEfficiency(), 0.85)
}

func TestPowerAndLoad(tst *testing.T) {
	chk.PrintTitle("output power and load resistance")

	tec := idealDevice(tst, 0.2)
	j, err := tec.OutputCurrentDensity()
	if err != nil {
		tst.Fatal(err)
	}
	if j <= 0 {
		tst.Fatalf("forward-biased ideal device must source current, got %g", j)
	}
	p, err := tec.OutputPowerDensity()
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "P = J V", 1e-9*p, p, j*0.2)

	r, err := tec.LoadResistance()
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "R = V/J", 1e-9*r, r, 0.2/j)

	shorted := idealDevice(tst, 0)
	r, err = shorted.LoadResistance()
	if err != nil {
		tst.Fatal(err)
	}
	if r != 0 {
		// zero bias still carries current, so the resistance is zero;
		// NaN would mean the current itself vanished
		tst.Fatalf("expected zero load resistance at zero bias, got %g", r)
	}
}

func TestHeatTransport(tst *testing.T) {
	chk.PrintTitle("heat transport terms")

	tec := idealDevice(tst, 0.2)
	electronic, err := tec.ElectronicHeatTransport()
	if err != nil {
		tst.Fatal(err)
	}
	if electronic <= 0 {
		tst.Fatalf("electron cooling must draw heat from the emitter, got %g", electronic)
	}
	radiative := tec.BlackbodyHeatTransport()
	if radiative <= 0 {
		tst.Fatalf("hot emitter must radiate net power, got %g", radiative)
	}
	total, err := tec.HeatSupplyRate()
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "Q total", 1e-9*total, total, electronic+radiative)

	// either emissivity at zero switches radiation off entirely
	em := tec.Model().Emitter()
	em.Emissivity = 0
	co := tec.Model().Collector()
	m, err := model.NewIdeal(em, co)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "no radiation", 1e-17, New(m).BlackbodyHeatTransport(), 0)
}

func TestEfficiencies(tst *testing.T) {
	chk.PrintTitle("efficiency definitions")

	producing := idealDevice(tst, 0.2)
	eta, err := producing.TotalEfficiency()
	if err != nil {
		tst.Fatal(err)
	}
	if !(eta > 0 && eta < 1) {
		tst.Fatalf("total efficiency %g out of (0, 1)", eta)
	}
	etaEl, err := producing.ElectronicEfficiency()
	if err != nil {
		tst.Fatal(err)
	}
	etaRad, err := producing.RadiationEfficiency()
	if err != nil {
		tst.Fatal(err)
	}
	if eta >= etaEl || eta >= etaRad {
		tst.Errorf("partial efficiencies must bound the total: %g vs %g, %g",
			eta, etaEl, etaRad)
	}

	idle := idealDevice(tst, 0)
	eta, err = idle.TotalEfficiency()
	if err != nil {
		tst.Fatal(err)
	}
	if !math.IsNaN(eta) {
		tst.Fatalf("efficiency without output power must be NaN, got %g", eta)
	}
}

func TestFindVoltageAtMaximum(tst *testing.T) {
	chk.PrintTitle("output power maximization over bias")

	build := func(v float64) (*TEC, error) {
		return idealDevice(tst, v), nil
	}
	power := func(t *TEC) (float64, error) { return t.OutputPowerDensity() }

	// below the contact potential the ideal current stays saturated, so the
	// power J_S * V peaks at the upper sweep edge
	v, p, err := FindVoltageAtMaximum(build, power, 0, 0.5)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "argmax voltage", 1e-3, v, 0.5)

	ref, err := idealDevice(tst, 0.5).OutputPowerDensity()
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "max power", 1e-3*ref, p, ref)

	// past the contact potential the barrier suppresses the current sharply,
	// pinning the maximum to the kink at 0.5 V even on a wider sweep
	v, _, err = FindVoltageAtMaximum(build, power, 0, 3)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "kink voltage", 1e-2, v, 0.5)
}
