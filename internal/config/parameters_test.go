package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const sampleConfig = `
OutputDir = "out"

[Devices.cs_w]
Model = "langmuir"
SweepStart = -0.5
SweepStop = 1.0
SweepPoints = 50

[Devices.cs_w.Emitter]
Temp = 1000.0
Barrier = 1.0
Richardson = 10.0
Position = 0.0

[Devices.cs_w.Collector]
Temp = 300.0
Barrier = 0.8
Position = 10.0

[Devices.diamond]
Model = "neac"

[Devices.diamond.Emitter]
Temp = 1100.0
Barrier = 1.2
Position = 0.0

[Devices.diamond.Collector]
Temp = 300.0
Barrier = 0.9
Position = 5.0
NEA = 0.1
`

func writeSample(tst *testing.T) string {
	path := filepath.Join(tst.TempDir(), "devices.toml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0640); err != nil {
		tst.Fatal(err)
	}
	return path
}

func TestLoadDefaults(tst *testing.T) {
	chk.PrintTitle("config defaults fill only undefined keys")

	cfg, err := Load(writeSample(tst))
	if err != nil {
		tst.Fatal(err)
	}
	if cfg.OutputDir != "out" {
		tst.Fatalf("unexpected output dir %q", cfg.OutputDir)
	}
	if len(cfg.Devices) != 2 {
		tst.Fatalf("expected 2 devices, got %d", len(cfg.Devices))
	}

	csw := cfg.Devices["cs_w"]
	chk.Float64(tst, "explicit richardson kept", 1e-12, csw.Emitter.Richardson, 10)
	chk.Float64(tst, "default richardson", 1e-12, csw.Collector.Richardson, 120)
	chk.Float64(tst, "default emissivity", 1e-12, csw.Emitter.Emissivity, 0.5)
	if csw.SweepPoints != 50 {
		tst.Fatalf("explicit sweep points overwritten: %d", csw.SweepPoints)
	}

	diamond := cfg.Devices["diamond"]
	if diamond.SweepPoints != 100 {
		tst.Fatalf("default sweep points not applied: %d", diamond.SweepPoints)
	}
	// sweep defaults to [0, contact potential]
	chk.Float64(tst, "default sweep stop", 1e-12, diamond.SweepStop, 1.2-0.9)
}

func TestBuildDevices(tst *testing.T) {
	chk.PrintTitle("devices build into the configured model")

	cfg, err := Load(writeSample(tst))
	if err != nil {
		tst.Fatal(err)
	}

	for name, parameters := range cfg.Devices {
		tec, err := parameters.Build(0)
		if err != nil {
			tst.Fatalf("%s: %v", name, err)
		}
		if tec.OutputVoltage() != 0 {
			tst.Fatalf("%s: bias not applied", name)
		}
	}

	bad := cfg.Devices["cs_w"]
	bad.Model = "bohm"
	if _, err := bad.Build(0); err == nil {
		tst.Errorf("unknown model name must be rejected")
	}

	cold := cfg.Devices["cs_w"]
	cold.Emitter.Temp = 100
	if _, err := cold.Build(0); err == nil {
		tst.Errorf("collector hotter than emitter must be rejected")
	}
}

func TestLoadErrors(tst *testing.T) {
	chk.PrintTitle("load failure modes")

	if _, err := Load(filepath.Join(tst.TempDir(), "missing.toml")); err == nil {
		tst.Errorf("missing file must fail")
	}

	empty := filepath.Join(tst.TempDir(), "empty.toml")
	if err := os.WriteFile(empty, []byte("OutputDir = \"out\"\n"), 0640); err != nil {
		tst.Fatal(err)
	}
	if _, err := Load(empty); err == nil {
		tst.Errorf("config without devices must fail")
	}
}
