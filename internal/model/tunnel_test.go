package model

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestTunnelBarrierTransmission(tst *testing.T) {
	chk.PrintTitle("square barrier transmission coefficient")

	em, co := testPair(tst, 0)
	m, err := NewSimpleTunnelBarrier(em, co, 1)
	if err != nil {
		tst.Fatal(err)
	}

	if _, err := NewSimpleTunnelBarrier(em, co, 0); err == nil {
		tst.Errorf("zero thickness must be rejected")
	}
	if _, err := m.TransmissionCoeff(-1e-20); err == nil {
		tst.Errorf("negative electron energy must be a domain error")
	}

	over, err := m.TransmissionCoeff(co.Barrier * 2)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "above barrier", 1e-15, over, 1)

	under, err := m.TransmissionCoeff(co.Barrier * 0.5)
	if err != nil {
		tst.Fatal(err)
	}
	if under <= 0 || under >= 1 {
		tst.Fatalf("sub-barrier transmission %g out of (0, 1)", under)
	}

	// a thicker barrier transmits less
	thick, err := NewSimpleTunnelBarrier(em, co, 2)
	if err != nil {
		tst.Fatal(err)
	}
	underThick, err := thick.TransmissionCoeff(co.Barrier * 0.5)
	if err != nil {
		tst.Fatal(err)
	}
	if underThick >= under {
		tst.Fatalf("2 nm barrier transmission %g not below 1 nm's %g", underThick, under)
	}
}

func TestTunnelBarrierCurrent(tst *testing.T) {
	chk.PrintTitle("tunnel barrier output current")

	em, co := testPair(tst, 0)
	m, err := NewSimpleTunnelBarrier(em, co, 1)
	if err != nil {
		tst.Fatal(err)
	}

	j, err := m.ForwardCurrentDensity()
	if err != nil {
		tst.Fatal(err)
	}
	js := em.ThermoelectronCurrentDensity()
	if j <= 0 || j > js {
		tst.Fatalf("tunnel current %g out of (0, J_S = %g]", j, js)
	}

	// once the collector motive exceeds the emitter's, nothing arrives
	blocked, err := NewSimpleTunnelBarrier(em, co.WithVoltage(5), 1)
	if err != nil {
		tst.Fatal(err)
	}
	jb, err := blocked.ForwardCurrentDensity()
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "blocked current", 1e-17, jb, 0)

	back, err := m.BackCurrentDensity()
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "back current", 1e-17, back, 0)
}
