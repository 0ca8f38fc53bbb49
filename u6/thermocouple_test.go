package u6

import (
	"errors"
	"math"
	"testing"

	"github.com/eliquious/thermocouple"
)

const (
	// 3.0949 mV on the x100 range
	rawThermocouple = (33523 + 980) * 256
	// 1.8077 V on the x1 range, 24.988 °C on the default constants
	rawInternalTemperature = (33523 + 5724) * 256
)

func TestReadThermocouple(t *testing.T) {
	f := newFakeConn()
	dev := openFake(t, f)
	f.ain[0] = rawThermocouple
	f.ain[ChannelTemperature] = rawInternalTemperature

	r, err := dev.ReadThermocouple(DefaultThermocoupleConfig)
	if err != nil {
		t.Fatalf("ReadThermocouple: %v", err)
	}
	if math.Abs(r.Millivolts-3.0949) > 1e-3 {
		t.Errorf("Millivolts = %v, want 3.0949", r.Millivolts)
	}
	if math.Abs(r.ColdJunctionCelsius-24.988) > 0.02 {
		t.Errorf("ColdJunctionCelsius = %v, want 24.988", r.ColdJunctionCelsius)
	}
	if math.Abs(r.Celsius-100) > 0.1 {
		t.Errorf("Celsius = %v, want 100", r.Celsius)
	}
	if r.Time.IsZero() {
		t.Error("reading has no timestamp")
	}

	// both inputs travel in a single feedback command
	cmd := f.commands[len(f.commands)-1]
	if len(cmd) != 16 || cmd[8] != 0 || cmd[12] != ChannelTemperature {
		t.Errorf("unexpected feedback command: %v", cmd)
	}
}

func TestReadThermocoupleFixedColdJunction(t *testing.T) {
	f := newFakeConn()
	dev := openFake(t, f)
	f.ain[0] = rawThermocouple

	cj := 25.0
	cfg := DefaultThermocoupleConfig
	cfg.FixedColdJunction = &cj
	r, err := dev.ReadThermocouple(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if r.ColdJunctionCelsius != 25 {
		t.Errorf("ColdJunctionCelsius = %v, want 25", r.ColdJunctionCelsius)
	}
	if math.Abs(r.Celsius-100) > 0.1 {
		t.Errorf("Celsius = %v, want 100", r.Celsius)
	}
	if cmd := f.commands[len(f.commands)-1]; len(cmd) != 12 {
		t.Errorf("fixed cold junction should not read the internal sensor: %v", cmd)
	}
}

func TestReadThermocoupleOutOfRange(t *testing.T) {
	f := newFakeConn()
	dev := openFake(t, f)
	f.ain[0] = (33523 + 30000) * 256
	f.ain[ChannelTemperature] = rawInternalTemperature

	r, err := dev.ReadThermocouple(DefaultThermocoupleConfig)
	if !errors.Is(err, thermocouple.ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
	if !math.IsNaN(r.Celsius) {
		t.Errorf("Celsius = %v, want NaN", r.Celsius)
	}
	if r.Millivolts < 90 {
		t.Errorf("Millivolts = %v, want the raw measurement", r.Millivolts)
	}
}

func TestReadColdJunction(t *testing.T) {
	f := newFakeConn()
	dev := openFake(t, f)
	f.ain[ChannelTemperature] = rawInternalTemperature

	c, err := dev.ReadColdJunction()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(c-24.988) > 0.02 {
		t.Fatalf("ReadColdJunction = %v, want 24.988", c)
	}
}

func TestReadThermocoupleHighResolution(t *testing.T) {
	f := newFakeConn()
	dev := openFake(t, f)
	f.ain[0] = rawThermocouple
	f.ain[ChannelTemperature] = rawInternalTemperature

	cfg := DefaultThermocoupleConfig
	cfg.ResolutionIndex = 12
	sent := len(f.commands)
	if _, err := dev.ReadThermocouple(cfg); !errors.Is(err, ErrResolutionUnsupported) {
		t.Fatalf("U6 with resolution 12: err = %v, want ErrResolutionUnsupported", err)
	}
	if len(f.commands) != sent {
		t.Error("a command was sent for an unsupported resolution")
	}

	pro := newFakeConn()
	pro.versionInfo = versionInfoU6Pro
	proDev := openFake(t, pro)
	pro.ain[0] = rawThermocouple
	pro.ain[ChannelTemperature] = rawInternalTemperature
	r, err := proDev.ReadThermocouple(cfg)
	if err != nil {
		t.Fatalf("U6-Pro with resolution 12: %v", err)
	}
	if math.Abs(r.Celsius-100) > 0.1 {
		t.Errorf("Celsius = %v, want 100", r.Celsius)
	}
}
