package config

import (
	"strings"
	"testing"
	"time"

	"github.com/eliquious/thermocouple"
	"github.com/eliquious/thermocouple/u6"
	"github.com/go-kit/log"
	"github.com/spf13/viper"
)

func newTestConfig(t *testing.T) *Config {
	t.Helper()
	t.Cleanup(func() {
		viper.Reset()
		bindDefaults()
	})
	c, err := Init(log.NewNopLogger())
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestDefaults(t *testing.T) {
	c := newTestConfig(t)
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if c.Verbose() {
		t.Error("verbose should default to false")
	}
	if c.Unit() != thermocouple.Celsius {
		t.Errorf("Unit() = %v", c.Unit())
	}
	if c.Interval() != time.Second {
		t.Errorf("Interval() = %v", c.Interval())
	}
	if c.Samples() != 10 || c.StreamHz() != 0 || c.Output() != "" {
		t.Errorf("samples=%d stream_hz=%d output=%q", c.Samples(), c.StreamHz(), c.Output())
	}

	tc := c.Thermocouple()
	want := u6.DefaultThermocoupleConfig
	if tc.PositiveChannel != want.PositiveChannel || tc.Differential != want.Differential ||
		tc.GainIndex != want.GainIndex || tc.ResolutionIndex != want.ResolutionIndex {
		t.Errorf("Thermocouple() = %+v, want %+v", tc, want)
	}
	if tc.FixedColdJunction != nil {
		t.Error("internal cold junction should be the default")
	}
}

func TestEnvironment(t *testing.T) {
	t.Setenv("KTYPE_UNIT", "fahrenheit")
	t.Setenv("KTYPE_CHANNEL", "4")
	t.Setenv("KTYPE_INTERNAL_CJ", "false")
	t.Setenv("KTYPE_COLD_JUNCTION_C", "21.5")
	t.Setenv("KTYPE_INTERVAL", "250ms")
	c := newTestConfig(t)
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Unit() != thermocouple.Fahrenheit {
		t.Errorf("Unit() = %v", c.Unit())
	}
	if c.Interval() != 250*time.Millisecond {
		t.Errorf("Interval() = %v", c.Interval())
	}
	tc := c.Thermocouple()
	if tc.PositiveChannel != 4 {
		t.Errorf("PositiveChannel = %d", tc.PositiveChannel)
	}
	if tc.FixedColdJunction == nil || *tc.FixedColdJunction != 21.5 {
		t.Errorf("FixedColdJunction = %v", tc.FixedColdJunction)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		key   string
		value any
		field string
	}{
		{"unit", "rankine", "Unit"},
		{"channel", 14, "Channel"},
		{"gain_index", 4, "GainIndex"},
		{"resolution_index", 0, "ResolutionIndex"},
		{"settling_factor", 10, "SettlingFactor"},
		{"interval", "soon", "Interval"},
		{"interval", "-1s", "Interval"},
		{"samples", -1, "Samples"},
		{"stream_hz", 100000, "StreamHz"},
		{"cold_junction_c", 2000.0, "ColdJunctionC"},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			c := newTestConfig(t)
			viper.Set(tc.key, tc.value)
			err := c.Validate()
			if err == nil {
				t.Fatalf("%s=%v validated", tc.key, tc.value)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Fatalf("error %q does not name %s", err, tc.field)
			}
		})
	}
}

func TestDescription(t *testing.T) {
	if Description("unit") == "" {
		t.Error("missing description for unit")
	}
	if Description("missing") != "" {
		t.Error("unexpected description for an unknown key")
	}
}
