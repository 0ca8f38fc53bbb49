package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/eliquious/thermocouple"
	"github.com/eliquious/thermocouple/u6"
	"github.com/go-kit/log"
	"github.com/spf13/viper"
)

// Config provides getters for working with the config
type Config struct {
	logger log.Logger
}

// Init initializes the Config struct
func Init(logger log.Logger) (*Config, error) {
	c := &Config{logger: logger}
	return c, nil
}

// runtimeConfig defines the config variables, validation, and viper config
type runtimeConfig struct {
	Verbose         bool    `viper:"verbose" envkey:"KTYPE_DEBUG" default:"false" description:"Enable verbose output"`
	Unit            string  `viper:"unit" validate:"unit" envkey:"KTYPE_UNIT" default:"C" description:"Temperature unit (C|F|K)"`
	ColdJunctionC   float64 `viper:"cold_junction_c" validate:"gte=-270,lte=1372" envkey:"KTYPE_COLD_JUNCTION_C" default:"25" description:"Cold junction temperature in °C when the internal sensor is not used"`
	InternalCJ      bool    `viper:"internal_cj" envkey:"KTYPE_INTERNAL_CJ" default:"true" description:"Use the U6 internal temperature sensor as the cold junction"`
	CJOffset        float64 `viper:"cj_offset" validate:"gte=-20,lte=20" envkey:"KTYPE_CJ_OFFSET" default:"0" description:"Offset in °C added to the internal temperature sensor"`
	Channel         int     `viper:"channel" validate:"gte=0,lte=13" envkey:"KTYPE_CHANNEL" default:"0" description:"Positive analog input of the thermocouple"`
	Differential    bool    `viper:"differential" envkey:"KTYPE_DIFFERENTIAL" default:"true" description:"Read the thermocouple differentially against channel+1"`
	GainIndex       int     `viper:"gain_index" validate:"gte=0,lte=3" envkey:"KTYPE_GAIN_INDEX" default:"2" description:"Gain index (0=±10V 1=±1V 2=±0.1V 3=±0.01V)"`
	ResolutionIndex int     `viper:"resolution_index" validate:"gte=1,lte=12" envkey:"KTYPE_RESOLUTION_INDEX" default:"8" description:"ADC resolution index"`
	SettlingFactor  int     `viper:"settling_factor" validate:"gte=0,lte=9" envkey:"KTYPE_SETTLING_FACTOR" default:"0" description:"ADC settling factor"`
	Interval        string  `viper:"interval" validate:"duration" envkey:"KTYPE_INTERVAL" default:"1s" description:"Time between readings"`
	Samples         int     `viper:"samples" validate:"gte=0" envkey:"KTYPE_SAMPLES" default:"10" description:"Number of readings to take (0 = until interrupted)"`
	StreamHz        int     `viper:"stream_hz" validate:"gte=0,lte=50000" envkey:"KTYPE_STREAM_HZ" default:"0" description:"Stream at this scan frequency instead of polling (0 = poll)"`
	Output          string  `viper:"output" envkey:"KTYPE_OUTPUT" default:"" description:"(Optional) CSV file to record readings to; a .zst suffix compresses it"`
}

// Verbose returns whether verbose mode is enabled
func (c *Config) Verbose() bool {
	return viper.GetBool("verbose")
}

// Unit returns the temperature unit for output. Invalid values fall back to
// Celsius; Validate reports them.
func (c *Config) Unit() thermocouple.Unit {
	u, err := thermocouple.ParseUnit(viper.GetString("unit"))
	if err != nil {
		return thermocouple.Celsius
	}
	return u
}

// ColdJunctionC returns the fixed cold junction temperature in °C
func (c *Config) ColdJunctionC() float64 {
	return viper.GetFloat64("cold_junction_c")
}

// InternalCJ returns whether the internal temperature sensor is the cold junction
func (c *Config) InternalCJ() bool {
	return viper.GetBool("internal_cj")
}

// Thermocouple returns the U6 input configuration
func (c *Config) Thermocouple() u6.ThermocoupleConfig {
	cfg := u6.ThermocoupleConfig{
		PositiveChannel:    viper.GetInt("channel"),
		Differential:       viper.GetBool("differential"),
		GainIndex:          u6.GainIndex(viper.GetInt("gain_index")),
		ResolutionIndex:    viper.GetInt("resolution_index"),
		SettlingFactor:     viper.GetInt("settling_factor"),
		ColdJunctionOffset: viper.GetFloat64("cj_offset"),
	}
	if !c.InternalCJ() {
		cj := c.ColdJunctionC()
		cfg.FixedColdJunction = &cj
	}
	return cfg
}

// Interval returns the time between readings
func (c *Config) Interval() time.Duration {
	d, err := time.ParseDuration(viper.GetString("interval"))
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}

// Samples returns the number of readings to take
func (c *Config) Samples() int {
	return viper.GetInt("samples")
}

// StreamHz returns the stream scan frequency
func (c *Config) StreamHz() int {
	return viper.GetInt("stream_hz")
}

// Output returns the recording path
func (c *Config) Output() string {
	out := viper.GetString("output")
	if strings.HasPrefix(out, "./") {
		currentDir, _ := filepath.Abs(".")
		out = filepath.Join(currentDir, strings.TrimPrefix(out, "./"))
		viper.Set("output", out)
	}
	return out
}
