package u6

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/eliquious/thermocouple"
	"github.com/go-kit/log/level"
)

// ThermocoupleConfig describes a type K thermocouple wired to an analog
// input. With Differential set the negative lead goes to PositiveChannel+1.
type ThermocoupleConfig struct {
	PositiveChannel int
	Differential    bool
	GainIndex       GainIndex
	ResolutionIndex int
	SettlingFactor  int

	// ColdJunctionOffset is added to the internal temperature sensor in °C,
	// accounting for the difference between the sensor and the terminals.
	ColdJunctionOffset float64

	// FixedColdJunction, when non-nil, replaces the internal sensor reading.
	FixedColdJunction *float64
}

// DefaultThermocoupleConfig reads AIN0/AIN1 differentially on the ±0.1 V
// range, which covers the whole type K table.
var DefaultThermocoupleConfig = ThermocoupleConfig{
	PositiveChannel: 0,
	Differential:    true,
	GainIndex:       GainIndex100,
	ResolutionIndex: 8,
}

// Reading is a cold junction compensated thermocouple measurement.
type Reading struct {
	Time                time.Time
	Millivolts          float64
	ColdJunctionCelsius float64
	Celsius             float64
}

// ReadThermocouple samples the thermocouple input and the cold junction in a
// single Feedback call and converts the result with the type K table.
func (u *U6) ReadThermocouple(cfg ThermocoupleConfig) (Reading, error) {
	if cfg.ResolutionIndex > 8 && !u.config.HiResolution() {
		return Reading{}, ErrResolutionUnsupported
	}

	tc := &FeedbackAIN24{
		PositiveChannel: cfg.PositiveChannel,
		ResolutionIndex: cfg.ResolutionIndex,
		GainIndex:       cfg.GainIndex,
		SettlingFactor:  cfg.SettlingFactor,
		Differential:    cfg.Differential,
	}
	cmds := []FeedbackCommand{tc}

	var cj *FeedbackAIN24
	if cfg.FixedColdJunction == nil {
		cj = &FeedbackAIN24{
			PositiveChannel: ChannelTemperature,
			ResolutionIndex: cfg.ResolutionIndex,
			GainIndex:       GainIndex1,
			SettlingFactor:  cfg.SettlingFactor,
		}
		cmds = append(cmds, cj)
	}

	if err := u.Feedback(cmds...); err != nil {
		return Reading{}, err
	}

	volts, err := tc.Voltage()
	if err != nil {
		return Reading{}, err
	}
	r := Reading{Time: time.Now(), Millivolts: volts * 1000}

	if cj != nil {
		cjVolts, err := cj.Voltage()
		if err != nil {
			return Reading{}, err
		}
		r.ColdJunctionCelsius = thermocouple.KelvinToCelsius(u.calibration.Temperature(cjVolts)) + cfg.ColdJunctionOffset
	} else {
		r.ColdJunctionCelsius = *cfg.FixedColdJunction
	}

	r.Celsius, err = thermocouple.KType.Compensate(r.Millivolts, r.ColdJunctionCelsius)
	if err != nil {
		level.Debug(u.logger).Log("msg", "reading outside the type K table", "mv", r.Millivolts, "cj", r.ColdJunctionCelsius, "err", err)
		r.Celsius = math.NaN()
		return r, err
	}
	return r, nil
}

// ReadColdJunction returns the internal temperature sensor in °C.
func (u *U6) ReadColdJunction() (float64, error) {
	cj := &FeedbackAIN24{PositiveChannel: ChannelTemperature, ResolutionIndex: 8, GainIndex: GainIndex1}
	if err := u.Feedback(cj); err != nil {
		return 0, err
	}
	v, err := cj.Voltage()
	if err != nil {
		return 0, err
	}
	return thermocouple.KelvinToCelsius(u.calibration.Temperature(v)), nil
}

// ReadingStream delivers the readings converted from a stream.
type ReadingStream struct {
	// C is closed when the stream ends or fails.
	C   <-chan Reading
	err error
}

// Err returns the error that ended the stream, or nil if the packets channel
// closed without one. It must only be called after C is closed.
func (s *ReadingStream) Err() error {
	return s.err
}

// StreamReadings converts the samples of a stream into thermocouple readings
// against a fixed cold junction temperature. Every channel of the stream is
// treated as a type K input. The first failed packet or sample ends the
// stream and is reported by Err; the remaining packets are discarded until in
// closes.
func StreamReadings(ctx context.Context, in <-chan StreamResponse, coldJunctionCelsius float64) *ReadingStream {
	out := make(chan Reading, cap(in))
	rs := &ReadingStream{C: out}
	go func() {
		rs.err = convertStream(ctx, in, out, coldJunctionCelsius)
		close(out)
		if rs.err != nil {
			// keep the producer from blocking until its context is done
			for range in {
			}
		}
	}()
	return rs
}

func convertStream(ctx context.Context, in <-chan StreamResponse, out chan<- Reading, coldJunctionCelsius float64) error {
	for resp := range in {
		if resp.Error != nil {
			return fmt.Errorf("stream packet %d: %w", resp.PacketNumber, resp.Error)
		}
		for i := range resp.Data {
			volts, err := resp.Data[i].GetCalibratedAIN()
			if err != nil {
				return fmt.Errorf("stream packet %d sample %d: %w", resp.PacketNumber, i, err)
			}
			r := Reading{
				Time:                resp.Timestamp,
				Millivolts:          volts * 1000,
				ColdJunctionCelsius: coldJunctionCelsius,
			}
			if r.Celsius, err = thermocouple.KType.Compensate(r.Millivolts, coldJunctionCelsius); err != nil {
				r.Celsius = math.NaN()
			}
			select {
			case out <- r:
			case <-ctx.Done():
				return nil
			}
		}
	}
	return nil
}
