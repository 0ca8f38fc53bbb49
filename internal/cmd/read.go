package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os/signal"
	"syscall"
	"time"

	"github.com/eliquious/thermocouple"
	"github.com/eliquious/thermocouple/internal/config"
	"github.com/eliquious/thermocouple/internal/recorder"
	"github.com/eliquious/thermocouple/u6"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/gousb"
	"github.com/spf13/cobra"
)

// maxStreamResolution is the highest resolution index allowed while streaming.
const maxStreamResolution = 8

func newReadCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read a thermocouple attached to a LabJack U6",
		Long: `read takes cold junction compensated readings from a type K thermocouple wired to a LabJack U6.
Readings are printed and, with --output, recorded as CSV. SIGINT or SIGTERM stops the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.read(ctx, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.Int("channel", 0, config.Description("channel"))
	flags.Bool("differential", true, config.Description("differential"))
	flags.Int("gain-index", 2, config.Description("gain_index"))
	flags.Int("resolution-index", 8, config.Description("resolution_index"))
	flags.Int("settling-factor", 0, config.Description("settling_factor"))
	flags.Bool("internal-cj", true, config.Description("internal_cj"))
	flags.Float64("cold-junction-c", 25, config.Description("cold_junction_c"))
	flags.Float64("cj-offset", 0, config.Description("cj_offset"))
	flags.String("interval", "1s", config.Description("interval"))
	flags.IntP("samples", "n", 10, config.Description("samples"))
	flags.Int("stream-hz", 0, config.Description("stream_hz"))
	flags.StringP("output", "o", "", config.Description("output"))
	return cmd
}

func (a *app) read(ctx context.Context, out io.Writer) error {
	c := a.config

	usbctx := gousb.NewContext()
	defer usbctx.Close()

	dev, err := u6.OpenUSBConnection(usbctx)
	if err != nil {
		return fmt.Errorf("opening U6: %w", err)
	}
	defer dev.Close()
	dev.SetLogger(a.logger)

	desc := dev.DeviceDesc()
	level.Info(a.logger).Log("msg", "connected", "device", desc.DeviceType, "serial", desc.SerialNumber, "firmware", desc.FirmwareVersion)

	var rec *recorder.Recorder
	if path := c.Output(); path != "" {
		if rec, err = recorder.OpenFile(path, c.Unit()); err != nil {
			return fmt.Errorf("opening recording: %w", err)
		}
		level.Info(a.logger).Log("msg", "recording", "path", path)
	}

	sink := func(r u6.Reading) error {
		fmt.Fprintln(out, formatReading(r, c.Unit()))
		if rec != nil {
			return rec.Write(r)
		}
		return nil
	}

	if hz := c.StreamHz(); hz > 0 {
		err = a.stream(ctx, dev, hz, sink)
	} else {
		err = pollReadings(ctx, a.logger, func() (u6.Reading, error) {
			return dev.ReadThermocouple(c.Thermocouple())
		}, c.Interval(), c.Samples(), sink)
	}

	if rec != nil {
		if cerr := rec.Close(); err == nil {
			err = cerr
		}
		level.Info(a.logger).Log("msg", "recording closed", "rows", rec.Rows())
	}
	return err
}

// pollReadings calls read every interval until samples readings were taken
// or ctx is done. Zero samples reads until ctx is done. Readings outside the
// table are passed on with a NaN temperature.
func pollReadings(ctx context.Context, logger log.Logger, read func() (u6.Reading, error), interval time.Duration, samples int, sink func(u6.Reading) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for n := 0; samples == 0 || n < samples; n++ {
		if ctx.Err() != nil {
			return nil
		}
		if n > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}

		r, err := read()
		if err != nil {
			if !errors.Is(err, thermocouple.ErrOutOfRange) {
				return err
			}
			level.Warn(logger).Log("msg", "reading outside the type K table", "mv", r.Millivolts, "cj", r.ColdJunctionCelsius, "err", err)
		}
		if err := sink(r); err != nil {
			return err
		}
	}
	return nil
}

// stream reads the thermocouple channel in stream mode against a cold
// junction sampled once before the stream starts.
func (a *app) stream(ctx context.Context, dev *u6.U6, hz int, sink func(u6.Reading) error) error {
	tc := a.config.Thermocouple()

	var cj float64
	if tc.FixedColdJunction != nil {
		cj = *tc.FixedColdJunction
	} else {
		v, err := dev.ReadColdJunction()
		if err != nil {
			return fmt.Errorf("reading cold junction: %w", err)
		}
		cj = v + tc.ColdJunctionOffset
	}

	diff := u6.DifferentialInputDisabled
	if tc.Differential {
		diff = u6.DifferentialInputEnabled
	}
	s, err := dev.NewStream(&u6.StreamConfig{
		ResolutionIndex:  byte(min(tc.ResolutionIndex, maxStreamResolution)),
		SamplesPerPacket: 25,
		SettlingFactor:   byte(tc.SettlingFactor),
		ScanFrequency:    hz,
		Channels: []u6.ChannelConfig{
			{PositiveChannel: byte(tc.PositiveChannel), GainIndex: tc.GainIndex, Differential: diff},
		},
	})
	if err != nil {
		return fmt.Errorf("configuring stream: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	packets, err := s.Start(ctx)
	if err != nil {
		cancel()
		return fmt.Errorf("starting stream: %w", err)
	}
	level.Info(a.logger).Log("msg", "streaming", "hz", hz, "cj", cj)

	// the device stream is stopped once packets is closed
	defer func() {
		cancel()
		for range packets {
		}
	}()

	return drainReadings(ctx, a.logger, u6.StreamReadings(ctx, packets, cj), a.config.Samples(), sink)
}

// drainReadings passes streamed readings to sink until samples readings were
// taken or the stream ends. A stream that fails before ctx is done returns
// its error.
func drainReadings(ctx context.Context, logger log.Logger, rs *u6.ReadingStream, samples int, sink func(u6.Reading) error) error {
	n := 0
	for r := range rs.C {
		if err := sink(r); err != nil {
			return err
		}
		n++
		if samples > 0 && n >= samples {
			return nil
		}
	}
	if err := rs.Err(); err != nil && ctx.Err() == nil {
		level.Warn(logger).Log("msg", "stream failed", "readings", n, "err", err)
		return err
	}
	return nil
}

func formatReading(r u6.Reading, unit thermocouple.Unit) string {
	temperature := "out of range"
	if !math.IsNaN(r.Celsius) {
		temperature = fmt.Sprintf("%.2f %s", unit.FromCelsius(r.Celsius), unit)
	}
	return fmt.Sprintf("%s  %8.4f mV  cj %6.2f %s  %s",
		r.Time.Format(time.RFC3339), r.Millivolts, unit.FromCelsius(r.ColdJunctionCelsius), unit, temperature)
}
