package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/eliquious/thermocouple"
	"github.com/eliquious/thermocouple/u6"
	"github.com/go-kit/log"
	"github.com/klauspost/compress/zstd"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(log.NewNopLogger())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLookupCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"value", "0"}, "-6.458\n"},
		{[]string{"value", "270"}, "0.000\n"},
		{[]string{"value", "1642"}, "54.886\n"},
		{[]string{"interp", "0.5"}, "-6.4575\n"},
		{[]string{"emf", "100"}, "4.0960 mV\n"},
		{[]string{"--unit", "F", "emf", "212"}, "4.0960 mV\n"},
		{[]string{"emf", "--", "-270"}, "-6.4580 mV\n"},
		{[]string{"temp", "4.096"}, "100.00 °C\n"},
		{[]string{"temp", "--cj", "25", "3.096"}, "100.00 °C\n"},
		{[]string{"-u", "K", "temp", "4.096"}, "373.15 K\n"},
		{[]string{"verify"}, "ok: 1643 points, -270 °C to 1372 °C, -6.458 mV to 54.886 mV\n"},
	}
	for _, tc := range tests {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			got, err := execute(t, tc.args...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLookupCommandsOutOfRange(t *testing.T) {
	for _, args := range [][]string{
		{"value", "--", "-1"},
		{"value", "1643"},
		{"interp", "1642.5"},
		{"interp", "NaN"},
		{"emf", "1400"},
		{"temp", "60"},
	} {
		_, err := execute(t, args...)
		if !errors.Is(err, thermocouple.ErrOutOfRange) {
			t.Errorf("%v: err = %v, want ErrOutOfRange", args, err)
		}
	}
}

func TestInvalidArguments(t *testing.T) {
	for _, args := range [][]string{
		{"value", "abc"},
		{"interp", "1,5"},
		{"value"},
		{"--unit", "X", "value", "0"},
	} {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestVersion(t *testing.T) {
	got, err := execute(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if got != "ktype dev\n" {
		t.Fatalf("got %q", got)
	}
}

func TestTableCommand(t *testing.T) {
	got, err := execute(t, "table")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != thermocouple.KType.Len()+1 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0] != "celsius,millivolts" || lines[1] != "-270,-6.458" {
		t.Fatalf("unexpected head %q", lines[:2])
	}

	path := filepath.Join(t.TempDir(), "ktype.csv.zst")
	if _, err := execute(t, "table", "--output", path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}
	defer dec.Close()
	raw, err := io.ReadAll(dec)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != got {
		t.Fatal("compressed export differs from stdout export")
	}
}

func TestPollReadings(t *testing.T) {
	var calls int
	read := func() (u6.Reading, error) {
		calls++
		return u6.Reading{Millivolts: 4.096, Celsius: 100}, nil
	}
	var got []u6.Reading
	sink := func(r u6.Reading) error {
		got = append(got, r)
		return nil
	}
	if err := pollReadings(context.Background(), log.NewNopLogger(), read, time.Millisecond, 3, sink); err != nil {
		t.Fatal(err)
	}
	if calls != 3 || len(got) != 3 {
		t.Fatalf("calls=%d readings=%d, want 3", calls, len(got))
	}
}

func TestPollReadingsOutOfRange(t *testing.T) {
	read := func() (u6.Reading, error) {
		return u6.Reading{Millivolts: 60, Celsius: math.NaN()}, &thermocouple.RangeError{Op: "celsius", Value: 60}
	}
	var got []u6.Reading
	sink := func(r u6.Reading) error {
		got = append(got, r)
		return nil
	}
	if err := pollReadings(context.Background(), log.NewNopLogger(), read, time.Millisecond, 2, sink); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || !math.IsNaN(got[0].Celsius) {
		t.Fatalf("unexpected readings %+v", got)
	}
}

func TestPollReadingsError(t *testing.T) {
	errDevice := errors.New("device gone")
	read := func() (u6.Reading, error) {
		return u6.Reading{}, errDevice
	}
	sink := func(u6.Reading) error { return nil }
	if err := pollReadings(context.Background(), log.NewNopLogger(), read, time.Millisecond, 5, sink); !errors.Is(err, errDevice) {
		t.Fatalf("err = %v, want %v", err, errDevice)
	}
}

func TestPollReadingsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls int
	read := func() (u6.Reading, error) {
		calls++
		if calls == 2 {
			cancel()
		}
		return u6.Reading{}, nil
	}
	sink := func(u6.Reading) error { return nil }
	// zero samples reads until cancelled
	if err := pollReadings(ctx, log.NewNopLogger(), read, time.Millisecond, 0, sink); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestDrainReadingsStreamError(t *testing.T) {
	errPacket := errors.New("corrupt packet")
	in := make(chan u6.StreamResponse, 2)
	in <- u6.StreamResponse{Data: make([]u6.ChannelData, 2)}
	in <- u6.StreamResponse{PacketNumber: 1, Error: errPacket}
	close(in)

	var got int
	sink := func(u6.Reading) error {
		got++
		return nil
	}
	ctx := context.Background()
	err := drainReadings(ctx, log.NewNopLogger(), u6.StreamReadings(ctx, in, 25), 0, sink)
	if !errors.Is(err, errPacket) {
		t.Fatalf("err = %v, want %v", err, errPacket)
	}
	if got != 2 {
		t.Errorf("sink got %d readings, want 2", got)
	}
}

func TestDrainReadingsCancelled(t *testing.T) {
	in := make(chan u6.StreamResponse, 1)
	in <- u6.StreamResponse{Error: errors.New("endpoint closed")}
	close(in)

	ctx, cancel := context.WithCancel(context.Background())
	rs := u6.StreamReadings(ctx, in, 25)
	cancel()
	sink := func(u6.Reading) error { return nil }
	if err := drainReadings(ctx, log.NewNopLogger(), rs, 0, sink); err != nil {
		t.Fatalf("err = %v, want nil after cancellation", err)
	}
}

func TestDrainReadingsSamples(t *testing.T) {
	in := make(chan u6.StreamResponse, 2)
	in <- u6.StreamResponse{Data: make([]u6.ChannelData, 5)}
	in <- u6.StreamResponse{Error: errors.New("not reached")}
	close(in)

	var got []u6.Reading
	sink := func(r u6.Reading) error {
		got = append(got, r)
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := drainReadings(ctx, log.NewNopLogger(), u6.StreamReadings(ctx, in, 25), 3, sink); err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || math.Abs(got[0].Celsius-25) > 1e-3 {
		t.Fatalf("unexpected readings %+v", got)
	}
}

func TestFormatReading(t *testing.T) {
	r := u6.Reading{
		Time:                time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Millivolts:          3.096,
		ColdJunctionCelsius: 25,
		Celsius:             100,
	}
	want := "2024-05-01T12:00:00Z    3.0960 mV  cj  25.00 °C  100.00 °C"
	if got := formatReading(r, thermocouple.Celsius); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	r.Celsius = math.NaN()
	if got := formatReading(r, thermocouple.Celsius); !strings.HasSuffix(got, "out of range") {
		t.Errorf("got %q", got)
	}
}
