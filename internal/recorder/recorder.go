// Package recorder writes thermocouple readings and calibration tables as
// CSV, optionally zstd compressed.
package recorder

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/eliquious/thermocouple"
	"github.com/eliquious/thermocouple/u6"
	"github.com/klauspost/compress/zstd"
)

// CompressedSuffix selects zstd compression in OpenFile.
const CompressedSuffix = ".zst"

// Recorder appends readings to a CSV stream. A Recorder is not safe for
// concurrent use.
type Recorder struct {
	unit    thermocouple.Unit
	csv     *csv.Writer
	buf     *bufio.Writer
	encoder *zstd.Encoder
	closer  io.Closer
	rows    int
}

// New writes a header and returns a Recorder writing to w. The temperature
// column is expressed in unit.
func New(w io.Writer, unit thermocouple.Unit, compress bool) (*Recorder, error) {
	r := &Recorder{unit: unit}
	if compress {
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("creating zstd encoder: %w", err)
		}
		r.encoder = enc
		w = enc
	}
	r.buf = bufio.NewWriter(w)
	r.csv = csv.NewWriter(r.buf)
	if err := r.csv.Write([]string{"time", "millivolts", "cold_junction_c", "temperature_" + strings.ToLower(string(unit))}); err != nil {
		return nil, err
	}
	return r, nil
}

// OpenFile creates path and returns a Recorder writing to it. Paths ending
// in CompressedSuffix are zstd compressed.
func OpenFile(path string, unit thermocouple.Unit) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	r, err := New(f, unit, strings.HasSuffix(path, CompressedSuffix))
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// Write records a single reading. Readings outside the table keep an empty
// temperature column.
func (r *Recorder) Write(reading u6.Reading) error {
	temperature := ""
	if !math.IsNaN(reading.Celsius) {
		temperature = formatFloat(r.unit.FromCelsius(reading.Celsius), 3)
	}
	r.rows++
	return r.csv.Write([]string{
		reading.Time.UTC().Format(time.RFC3339Nano),
		formatFloat(reading.Millivolts, 4),
		formatFloat(reading.ColdJunctionCelsius, 3),
		temperature,
	})
}

// Rows returns the number of readings written.
func (r *Recorder) Rows() int {
	return r.rows
}

// Flush pushes buffered rows to the underlying writer. Compressed output is
// only complete after Close.
func (r *Recorder) Flush() error {
	r.csv.Flush()
	if err := r.csv.Error(); err != nil {
		return err
	}
	if err := r.buf.Flush(); err != nil {
		return err
	}
	if r.encoder != nil {
		return r.encoder.Flush()
	}
	return nil
}

// Close flushes the recorder and closes the file opened by OpenFile.
func (r *Recorder) Close() error {
	err := r.Flush()
	if r.encoder != nil {
		if cerr := r.encoder.Close(); err == nil {
			err = cerr
		}
	}
	if r.closer != nil {
		if cerr := r.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// ExportTable writes every point of t as celsius,millivolts rows.
func ExportTable(w io.Writer, t *thermocouple.Table, compress bool) error {
	var enc *zstd.Encoder
	if compress {
		var err error
		if enc, err = zstd.NewWriter(w); err != nil {
			return fmt.Errorf("creating zstd encoder: %w", err)
		}
		w = enc
	}

	buf := bufio.NewWriter(w)
	cw := csv.NewWriter(buf)
	if err := cw.Write([]string{"celsius", "millivolts"}); err != nil {
		return err
	}
	for i := 0; i < t.Len(); i++ {
		v, err := t.ValueAt(i)
		if err != nil {
			return err
		}
		celsius := t.Origin() + float64(i)*t.Step()
		if err := cw.Write([]string{formatFloat(celsius, -1), strconv.FormatFloat(float64(v), 'f', 3, 32)}); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if enc != nil {
		return enc.Close()
	}
	return nil
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
