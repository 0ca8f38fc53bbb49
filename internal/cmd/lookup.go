package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eliquious/thermocouple"
	"github.com/eliquious/thermocouple/internal/recorder"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newValueCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "value <index>",
		Short: "Print the table entry at an index in mV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}
			v, err := thermocouple.KType.ValueAt(index)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(float64(v), 'f', 3, 32))
			return nil
		},
	}
}

func newInterpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interp <position>",
		Short: "Interpolate the table at a fractional index in mV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parseFloat(args[0])
			if err != nil {
				return err
			}
			v, err := thermocouple.KType.Interpolate(position)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", v)
			return nil
		},
	}
}

func newEMFCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "emf <temperature>",
		Short: "Convert a temperature to the reference EMF in mV",
		Long:  `emf prints the EMF of a type K thermocouple at the given temperature with the reference junction at 0 °C. The temperature is read in --unit.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseFloat(args[0])
			if err != nil {
				return err
			}
			mv, err := thermocouple.KType.Millivolts(a.config.Unit().ToCelsius(t))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.4f mV\n", mv)
			return nil
		},
	}
}

func newTempCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "temp <millivolts>",
		Short: "Convert a measured EMF in mV to a temperature",
		Long:  `temp converts the EMF measured across a type K thermocouple to the temperature of its hot junction. --cj gives the cold junction temperature in --unit.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mv, err := parseFloat(args[0])
			if err != nil {
				return err
			}
			unit := a.config.Unit()
			cj, _ := cmd.Flags().GetFloat64("cj")
			c, err := thermocouple.KType.Compensate(mv, unit.ToCelsius(cj))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f %s\n", unit.FromCelsius(c), unit)
			return nil
		},
	}
	cmd.Flags().Float64("cj", 0, "Cold junction temperature")
	return cmd
}

func newTableCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Export the type K table as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := viper.GetString("output")
			if path == "" {
				return recorder.ExportTable(cmd.OutOrStdout(), thermocouple.KType, false)
			}
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := recorder.ExportTable(f, thermocouple.KType, strings.HasSuffix(path, recorder.CompressedSuffix)); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			level.Info(a.logger).Log("msg", "table exported", "path", path, "points", thermocouple.KType.Len())
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout; a .zst suffix compresses it")
	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the table is monotonic and print its extent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := thermocouple.KType
			if err := t.Verify(); err != nil {
				return err
			}
			unit := a.config.Unit()
			lo, hi := t.Domain()
			mvLo, mvHi := t.Range()
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d points, %g %s to %g %s, %.3f mV to %.3f mV\n",
				t.Len(), unit.FromCelsius(lo), unit, unit.FromCelsius(hi), unit, mvLo, mvHi)
			return nil
		},
	}
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return v, nil
}
