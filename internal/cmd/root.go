package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eliquious/thermocouple/internal/buildvars"
	"github.com/eliquious/thermocouple/internal/config"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// NewRootCmd builds the ktype command tree logging to stderr.
func NewRootCmd() *cobra.Command {
	// Create logger
	var logger log.Logger
	{
		logger = log.NewLogfmtLogger(os.Stderr)
		logger = log.With(logger, "ts", log.DefaultTimestampUTC)
		logger = log.With(logger, "caller", log.DefaultCaller)
	}
	return newRootCmd(logger)
}

// app carries the state shared by the subcommands.
type app struct {
	config *config.Config
	logger log.Logger
}

func newRootCmd(logger log.Logger) *cobra.Command {
	a := &app{logger: logger}

	rootCmd := &cobra.Command{
		Use:           "ktype",
		Short:         "Type K thermocouple tables and readings",
		Long:          `ktype looks up the NIST ITS-90 type K reference table, converts between EMF and temperature and reads thermocouples attached to a LabJack U6.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pflags := rootCmd.PersistentFlags()
	pflags.BoolP("verbose", "v", false, config.Description("verbose"))
	pflags.Bool("version", false, "Show version information")
	pflags.StringP("unit", "u", "C", config.Description("unit"))
	pflags.Lookup("verbose").NoOptDefVal = "true"

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		bindFlags(cmd.Flags())

		// Initialize config
		c, err := config.Init(logger)
		if err != nil {
			return fmt.Errorf("initializing config: %w", err)
		}
		a.config = c

		// Apply log level filtering based on verbose setting
		a.logger = logger
		if !c.Verbose() {
			a.logger = level.NewFilter(logger, level.AllowInfo())
		}

		if viper.GetBool("version") {
			return nil
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("invalid config/environment variables: %w", err)
		}
		return nil
	}

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("version") {
			printVersion(cmd.OutOrStdout(), a.config.Verbose())
			return nil
		}
		return cmd.Help()
	}

	rootCmd.AddCommand(
		newValueCmd(a),
		newInterpCmd(a),
		newEMFCmd(a),
		newTempCmd(a),
		newTableCmd(a),
		newVerifyCmd(a),
		newReadCmd(a),
	)
	return rootCmd
}

// bindFlags binds the flags of the executing command to their config keys.
func bindFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(flag *pflag.Flag) {
		viper.BindPFlag(strings.ReplaceAll(flag.Name, "-", "_"), flag)
	})
}

func printVersion(w io.Writer, verbose bool) {
	fmt.Fprintf(w, "ktype %s\n", buildvars.BuildVersion())
	if verbose {
		fmt.Fprintf(w, "build version: %s\n", buildvars.BuildVersion())
		fmt.Fprintf(w, "build date: %s\n", buildvars.BuildDate())
		fmt.Fprintf(w, "commit hash: %s\n", buildvars.CommitHash())
		fmt.Fprintf(w, "commit date: %s\n", buildvars.CommitDate())
		fmt.Fprintf(w, "commit branch: %s\n", buildvars.CommitBranch())
	}
}
