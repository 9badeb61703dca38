// Package commands is the karmakaze command line.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/kova98/karmakaze/config"
	"github.com/kova98/karmakaze/enums"
	"github.com/kova98/karmakaze/metrics"
	"github.com/kova98/karmakaze/pipeline"
	"github.com/kova98/karmakaze/sources"
	"github.com/kova98/karmakaze/timefmt"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	timeFormat  string
	locale      string
	timeZone    string
	output      string
	showMetrics bool

	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "karmakaze",
	Short: "Normalise raw Reddit API responses",
	Long: `Unwraps raw Reddit API payloads, renames their fields into a stable
vocabulary and renders timestamps in a locale or as elapsed time.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&timeFormat, "time-format", "", "timestamp rendering: locale or concise")
	flags.StringVar(&locale, "locale", "", "locale for absolute timestamps, e.g. en_US.UTF-8")
	flags.StringVar(&timeZone, "tz", "", "IANA time zone for absolute timestamps")
	flags.StringVarP(&output, "output", "o", "", "output format: json or yaml")
	flags.BoolVar(&showMetrics, "metrics", false, "print processing counters to stderr")
}

// Execute runs the root command with l as the logger for every stage.
func Execute(l *slog.Logger) error {
	if l != nil {
		logger = l
	}
	return rootCmd.Execute()
}

type run struct {
	pipeline *pipeline.Pipeline
	registry *prometheus.Registry
	output   string
}

// newRun resolves flags over config.Config and builds a pipeline with its
// own metrics registry.
func newRun() (*run, error) {
	times, err := timeFormatter()
	if err != nil {
		return nil, err
	}

	format := config.Config.OutputFormat
	if output != "" {
		if format, err = config.ParseOutputFormat(output); err != nil {
			return nil, err
		}
	}

	reg := prometheus.NewRegistry()
	return &run{
		pipeline: pipeline.New(logger, times, metrics.New(reg)),
		registry: reg,
		output:   format,
	}, nil
}

func timeFormatter() (*timefmt.Formatter, error) {
	cfg := config.Config
	if cfg.TimeFormat == enums.TimeFormatInvalid {
		cfg.TimeFormat = enums.TimeFormatLocale
	}

	var err error
	if timeFormat != "" {
		if cfg.TimeFormat, err = enums.ParseTimeFormat(timeFormat); err != nil {
			return nil, err
		}
	}
	if locale != "" {
		cfg.TimeLocale = timefmt.ParseLocale(locale)
	}
	if timeZone != "" {
		if cfg.TimeZone, err = time.LoadLocation(timeZone); err != nil {
			return nil, errors.Wrap(err, "load time zone")
		}
	}
	return cfg.TimeFormatter(), nil
}

// readPayload decodes the file named by args[i], or stdin when absent or "-".
func readPayload(cmd *cobra.Command, args []string, i int) (any, error) {
	if len(args) > i && args[i] != "-" {
		return sources.ReadFile(args[i])
	}
	payload, err := sources.Read(cmd.InOrStdin())
	if err != nil {
		return nil, errors.Wrap(err, "read stdin")
	}
	return payload, nil
}

func (r *run) write(cmd *cobra.Command, v any) error {
	if err := writeValue(cmd.OutOrStdout(), r.output, v); err != nil {
		return err
	}
	if showMetrics {
		return metrics.WriteText(cmd.ErrOrStderr(), r.registry)
	}
	return nil
}

func writeValue(w io.Writer, format string, v any) error {
	if format == config.OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return enc.Close()
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode json")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// ExitCode maps an execution error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, enums.ErrUnknownEntity), errors.Is(err, enums.ErrInvalidTimeFormat),
		errors.Is(err, config.ErrInvalidOutputFormat):
		return 2
	}
	return 1
}
