// Command caltext formats and parses dates, times, and periods from the
// command line.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/cquiroz/threetenbp/calendar"
	"github.com/cquiroz/threetenbp/calendar/chrono"
	"github.com/cquiroz/threetenbp/calendar/format"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds the flags shared by all commands.
type options struct {
	locale  string
	zone    string
	lenient bool
	verbose bool
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	o := &options{}
	rootCmd := &cobra.Command{
		Use:          "caltext",
		Short:        "Format and parse dates, times, and periods",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			o.log = newLogger(cmd.ErrOrStderr(), o.verbose)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&o.locale, "locale", "l", "en", "locale for text and localized patterns")
	flags.StringVarP(&o.zone, "zone", "z", "", "zone ID to print in and to assume when parsing")
	flags.BoolVar(&o.lenient, "lenient", false, "parse and resolve leniently, including predefined formats")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log debugging output")

	rootCmd.AddCommand(newFormatCmd(o))
	rootCmd.AddCommand(newParseCmd(o))
	rootCmd.AddCommand(newPeriodCmd(o))
	rootCmd.AddCommand(newPredefinedCmd())

	return rootCmd
}

// formatOptions returns the Formatter options selected by the flags.
func (o *options) formatOptions() ([]format.Option, error) {
	tag, err := language.Parse(o.locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", o.locale, err)
	}
	opts := []format.Option{format.WithLocale(tag)}
	if o.zone != "" {
		opts = append(opts, format.WithZone(o.zone))
	}
	if o.lenient {
		opts = append(opts, format.WithResolverStyle(chrono.Lenient))
	}
	return opts, nil
}

// formatter returns the Formatter for pattern, which may also name a
// predefined format such as ISO_LOCAL_DATE. With --lenient, parsing is
// lenient for both.
func (o *options) formatter(pattern string) (*format.Formatter, error) {
	opts, err := o.formatOptions()
	if err != nil {
		return nil, err
	}

	b := format.NewBuilder()
	if o.lenient {
		b.ParseLenient()
	}
	msg := "compiled pattern"
	if f, ok := calendar.Predefined(pattern); ok {
		msg = "predefined format"
		b.Append(f)
	} else {
		b.AppendPattern(pattern)
	}
	f, err := b.Formatter(opts...)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	o.log.Debug(msg, "pattern", pattern, "nodes", f.String())
	return f, nil
}
