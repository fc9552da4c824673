package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cquiroz/threetenbp/calendar"
	"github.com/cquiroz/threetenbp/calendar/format"
)

func newPeriodCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "period text...",
		Short: "Parse ISO-8601 periods and print them in canonical form",
		Long: `Parse ISO-8601 periods such as P2Y3M25DT10H30M and print each in
canonical form. Periods without years, months, or days are followed by
their length as a duration.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, text := range args {
				p, err := calendar.ParsePeriod(text)
				if err != nil {
					return err //nolint:wrapcheck
				}
				o.log.Debug("parsed period", "text", text, "period", p)
				if d, err := p.Duration(); err == nil {
					fmt.Fprintf(w, "%v\t%v\n", p, d)
				} else {
					fmt.Fprintln(w, p)
				}
			}
			return nil
		},
	}
}

func newPredefinedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predefined",
		Short: "List the predefined format names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, name := range format.PredefinedNames() {
				f, _ := format.Predefined(name)
				fmt.Fprintf(w, "%s\t%v\n", name, f)
			}
			return nil
		},
	}
}
