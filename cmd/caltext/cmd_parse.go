package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cquiroz/threetenbp/calendar/chrono"
)

func newParseCmd(o *options) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "parse text",
		Short: "Parse text using a pattern and show the result",
		Long: `Parse text using a pattern or predefined format.

Prints the raw fields parsed from the text followed by the date, time,
offset, and zone they resolve to. With --lenient, numbers may be shorter
than their width and out-of-range values roll over.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := o.formatter(pattern)
			if err != nil {
				return err
			}
			fields, err := f.ParseFields(args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}
			o.log.Debug("parsed fields", "fields", fields.String())

			res, err := chrono.Resolve(fields, f.ResolverStyle())
			if err != nil {
				return err //nolint:wrapcheck
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "fields: %v\n", fields)
			if res.Date != nil {
				fmt.Fprintf(w, "date: %v\n", res.Date)
			}
			if res.Time != nil {
				fmt.Fprintf(w, "time: %v\n", res.Time)
			}
			if res.Offset != nil {
				fmt.Fprintf(w, "offset: %v\n", res.Offset)
			}
			if res.Zone != "" {
				fmt.Fprintf(w, "zone: %s\n", res.Zone)
			}
			if zdt, err := res.ZonedDateTime(); err == nil {
				fmt.Fprintf(w, "zoned: %v\n", zdt)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "ISO_DATE_TIME", "pattern or predefined format name")

	return cmd
}
