package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cquiroz/threetenbp/calendar/field"
	"github.com/cquiroz/threetenbp/calendar/format"
	"github.com/cquiroz/threetenbp/calendar/types"
)

func newFormatCmd(o *options) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "format [value]",
		Short: "Print a date or time using a pattern",
		Long: `Print a date or time using a pattern or predefined format.

The value is an ISO-8601 zoned or offset date-time, local date-time, date,
or time, such as 2008-06-30T11:05+01:00 or 2008-06-30. Without a value the
current time in UTC is printed. With --zone, values that have an offset
are converted to the zone first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := o.formatter(pattern)
			if err != nil {
				return err
			}

			var value field.Accessor = types.NewZonedDateTime(time.Now().UTC())
			if len(args) > 0 {
				if value, err = parseValue(args[0]); err != nil {
					return err
				}
			}
			o.log.Debug("formatting", "value", value)

			s, err := f.Format(value)
			if err != nil {
				return err //nolint:wrapcheck
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "ISO_DATE_TIME", "pattern or predefined format name")

	return cmd
}

// parseValue parses text with the ISO formats, trying the most complete
// form first.
func parseValue(text string) (field.Accessor, error) {
	if zdt, err := format.ISOZonedDateTime.ParseZonedDateTime(text); err == nil {
		return zdt, nil
	}
	if dt, err := format.ISOLocalDateTime.ParseDateTime(text); err == nil {
		return dt, nil
	}
	if d, err := format.ISOLocalDate.ParseDate(text); err == nil {
		return d, nil
	}
	t, err := format.ISOLocalTime.ParseTime(text)
	if err != nil {
		return nil, fmt.Errorf("value %q is not an ISO date, time, or date-time: %w", text, err)
	}
	return t, nil
}
