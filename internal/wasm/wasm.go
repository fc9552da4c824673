// Package main formats, parses, and resolves a date in order to test WASM
// compilation.
package main

import (
	"fmt"

	"github.com/cquiroz/threetenbp/calendar"
)

func main() {
	// Compile a pattern.
	f := calendar.MustPattern("EEEE, d MMMM uuuu 'at' HH:mm")

	// Parse and resolve text.
	dt, _ := f.ParseDateTime("Monday, 30 June 2008 at 11:05")

	// Print it back along with a period.
	text, _ := f.Format(dt)
	p, _ := calendar.ParsePeriod("P1Y2M3DT4H")

	//nolint:forbidigo
	fmt.Printf("%s\n%v\n", text, p)
}
