package datemath

import "time"

// InvalidDate is what a browser prints for a timestamp it cannot parse.
const InvalidDate = "Invalid Date"

// DisplayLayout mirrors Date.prototype.toLocaleString for the en-US locale.
const DisplayLayout = "1/2/2006, 3:04:05 PM"

// dateOnlyLayouts are read as UTC midnight, the rest without an offset are
// read in the parser's zone.
var (
	offsetLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04Z07:00",
		time.RFC1123Z,
		time.RFC1123,
	}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
	}
	dateOnlyLayouts = []string{
		"2006-01-02",
	}
)
