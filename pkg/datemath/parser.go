package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser reads event timestamps and renders them in one display zone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location is the display zone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse reads an ISO-8601 style timestamp. Values without an offset are in
// the parser's zone, date-only values are UTC midnight.
func (p *Parser) Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, p.location); err == nil {
			return t, nil
		}
	}
	for _, layout := range dateOnlyLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// Format renders value in the display zone, or InvalidDate.
func (p *Parser) Format(value string) string {
	t, err := p.Parse(value)
	if err != nil {
		return InvalidDate
	}
	return t.In(p.location).Format(DisplayLayout)
}
