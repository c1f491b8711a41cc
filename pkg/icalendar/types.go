package icalendar

import "time"

const (
	ProductID       = "-//linkylink//Event Export//EN"
	DefaultDuration = time.Hour
	ContentType     = "text/calendar; charset=utf-8"
)

// Event is the single VEVENT written by Encode.
type Event struct {
	UID         string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time // zero means Start + DefaultDuration
	Recurrence  []string  // RRULE values, with or without the "RRULE:" prefix
	Stamp       time.Time // zero means now
}
