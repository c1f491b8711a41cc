package model

import (
	"encoding/json"
	"strings"
)

// Generate-link response members.
const (
	FieldTitle               = "title"
	FieldStartTime           = "startTime"
	FieldEndTime             = "endTime"
	FieldLocation            = "location"
	FieldDescription         = "description"
	FieldGuests              = "guests"
	FieldRecurrence          = "recurrence"
	FieldGoogleCalendarLink  = "google_calendar_link"
	FieldAppleCalendarLink   = "apple_calendar_link"
	FieldOutlookCalendarLink = "outlook_calendar_link"
	FieldYahooCalendarLink   = "yahoo_calendar_link"
)

// EventInfo is the parsed event returned by the generate-link API.
// Nothing in it is validated; Raw is the full response body it came from.
type EventInfo struct {
	Title       string          `json:"title"`
	StartTime   string          `json:"startTime"`
	EndTime     string          `json:"endTime"`
	Location    string          `json:"location"`
	Description string          `json:"description"`
	Guests      json.RawMessage `json:"guests,omitempty"`
	Recurrence  json.RawMessage `json:"recurrence,omitempty"`

	GoogleCalendarLink  string `json:"google_calendar_link"`
	AppleCalendarLink   string `json:"apple_calendar_link"`
	OutlookCalendarLink string `json:"outlook_calendar_link"`
	YahooCalendarLink   string `json:"yahoo_calendar_link"`

	Raw json.RawMessage `json:"-"`
}

// IsZero reports whether e is the empty record.
func (e EventInfo) IsZero() bool {
	return len(e.Raw) == 0 && e.Title == "" && e.StartTime == "" && e.EndTime == "" &&
		e.Location == "" && e.Description == "" && len(e.Guests) == 0 && len(e.Recurrence) == 0 &&
		e.GoogleCalendarLink == "" && e.AppleCalendarLink == "" &&
		e.OutlookCalendarLink == "" && e.YahooCalendarLink == ""
}

// NewEventInfo picks the known members out of a response object.
func NewEventInfo(fields map[string]json.RawMessage, raw json.RawMessage) EventInfo {
	return EventInfo{
		Title:       text(fields[FieldTitle]),
		StartTime:   text(fields[FieldStartTime]),
		EndTime:     text(fields[FieldEndTime]),
		Location:    text(fields[FieldLocation]),
		Description: text(fields[FieldDescription]),
		Guests:      opaque(fields[FieldGuests]),
		Recurrence:  opaque(fields[FieldRecurrence]),

		GoogleCalendarLink:  text(fields[FieldGoogleCalendarLink]),
		AppleCalendarLink:   text(fields[FieldAppleCalendarLink]),
		OutlookCalendarLink: text(fields[FieldOutlookCalendarLink]),
		YahooCalendarLink:   text(fields[FieldYahooCalendarLink]),

		Raw: raw,
	}
}

// text reads a member the way a page would print it: strings verbatim,
// null or missing as "", anything else as its JSON text.
func text(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return trimmed
}

func opaque(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || strings.TrimSpace(string(raw)) == "null" {
		return nil
	}
	return raw
}
