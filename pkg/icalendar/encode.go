package icalendar

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"
)

var ErrMissingStart = errors.New("event has no start time")

// Encode renders ev as a VCALENDAR holding one VEVENT. Only the first
// recurrence rule that rrule-go accepts is kept.
func Encode(ev Event) ([]byte, error) {
	if ev.Start.IsZero() {
		return nil, ErrMissingStart
	}

	end := ev.End
	if end.IsZero() || end.Before(ev.Start) {
		end = ev.Start.Add(DefaultDuration)
	}
	stamp := ev.Stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	vevent := ical.NewComponent(ical.CompEvent)
	vevent.Props.SetText(ical.PropUID, ev.UID)
	vevent.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	vevent.Props.SetDateTime(ical.PropDateTimeStart, ev.Start.UTC())
	vevent.Props.SetDateTime(ical.PropDateTimeEnd, end.UTC())

	if ev.Title != "" {
		vevent.Props.SetText(ical.PropSummary, ev.Title)
	}
	if ev.Location != "" {
		vevent.Props.SetText(ical.PropLocation, ev.Location)
	}
	if ev.Description != "" {
		vevent.Props.SetText(ical.PropDescription, ev.Description)
	}

	for _, rule := range ev.Recurrence {
		opt, err := ParseRule(rule)
		if err != nil {
			continue
		}
		vevent.Props.SetRecurrenceRule(opt)
		break
	}

	cal.Children = append(cal.Children, vevent)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseRule validates a single RRULE value.
func ParseRule(rule string) (*rrule.ROption, error) {
	rule = strings.TrimSpace(rule)
	rule = strings.TrimPrefix(rule, "RRULE:")
	if rule == "" {
		return nil, errors.New("empty recurrence rule")
	}
	return rrule.StrToROption(rule)
}

// RecurrenceRules pulls candidate rule strings out of an opaque recurrence
// value: a string, or an array whose string members are taken in order.
// Anything else yields nil.
func RecurrenceRules(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if single == "" {
			return nil
		}
		return []string{single}
	}

	var list []any
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	var rules []string
	for _, item := range list {
		if s, ok := item.(string); ok && s != "" {
			rules = append(rules, s)
		}
	}
	return rules
}
