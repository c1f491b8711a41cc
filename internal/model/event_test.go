package model_test

import (
	"encoding/json"
	"testing"

	"linkylink/internal/model"
)

func TestNewEventInfo(t *testing.T) {
	raw := json.RawMessage(`{"title":"Lunch with Sam","startTime":"2024-06-02T12:00:00Z","location":null,"description":42,"guests":["a@b.c"],"recurrence":null,"google_calendar_link":"https://g.co/x","unknown":true}`)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	info := model.NewEventInfo(fields, raw)

	if info.Title != "Lunch with Sam" {
		t.Errorf("unexpected title %q", info.Title)
	}
	if info.StartTime != "2024-06-02T12:00:00Z" {
		t.Errorf("unexpected start %q", info.StartTime)
	}
	if info.EndTime != "" || info.Location != "" {
		t.Errorf("missing and null members must be empty, got %q / %q", info.EndTime, info.Location)
	}
	if info.Description != "42" {
		t.Errorf("non-string members are shown as JSON text, got %q", info.Description)
	}
	if string(info.Guests) != `["a@b.c"]` {
		t.Errorf("guests must pass through, got %s", info.Guests)
	}
	if info.Recurrence != nil {
		t.Errorf("null recurrence must be dropped, got %s", info.Recurrence)
	}
	if info.GoogleCalendarLink != "https://g.co/x" || info.YahooCalendarLink != "" {
		t.Errorf("unexpected links %+v", info)
	}
	if string(info.Raw) != string(raw) {
		t.Errorf("raw body must be kept")
	}
	if info.IsZero() {
		t.Errorf("populated info reported as zero")
	}
	if !(model.EventInfo{}).IsZero() {
		t.Errorf("empty info must be zero")
	}
}
