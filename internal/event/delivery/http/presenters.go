package http

import (
	"encoding/json"
	"html/template"
	"strings"

	"linkylink/internal/event"
	"linkylink/pkg/permalink"
)

// --- Request DTOs ---

type generateReq struct {
	Description string `form:"description"`
}

func (r generateReq) toInput() event.SubmitInput {
	return event.SubmitInput{Description: r.Description}
}

type generateAPIReq struct {
	Prompt string `form:"prompt"`
}

func (r generateAPIReq) toInput() event.SubmitInput {
	return event.SubmitInput{Description: r.Prompt}
}

type permalinkReq struct {
	Data string `form:"data" binding:"required"`
}

// --- Page view ---

const (
	pageTemplate = "index.html"
	calendarPath = "/event.ics"
)

// pageView is everything index.html needs.
type pageView struct {
	Screen      string
	Text        string
	Error       string
	Event       eventCard
	Links       []calendarLink
	Permalink   string
	CalendarURL string
}

type eventCard struct {
	Title       string
	Start       string
	Location    string
	Description string
}

type calendarLink struct {
	Provider string
	Label    string
	URL      template.URL
}

// scriptSchemes are never rendered into an href, they would run on this origin.
var scriptSchemes = []string{"javascript:", "vbscript:"}

// linkURL passes a provider link through unchanged so data: and webcal:
// links survive html/template's URL filter.
func linkURL(raw string) template.URL {
	// Browsers ignore whitespace and control characters inside a scheme.
	compact := strings.Map(func(r rune) rune {
		if r <= ' ' {
			return -1
		}
		return r
	}, strings.ToLower(raw))
	for _, s := range scriptSchemes {
		if strings.HasPrefix(compact, s) {
			return ""
		}
	}
	return template.URL(raw)
}

func (h *handler) newPageView(state event.State) pageView {
	view := pageView{Screen: string(state.Screen())}

	switch s := state.(type) {
	case event.FormState:
		view.Text = s.Text
	case event.ErrorState:
		view.Text = s.Text
		view.Error = s.Message
	case event.ResultsState:
		info := s.Info
		view.Event = eventCard{
			Title:       info.Title,
			Start:       h.display.Format(info.StartTime),
			Location:    info.Location,
			Description: info.Description,
		}
		view.Links = []calendarLink{
			{Provider: "google", Label: "Google", URL: linkURL(info.GoogleCalendarLink)},
			{Provider: "apple", Label: "Apple", URL: linkURL(info.AppleCalendarLink)},
			{Provider: "outlook", Label: "Outlook", URL: linkURL(info.OutlookCalendarLink)},
			{Provider: "yahoo", Label: "Yahoo", URL: linkURL(info.YahooCalendarLink)},
		}
		view.Permalink = s.Permalink
		if len(info.Raw) > 0 {
			view.CalendarURL = calendarPath + "?" + permalink.DataParam + "=" + permalink.Escape(string(info.Raw))
		}
	}

	return view
}

// --- Response DTOs ---

type eventResp struct {
	Title               string          `json:"title"`
	StartTime           string          `json:"startTime"`
	StartDisplay        string          `json:"start_display"`
	EndTime             string          `json:"endTime"`
	Location            string          `json:"location"`
	Description         string          `json:"description"`
	Guests              json.RawMessage `json:"guests,omitempty"`
	Recurrence          json.RawMessage `json:"recurrence,omitempty"`
	GoogleCalendarLink  string          `json:"google_calendar_link"`
	AppleCalendarLink   string          `json:"apple_calendar_link"`
	OutlookCalendarLink string          `json:"outlook_calendar_link"`
	YahooCalendarLink   string          `json:"yahoo_calendar_link"`
}

// stateResp is the serialized view-model.
type stateResp struct {
	Kind      string     `json:"kind"`
	Screen    string     `json:"screen"`
	Text      string     `json:"text,omitempty"`
	Message   string     `json:"message,omitempty"`
	Event     *eventResp `json:"event,omitempty"`
	Permalink string     `json:"permalink,omitempty"`
}

func (h *handler) newStateResp(state event.State) stateResp {
	resp := stateResp{
		Kind:   string(state.Kind()),
		Screen: string(state.Screen()),
	}

	switch s := state.(type) {
	case event.FormState:
		resp.Text = s.Text
	case event.ErrorState:
		resp.Text = s.Text
		resp.Message = s.Message
	case event.ResultsState:
		info := s.Info
		resp.Event = &eventResp{
			Title:               info.Title,
			StartTime:           info.StartTime,
			StartDisplay:        h.display.Format(info.StartTime),
			EndTime:             info.EndTime,
			Location:            info.Location,
			Description:         info.Description,
			Guests:              info.Guests,
			Recurrence:          info.Recurrence,
			GoogleCalendarLink:  info.GoogleCalendarLink,
			AppleCalendarLink:   info.AppleCalendarLink,
			OutlookCalendarLink: info.OutlookCalendarLink,
			YahooCalendarLink:   info.YahooCalendarLink,
		}
		resp.Permalink = s.Permalink
	}

	return resp
}
