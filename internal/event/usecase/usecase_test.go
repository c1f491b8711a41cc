package usecase_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/emersion/go-ical"

	"linkylink/internal/event"
	"linkylink/internal/event/usecase"
	"linkylink/pkg/datemath"
	"linkylink/pkg/linkapi"
	"linkylink/pkg/permalink"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockClient struct {
	body    string
	err     error
	prompts []string
}

func (m *mockClient) Generate(ctx context.Context, prompt string) (*linkapi.Result, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return nil, m.err
	}
	return linkapi.Parse([]byte(m.body))
}

const lunchBody = `{"title":"Lunch with Sam","startTime":"2024-06-02T12:00:00Z","endTime":"2024-06-02T13:00:00Z","location":"Cafe X","description":"","google_calendar_link":"https://g.co/x","apple_calendar_link":"https://a.co/x","outlook_calendar_link":"https://o.co/x","yahoo_calendar_link":"https://y.co/x"}`

func newUseCase(t *testing.T, client linkapi.IClient) event.UseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	return usecase.New(&mockLogger{}, client, permalink.New(""), parser)
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success moves to results", func(t *testing.T) {
		client := &mockClient{body: lunchBody}
		uc := newUseCase(t, client)

		state := uc.Submit(ctx, event.SubmitInput{Description: "Lunch with Sam tomorrow at noon at Cafe X"})

		res, ok := state.(event.ResultsState)
		if !ok {
			t.Fatalf("expected ResultsState, got %#v", state)
		}
		if state.Screen() != event.ScreenResults {
			t.Errorf("expected results screen")
		}

		info := res.Info
		if info.Title != "Lunch with Sam" || info.StartTime != "2024-06-02T12:00:00Z" ||
			info.EndTime != "2024-06-02T13:00:00Z" || info.Location != "Cafe X" || info.Description != "" {
			t.Errorf("fields must pass through untouched, got %+v", info)
		}
		if info.GoogleCalendarLink != "https://g.co/x" || info.AppleCalendarLink != "https://a.co/x" ||
			info.OutlookCalendarLink != "https://o.co/x" || info.YahooCalendarLink != "https://y.co/x" {
			t.Errorf("links must pass through untouched, got %+v", info)
		}

		raw, err := permalink.Parse(res.Permalink)
		if err != nil {
			t.Fatalf("permalink does not parse: %v", err)
		}
		var want, got any
		json.Unmarshal([]byte(lunchBody), &want)
		json.Unmarshal(raw, &got)
		if !reflect.DeepEqual(want, got) {
			t.Errorf("permalink must embed the full response, got %s", raw)
		}
	})

	t.Run("Empty description is still sent", func(t *testing.T) {
		client := &mockClient{body: `{}`}
		uc := newUseCase(t, client)

		uc.Submit(ctx, event.SubmitInput{Description: ""})
		if len(client.prompts) != 1 || client.prompts[0] != "" {
			t.Errorf("expected one call with empty prompt, got %q", client.prompts)
		}
	})

	t.Run("Failures stay on the form", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
			want string
		}{
			{"network", errors.New("dial tcp: connection refused"), event.MsgUpstreamDown},
			{"status", &linkapi.StatusError{StatusCode: 503}, "status 503"},
			{"malformed", linkapi.ErrMalformedResponse, event.MsgUpstreamMalformed},
			{"timeout", context.DeadlineExceeded, event.MsgUpstreamTimeout},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := newUseCase(t, &mockClient{err: tt.err})
				desc := "  Lunch with Sam  "

				state := uc.Submit(ctx, event.SubmitInput{Description: desc})

				es, ok := state.(event.ErrorState)
				if !ok {
					t.Fatalf("expected ErrorState, got %#v", state)
				}
				if state.Screen() != event.ScreenForm {
					t.Errorf("failure must keep the form screen")
				}
				if es.Text != desc {
					t.Errorf("description must be kept verbatim, got %q", es.Text)
				}
				if !strings.Contains(es.Message, tt.want) {
					t.Errorf("expected message containing %q, got %q", tt.want, es.Message)
				}
			})
		}
	})
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, &mockClient{body: lunchBody})

	uc.Submit(ctx, event.SubmitInput{Description: "x"})
	for i := 0; i < 3; i++ {
		state := uc.Reset(ctx)
		fs, ok := state.(event.FormState)
		if !ok || fs.Text != "" || state.Screen() != event.ScreenForm {
			t.Fatalf("reset #%d must give the empty form, got %#v", i, state)
		}
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, &mockClient{})

	state, err := uc.Open(ctx, lunchBody)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := state.(event.ResultsState)
	if res.Info.Title != "Lunch with Sam" {
		t.Errorf("unexpected title %q", res.Info.Title)
	}
	if res.Permalink != permalink.New("").Build([]byte(lunchBody)) {
		t.Errorf("permalink must be regenerated from the data, got %s", res.Permalink)
	}

	for _, bad := range []string{"", "garbage", "[]"} {
		if _, err := uc.Open(ctx, bad); !errors.Is(err, event.ErrInvalidPermalink) {
			t.Errorf("Open(%q): expected ErrInvalidPermalink, got %v", bad, err)
		}
	}
}

func TestCalendar(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, &mockClient{})

	t.Run("Success Flow", func(t *testing.T) {
		data := `{"title":"Lunch with Sam!","startTime":"2024-06-02T12:00:00Z","endTime":"2024-06-02T13:30:00Z","location":"Cafe X","recurrence":["RRULE:FREQ=WEEKLY;COUNT=2"]}`

		file, err := uc.Calendar(ctx, data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if file.Name != "lunch-with-sam.ics" {
			t.Errorf("unexpected file name %q", file.Name)
		}

		cal, err := ical.NewDecoder(bytes.NewReader(file.Content)).Decode()
		if err != nil {
			t.Fatalf("calendar does not decode: %v", err)
		}
		events := cal.Events()
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		if s, _ := events[0].Props.Text(ical.PropSummary); s != "Lunch with Sam!" {
			t.Errorf("unexpected summary %q", s)
		}
		if !strings.Contains(string(file.Content), "FREQ=WEEKLY") {
			t.Errorf("expected recurrence in output")
		}

		again, _ := uc.Calendar(ctx, data)
		uid1, _ := events[0].Props.Text(ical.PropUID)
		if !strings.Contains(string(again.Content), uid1) {
			t.Errorf("UID must be stable for the same event")
		}
	})

	t.Run("Unschedulable", func(t *testing.T) {
		_, err := uc.Calendar(ctx, `{"title":"Someday"}`)
		if !errors.Is(err, event.ErrUnschedulable) {
			t.Errorf("expected ErrUnschedulable, got %v", err)
		}
	})

	t.Run("Invalid data", func(t *testing.T) {
		_, err := uc.Calendar(ctx, `nope`)
		if !errors.Is(err, event.ErrInvalidPermalink) {
			t.Errorf("expected ErrInvalidPermalink, got %v", err)
		}
	})

	t.Run("Untitled", func(t *testing.T) {
		file, err := uc.Calendar(ctx, `{"title":"☕☕","startTime":"2024-06-02"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if file.Name != "event.ics" {
			t.Errorf("unexpected file name %q", file.Name)
		}
	})
}

func TestSubmitAgainstAPI(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get(linkapi.PromptParam) != "Lunch with Sam tomorrow at noon at Cafe X" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(lunchBody))
	}))
	defer ts.Close()

	uc := newUseCase(t, linkapi.New(ts.URL))

	state := uc.Submit(context.Background(), event.SubmitInput{Description: " Lunch with Sam tomorrow at noon at Cafe X\n"})
	if _, ok := state.(event.ResultsState); !ok {
		t.Fatalf("expected ResultsState, got %#v", state)
	}

	ts.Close()
	state = uc.Submit(context.Background(), event.SubmitInput{Description: "again"})
	if _, ok := state.(event.ErrorState); !ok {
		t.Fatalf("expected ErrorState once the API is gone, got %#v", state)
	}
}
