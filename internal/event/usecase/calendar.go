package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"linkylink/internal/event"
	"linkylink/pkg/icalendar"
)

// eventNamespace scopes the uuid v5 UIDs of exported events.
var eventNamespace = uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8") // URL namespace

const defaultCalendarName = "event"

// Calendar renders the permalinked event as an .ics file.
func (uc *implUseCase) Calendar(ctx context.Context, data string) (event.CalendarFile, error) {
	info, err := uc.decode(data)
	if err != nil {
		uc.l.Warnf(ctx, "internal.event.usecase.Calendar: %v", err)
		return event.CalendarFile{}, err
	}

	start, err := uc.dateMath.Parse(info.StartTime)
	if err != nil {
		return event.CalendarFile{}, fmt.Errorf("%w: %v", event.ErrUnschedulable, err)
	}

	var end time.Time
	if info.EndTime != "" {
		if t, endErr := uc.dateMath.Parse(info.EndTime); endErr == nil {
			end = t
		} else {
			uc.l.Debugf(ctx, "internal.event.usecase.Calendar: ignoring end time: %v", endErr)
		}
	}

	content, err := icalendar.Encode(icalendar.Event{
		UID:         uuid.NewSHA1(eventNamespace, info.Raw).String(),
		Title:       info.Title,
		Description: info.Description,
		Location:    info.Location,
		Start:       start,
		End:         end,
		Recurrence:  icalendar.RecurrenceRules(info.Recurrence),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.event.usecase.Calendar: icalendar.Encode: %v", err)
		return event.CalendarFile{}, err
	}

	return event.CalendarFile{
		Name:    fileName(info.Title),
		Content: content,
	}, nil
}

// fileName turns a title into a safe ascii file name ending in .ics.
func fileName(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	name := strings.Trim(b.String(), "-")
	if name == "" {
		name = defaultCalendarName
	}
	if len(name) > 64 {
		name = strings.TrimRight(name[:64], "-")
	}
	return name + ".ics"
}
