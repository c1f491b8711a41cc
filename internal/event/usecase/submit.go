package usecase

import (
	"context"
	"errors"
	"fmt"

	"linkylink/internal/event"
	"linkylink/internal/model"
	"linkylink/pkg/linkapi"
)

// Submit asks the generate-link API to parse the description.
func (uc *implUseCase) Submit(ctx context.Context, input event.SubmitInput) event.State {
	res, err := uc.client.Generate(ctx, input.Description)
	if err != nil {
		uc.l.Warnf(ctx, "internal.event.usecase.Submit: client.Generate: %v", err)
		return event.ErrorState{
			Text:    input.Description,
			Message: failureMessage(ctx, err),
		}
	}

	info := model.NewEventInfo(res.Fields, res.Body)
	uc.l.Infof(ctx, "internal.event.usecase.Submit: title=%q start=%q", info.Title, info.StartTime)

	return event.ResultsState{
		Info:      info,
		Permalink: uc.permalink.Build(res.Body),
	}
}

// Reset clears everything back to the empty form.
func (uc *implUseCase) Reset(ctx context.Context) event.State {
	return event.Initial()
}

func failureMessage(ctx context.Context, err error) string {
	var se *linkapi.StatusError
	switch {
	case errors.As(err, &se):
		return fmt.Sprintf(event.MsgUpstreamStatus, se.StatusCode)
	case errors.Is(err, linkapi.ErrMalformedResponse):
		return event.MsgUpstreamMalformed
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded), isTimeout(err):
		return event.MsgUpstreamTimeout
	default:
		return event.MsgUpstreamDown
	}
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
