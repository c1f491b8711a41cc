package usecase

import (
	"context"
	"fmt"

	"linkylink/internal/event"
	"linkylink/internal/model"
	"linkylink/pkg/linkapi"
	"linkylink/pkg/permalink"
)

// Open rebuilds ResultsState from the data parameter of a permalink.
func (uc *implUseCase) Open(ctx context.Context, data string) (event.State, error) {
	info, err := uc.decode(data)
	if err != nil {
		uc.l.Warnf(ctx, "internal.event.usecase.Open: %v", err)
		return nil, err
	}

	return event.ResultsState{
		Info:      info,
		Permalink: uc.permalink.Build(info.Raw),
	}, nil
}

func (uc *implUseCase) decode(data string) (model.EventInfo, error) {
	raw, err := permalink.Decode(data)
	if err != nil {
		return model.EventInfo{}, fmt.Errorf("%w: %v", event.ErrInvalidPermalink, err)
	}

	res, err := linkapi.Parse(raw)
	if err != nil {
		return model.EventInfo{}, fmt.Errorf("%w: %v", event.ErrInvalidPermalink, err)
	}

	return model.NewEventInfo(res.Fields, res.Body), nil
}
