package event

import "context"

// UseCase drives the page between its screens.
type UseCase interface {
	// Submit sends the description to the generate-link API. Failures come
	// back as ErrorState, never as an error.
	Submit(ctx context.Context, input SubmitInput) State

	// Reset returns the empty form.
	Reset(ctx context.Context) State

	// Open rebuilds the results screen from a permalink data value.
	Open(ctx context.Context, data string) (State, error)

	// Calendar renders the event in a permalink data value as an .ics file.
	Calendar(ctx context.Context, data string) (CalendarFile, error)
}
