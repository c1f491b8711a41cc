package event

import "linkylink/internal/model"

// Screen is what the page shows. Every State maps to exactly one Screen.
type Screen string

const (
	ScreenForm    Screen = "form"
	ScreenResults Screen = "results"
)

// Kind tags the State variants.
type Kind string

const (
	KindForm    Kind = "form"
	KindResults Kind = "results"
	KindError   Kind = "error"
)

// State is the page view-model. It is a closed set: FormState, ResultsState
// and ErrorState are the only implementations.
type State interface {
	Kind() Kind
	Screen() Screen
	isState()
}

// FormState is the entry form holding the typed description.
type FormState struct {
	Text string
}

func (FormState) Kind() Kind     { return KindForm }
func (FormState) Screen() Screen { return ScreenForm }
func (FormState) isState()       {}

// ResultsState shows a parsed event and its permalink.
type ResultsState struct {
	Info      model.EventInfo
	Permalink string
}

func (ResultsState) Kind() Kind     { return KindResults }
func (ResultsState) Screen() Screen { return ScreenResults }
func (ResultsState) isState()       {}

// ErrorState is the entry form after a failed submit. Text is what the user
// had typed.
type ErrorState struct {
	Text    string
	Message string
}

func (ErrorState) Kind() Kind     { return KindError }
func (ErrorState) Screen() Screen { return ScreenForm }
func (ErrorState) isState()       {}

// Initial is the state of a freshly loaded page.
func Initial() State {
	return FormState{}
}

// SubmitInput is the input for Submit.
type SubmitInput struct {
	Description string
}

// CalendarFile is a downloadable .ics file.
type CalendarFile struct {
	Name    string
	Content []byte
}
