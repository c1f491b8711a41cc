package event

import "errors"

// Domain-specific errors for the event package.
var (
	ErrInvalidPermalink = errors.New("invalid permalink data")
	ErrUnschedulable    = errors.New("event has no usable start time")
)

// User-facing messages for a failed submit.
const (
	MsgUpstreamStatus    = "The event service could not handle this description (status %d). Please try again."
	MsgUpstreamMalformed = "The event service sent an answer that could not be read. Please try again."
	MsgUpstreamTimeout   = "The event service took too long to answer. Please try again."
	MsgUpstreamDown      = "The event service could not be reached. Please try again."
	MsgInvalidPermalink  = "This permalink does not contain a valid event."
	MsgInvalidForm       = "The form could not be read. Please try again."
)
