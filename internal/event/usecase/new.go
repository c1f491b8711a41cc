package usecase

import (
	"linkylink/pkg/datemath"
	"linkylink/pkg/linkapi"
	pkgLog "linkylink/pkg/log"
	"linkylink/pkg/permalink"
)

type implUseCase struct {
	l         pkgLog.Logger
	client    linkapi.IClient
	permalink permalink.Builder
	dateMath  *datemath.Parser
}

// New creates a new event UseCase instance.
func New(
	l pkgLog.Logger,
	client linkapi.IClient,
	links permalink.Builder,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:         l,
		client:    client,
		permalink: links,
		dateMath:  dateMath,
	}
}
