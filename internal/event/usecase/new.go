package usecase

import (
	"git-activity-feed/internal/event"
	"git-activity-feed/internal/event/repository"
	"git-activity-feed/pkg/log"
	"git-activity-feed/pkg/timefmt"
)

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	repo      repository.Repository
	formatter *timefmt.Formatter
	strict    bool
	l         log.Logger
}

var _ event.UseCase = (*implUseCase)(nil)

// New creates a new event UseCase implementation.
// In strict mode a present but unparseable timestamp fails normalization
// instead of falling back to the current time.
func New(repo repository.Repository, formatter *timefmt.Formatter, strict bool, l log.Logger) *implUseCase {
	if formatter == nil {
		formatter = timefmt.New(nil)
	}
	return &implUseCase{
		repo:      repo,
		formatter: formatter,
		strict:    strict,
		l:         l,
	}
}
