package service

import (
	"context"
	"strings"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/store"
)

// bugService appends free-text feedback to the bug report log.
type bugService struct {
	bugRepository store.BugReportRepository

	logger *logger.Logger
}

func NewBugService(bugRepository store.BugReportRepository, logger *logger.Logger) BugService {
	return &bugService{
		bugRepository: bugRepository,
		logger:        logger,
	}
}

// Report appends one feedback message. A blank message is rejected.
func (s *bugService) Report(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyBugMessage
	}

	return s.bugRepository.SaveBugReport(ctx, message)
}
