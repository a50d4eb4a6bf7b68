package service

import (
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// StartAudit appends a line to a plain-text log file for every /start and
// keeps an in-memory running visit counter. Both are best-effort side
// effects: a write failure is logged and the flow continues.
type StartAudit struct {
	mu     sync.Mutex
	path   string
	visits int
	logger *zap.Logger
}

// NewStartAudit creates a StartAudit writing to the file at path.
func NewStartAudit(path string, logger *zap.Logger) *StartAudit {
	return &StartAudit{
		path:   path,
		logger: logger,
	}
}

// RecordStart logs a "user started bot" event and returns the running count.
func (a *StartAudit) RecordStart(userID int64, displayName string) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.visits++

	line := fmt.Sprintf("[%s] User %s (ID: %d) started the bot. Total: %d\n",
		time.Now().UTC().Format(time.RFC3339), displayName, userID, a.visits)

	if err := a.append(line); err != nil {
		a.logger.Error("failed to write to start log file",
			zap.String("path", a.path),
			zap.Error(err),
		)
	}

	return a.visits
}

func (a *StartAudit) append(line string) error {
	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(line)
	return err
}
