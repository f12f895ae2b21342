// Package watcher detects modifications of the worklog file by polling its
// modification time at a bounded rate.
package watcher

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"horas/internal/logging"
)

// Session is the per-user watcher state: when the file was last checked and
// which modification time was last seen. It is not safe for concurrent use;
// callers sharing a Session must serialize access.
type Session struct {
	lastCheck   time.Time
	lastModTime time.Time
	checked     bool

	now    func() time.Time
	stat   func(string) (fs.FileInfo, error)
	logger *slog.Logger
}

type Option func(*Session)

// WithLogger routes the session's diagnostics to logger, tagged as the
// watcher component.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logging.Component(logger, logging.ComponentWatcher)
	}
}

// NewSession starts a session for path, recording the file's current
// modification time. A missing file is recorded as the zero time.
func NewSession(path string, options ...Option) *Session {
	session := &Session{
		now:    time.Now,
		stat:   os.Stat,
		logger: logging.Component(nil, logging.ComponentWatcher),
	}
	for _, option := range options {
		option(session)
	}
	session.lastModTime = session.modTime(path)
	return session
}

// LastModTime returns the last observed modification time.
func (s *Session) LastModTime() time.Time {
	return s.lastModTime
}

// HasChanged reports whether path's modification time differs from the last
// one seen. Within minInterval of the previous check the file is not touched
// and (false, last seen) is returned. A deleted file reads as the zero time,
// so deletion and re-creation both count as changes.
func (s *Session) HasChanged(path string, minInterval time.Duration) (bool, time.Time) {
	now := s.now()
	if s.checked && now.Sub(s.lastCheck) < minInterval {
		return false, s.lastModTime
	}
	s.lastCheck = now
	s.checked = true

	current := s.modTime(path)
	if current.Equal(s.lastModTime) {
		return false, current
	}
	s.lastModTime = current
	return true, current
}

func (s *Session) modTime(path string) time.Time {
	info, err := s.stat(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("stat watched file", "path", path, "error", err)
		}
		return time.Time{}
	}
	return info.ModTime()
}

// Poll checks path once per interval tick and calls onChange after each
// detected change, until ctx is cancelled or onChange fails.
func Poll(ctx context.Context, session *Session, path string, interval time.Duration, logger *slog.Logger, onChange func(modTime time.Time) error) error {
	logger = logging.Component(logger, logging.ComponentWatcher)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			changed, modTime := session.HasChanged(path, 0)
			if !changed {
				continue
			}
			logger.Debug("worklog file changed", "path", path, "mod_time", modTime)
			if err := onChange(modTime); err != nil {
				return err
			}
		}
	}
}
