package requestlog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const fileDateLayout = "2006-01-02"

// DailyFileSink appends entries to dir/YYYY-MM-DD.log, choosing the file from
// the clock at write time. A single goroutine owns the open file and performs
// every write, so lines from concurrent requests never interleave.
//
// Failures to open or write the file are logged and the entry is dropped;
// callers are never told.
type DailyFileSink struct {
	dir    string
	now    func() time.Time
	logger *slog.Logger

	queue     chan Entry
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	// owned by the writer goroutine
	file *os.File
	day  string
}

// Option configures a DailyFileSink.
type Option func(*DailyFileSink)

// WithClock overrides the clock used to pick the file for each write.
func WithClock(now func() time.Time) Option {
	return func(s *DailyFileSink) {
		s.now = now
	}
}

// NewDailyFileSink starts the writer goroutine. dir must already exist.
// queueSize bounds how many entries may wait for the writer before Append blocks.
func NewDailyFileSink(dir string, queueSize int, logger *slog.Logger, opts ...Option) *DailyFileSink {
	if logger == nil {
		logger = slog.Default()
	}
	if queueSize < 1 {
		queueSize = 1
	}

	s := &DailyFileSink{
		dir:    dir,
		now:    time.Now,
		logger: logger.With(slog.String("component", "request_log")),
		queue:  make(chan Entry, queueSize),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.run()
	return s
}

// Append queues e for writing. It blocks while the queue is full and returns
// immediately once the sink is closed. Entries racing with Close may be dropped.
func (s *DailyFileSink) Append(e Entry) {
	select {
	case <-s.quit:
		return
	default:
	}

	select {
	case s.queue <- e:
	case <-s.quit:
	}
}

// Close stops accepting entries, writes everything already queued and closes
// the current file. It is safe to call more than once.
func (s *DailyFileSink) Close() error {
	s.closeOnce.Do(func() {
		close(s.quit)
	})
	<-s.done
	return nil
}

func (s *DailyFileSink) run() {
	defer close(s.done)

	for {
		select {
		case e := <-s.queue:
			s.write(e)
		case <-s.quit:
			s.drain()
			s.closeFile()
			return
		}
	}
}

func (s *DailyFileSink) drain() {
	for {
		select {
		case e := <-s.queue:
			s.write(e)
		default:
			return
		}
	}
}

func (s *DailyFileSink) write(e Entry) {
	day := s.now().Format(fileDateLayout)
	if s.file == nil || day != s.day {
		s.closeFile()
		if err := s.open(day); err != nil {
			s.logger.Error("failed to open request log file",
				slog.String("error", err.Error()),
				slog.String("day", day))
			return
		}
	}

	if _, err := s.file.WriteString(e.Line()); err != nil {
		s.logger.Error("failed to write request log entry",
			slog.String("error", err.Error()),
			slog.String("file", s.file.Name()))
		// reopen on the next write
		s.closeFile()
	}
}

func (s *DailyFileSink) open(day string) error {
	path := filepath.Join(s.dir, day+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	s.file = f
	s.day = day
	return nil
}

func (s *DailyFileSink) closeFile() {
	if s.file == nil {
		return
	}
	if err := s.file.Close(); err != nil {
		s.logger.Warn("failed to close request log file",
			slog.String("error", err.Error()),
			slog.String("file", s.file.Name()))
	}
	s.file = nil
	s.day = ""
}
