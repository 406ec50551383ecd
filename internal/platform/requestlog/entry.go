// Package requestlog persists one line per HTTP request to a daily log file.
package requestlog

import (
	"fmt"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

// Entry is a completed request as recorded in the daily log.
// Time is the completion time; Path is the request target including its query.
type Entry struct {
	Time     time.Time
	Peer     string
	Method   string
	Path     string
	Status   int
	Duration time.Duration
}

// Line renders the entry as a single newline-terminated log line:
//
//	[2006-01-02 15:04:05] 10.0.0.1:5312 GET /master/countries 200 3ms
func (e Entry) Line() string {
	return fmt.Sprintf("[%s] %s %s %s %d %dms\n",
		e.Time.Format(timestampLayout),
		e.Peer,
		e.Method,
		e.Path,
		e.Status,
		e.Duration.Milliseconds(),
	)
}
