package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger records raw payloads exchanged with the metadata endpoint.
type RawLogger interface {
	Log(source string, status int, data []byte)
}

// rawLogger implements RawLogger with thread-safe writes.
type rawLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

// Log emits a header line with timestamp, source and size followed by the payload verbatim.
func (r *rawLogger) Log(source string, status int, data []byte) {
	if r.w == nil {
		return
	}

	header := fmt.Sprintf("%s GET %s status: %d, %d bytes\n",
		time.Now().Format("2006/01/02 15:04:05"),
		source,
		status,
		len(data))

	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = io.WriteString(r.w, header)
	if len(data) == 0 {
		return
	}
	_, _ = r.w.Write(data)
	if data[len(data)-1] != '\n' {
		_, _ = io.WriteString(r.w, "\n")
	}
}
