package middleware

import (
	"net/http"
	"sync/atomic"
)

const defaultStatus = http.StatusOK

// StatusRecorder remembers the status code and byte count of a response.
type StatusRecorder struct {
	http.ResponseWriter

	status        int
	headerWritten bool
	bytesSent     atomic.Int64
}

func NewStatusRecorder(w http.ResponseWriter) *StatusRecorder {
	return &StatusRecorder{
		ResponseWriter: w,
		status:         defaultStatus,
	}
}

func (w *StatusRecorder) WriteHeader(statusCode int) {
	if w.headerWritten {
		return
	}

	w.ResponseWriter.WriteHeader(statusCode)
	w.status = statusCode
	w.headerWritten = true
}

func (w *StatusRecorder) Write(b []byte) (int, error) {
	if !w.headerWritten {
		w.WriteHeader(defaultStatus)
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytesSent.Add(int64(n))
	return n, err
}

func (w *StatusRecorder) Status() int {
	return w.status
}

func (w *StatusRecorder) BytesWritten() int {
	return int(w.bytesSent.Load())
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *StatusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
