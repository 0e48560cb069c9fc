package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Logger writes one JSON object per entry to stderr, keeping stdout free
// for the console prompts. All entries of one process share a session id.
type Logger struct {
	service string
	session string
}

func New(service string) *Logger {
	return &Logger{service: service, session: uuid.NewString()}
}

// WithService returns a logger for another component sharing the same
// session id.
func (l *Logger) WithService(service string) *Logger {
	return &Logger{service: service, session: l.session}
}

func (l *Logger) log(level, action string, fields map[string]any, err error) {
	entry := map[string]any{
		"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		"level":      level,
		"service":    l.service,
		"action":     action,
		"hostname":   hostname(),
		"session_id": l.session,
	}
	for k, v := range fields {
		entry[k] = v
	}
	if err != nil {
		entry["error"] = map[string]any{"msg": err.Error(), "kind": fmt.Sprintf("%T", err)}
	}
	_ = json.NewEncoder(os.Stderr).Encode(entry)
}

func (l *Logger) Info(action string, fields map[string]any)             { l.log("INFO", action, fields, nil) }
func (l *Logger) Debug(action string, fields map[string]any)            { l.log("DEBUG", action, fields, nil) }
func (l *Logger) Error(action string, err error, fields map[string]any) { l.log("ERROR", action, fields, err) }

func hostname() string { h, _ := os.Hostname(); return h }
