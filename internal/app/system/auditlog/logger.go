// internal/app/system/auditlog/logger.go
package auditlog

import (
	"net/http"

	"github.com/dalemusser/octofit/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Event types for user mutations.
const (
	EventUserCreated = "user_created"
	EventUserUpdated = "user_updated"
	EventUserDeleted = "user_deleted"
)

// Modes for Config.Admin.
const (
	ModeLog = "log"
	ModeOff = "off"
)

// Config holds audit logging configuration.
type Config struct {
	// Admin controls logging for user mutations: "log" (zap) or "off".
	Admin string
}

// Event is one audited action.
type Event struct {
	EventType     string
	UserID        string
	Username      string
	IP            string
	UserAgent     string
	RequestID     string
	Success       bool
	FailureReason string
	Details       map[string]string
}

// Logger writes audit events as structured log lines tagged audit=true.
type Logger struct {
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(zapLog *zap.Logger, config Config) *Logger {
	if zapLog == nil {
		zapLog = zap.NewNop()
	}
	return &Logger{zapLog: zapLog, config: config}
}

// Log records event. A nil Logger is a no-op so handlers under test can
// leave it unset.
func (l *Logger) Log(event Event) {
	if l == nil || l.config.Admin == ModeOff {
		return
	}

	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.UserID != "" {
		fields = append(fields, zap.String("user_id", event.UserID))
	}
	if event.Username != "" {
		fields = append(fields, zap.String("username", event.Username))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

func (l *Logger) record(r *http.Request, eventType, userID, username string, err error) {
	ev := Event{
		EventType: eventType,
		UserID:    userID,
		Username:  username,
		IP:        ratelimit.ClientIP(r),
		UserAgent: r.UserAgent(),
		RequestID: middleware.GetReqID(r.Context()),
		Success:   err == nil,
	}
	if err != nil {
		ev.FailureReason = err.Error()
	}
	l.Log(ev)
}

// UserCreated logs a create attempt; err is the upstream failure, if any.
func (l *Logger) UserCreated(r *http.Request, username string, err error) {
	l.record(r, EventUserCreated, "", username, err)
}

// UserUpdated logs an update attempt.
func (l *Logger) UserUpdated(r *http.Request, userID, username string, err error) {
	l.record(r, EventUserUpdated, userID, username, err)
}

// UserDeleted logs a delete attempt.
func (l *Logger) UserDeleted(r *http.Request, userID string, err error) {
	l.record(r, EventUserDeleted, userID, "", err)
}
