// Package audit provides security audit logging for SIEM consumption.
// Events are logged in structured JSON under a dedicated logger namespace
// so they can be filtered and alerted on independently of app logs.
package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/auth"
	sqlcheck "github.com/seo-bandwagon/SEOBW-home-sub001/pkg/sql"
)

// SecurityEventType categorizes security-relevant events.
type SecurityEventType string

const (
	// EventSQLInjectionAttempt is logged when libinjection detects SQL
	// injection patterns in a query parameter.
	EventSQLInjectionAttempt SecurityEventType = "sql_injection_attempt"
	// EventUnverifiedCallback is logged when the GSC callback is accepted
	// without any verification of the redirect source.
	EventUnverifiedCallback SecurityEventType = "unverified_oauth_callback"
)

// SecurityEvent is the SIEM-facing record shape.
type SecurityEvent struct {
	Timestamp time.Time         `json:"timestamp"`
	EventType SecurityEventType `json:"event_type"`
	UserID    string            `json:"user_id,omitempty"`
	ClientIP  string            `json:"client_ip,omitempty"`
	Endpoint  string            `json:"endpoint,omitempty"`
	Details   any               `json:"details,omitempty"`
	Severity  string            `json:"severity"` // info, warning, critical
}

// SecurityAuditor logs security events for SIEM consumption.
type SecurityAuditor struct {
	logger *zap.Logger
}

// NewSecurityAuditor creates a security auditor with a dedicated logger
// namespace for SIEM filtering.
func NewSecurityAuditor(logger *zap.Logger) *SecurityAuditor {
	return &SecurityAuditor{logger: logger.Named("security_audit")}
}

// LogInjectionAttempt records a detected SQL injection pattern in a query
// parameter. Store access is fully parameterized so the request proceeds;
// the event is recorded at WARN with "warning" severity for trend analysis.
func (a *SecurityAuditor) LogInjectionAttempt(ctx context.Context, endpoint, clientIP string, result *sqlcheck.InjectionCheckResult) {
	event := SecurityEvent{
		Timestamp: time.Now().UTC(),
		EventType: EventSQLInjectionAttempt,
		UserID:    auth.GetUserIDFromContext(ctx),
		ClientIP:  clientIP,
		Endpoint:  endpoint,
		Details:   result,
		Severity:  "warning",
	}

	a.logger.Warn("SQL injection pattern in query parameter",
		zap.Any("security_event", event))
}

// LogUnverifiedCallback records acceptance of the GSC OAuth callback, which
// trusts the redirect source entirely.
func (a *SecurityAuditor) LogUnverifiedCallback(ctx context.Context, endpoint, clientIP string) {
	event := SecurityEvent{
		Timestamp: time.Now().UTC(),
		EventType: EventUnverifiedCallback,
		UserID:    auth.GetUserIDFromContext(ctx),
		ClientIP:  clientIP,
		Endpoint:  endpoint,
		Severity:  "info",
	}

	a.logger.Info("Accepted unverified OAuth callback",
		zap.Any("security_event", event))
}
