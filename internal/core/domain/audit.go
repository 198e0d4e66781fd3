package domain

import "time"

// Audit event actions.
const (
	AuditLoginSucceeded = "login_succeeded"
	AuditLoginFailed    = "login_failed"
	AuditUserRegistered = "user_registered"
	AuditTweetDeleted   = "tweet_deleted"
)

// AuditEvent records a security-relevant action for the audit trail.
// Subject is the acting user's id when known; failed logins only carry the
// submitted username. Events never contain passwords, digests, or tokens.
type AuditEvent struct {
	Action    string
	Subject   string
	Username  string
	Detail    string
	Timestamp time.Time
}
