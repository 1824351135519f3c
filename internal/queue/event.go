// Package queue publishes domain events to the message broker. Outbound mail
// delivery lives outside this service; registration only emits an event that
// the mailer consumes.
package queue

// VerificationRequestedEvent is published when a new account needs its
// verification email. It carries everything the mailer needs to render the
// message without querying the database.
type VerificationRequestedEvent struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	Token       string `json:"token"`
	RequestedAt string `json:"requested_at"`
}

// RoutingKeyVerificationRequested routes verification events on the topic exchange.
const RoutingKeyVerificationRequested = "user.verification.requested"
