package ports

import "context"

// Mailer delivers out-of-band notifications (OTP emails). Delivery may fail
// independently of persistence; callers decide how to surface that.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
