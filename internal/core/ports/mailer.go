package ports

import "context"

// Mailer is the external notification sender. Rate limiting happens on our
// side before Send is called; the collaborator itself is treated as dumb.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
