package contract

import (
	"context"
)

// IEmailService sends outbound notifications. Dispatch failures are returned
// to the caller, never swallowed: the auth flows compensate persisted token
// state when a send fails.
type IEmailService interface {
	SendVerification(ctx context.Context, to, link string) error
	SendPasswordReset(ctx context.Context, to, link string) error
	SendReportStatusUpdate(ctx context.Context, to, reportTitle, status, link string) error
}
