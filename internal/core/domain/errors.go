package domain

import (
	"errors"
	"fmt"
)

// Sentinel failures the authentication tiers and host bridge report.
var (
	// ErrPopupBlocked means the interactive popup could not be presented at
	// all, which selects the dialog-relay fallback tier.
	ErrPopupBlocked = errors.New("popup window blocked or unavailable")

	// ErrDialogClosed means the user closed the fallback dialog before it
	// relayed a result.
	ErrDialogClosed = errors.New("dialog closed")

	// ErrUnsupported means the host mail client does not implement the
	// requested operation, as opposed to the operation failing.
	ErrUnsupported = errors.New("operation not supported on this host")
)

// AuthError means no credential could be obtained through any tier.
type AuthError struct {
	Cause error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("unable to acquire access token: %v", e.Cause)
}

func (e *AuthError) Unwrap() error { return e.Cause }

// MailboxReadError means a host mail-client accessor reported failure.
type MailboxReadError struct {
	Field string
	Cause error
}

func (e *MailboxReadError) Error() string {
	return fmt.Sprintf("failed to get %s: %v", e.Field, e.Cause)
}

func (e *MailboxReadError) Unwrap() error { return e.Cause }

// ConversionError means the native-to-REST id conversion failed.
type ConversionError struct {
	Cause error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("failed to convert item ID to REST format: %v", e.Cause)
}

func (e *ConversionError) Unwrap() error { return e.Cause }

// APIError is a non-success HTTP response from the mail API, carrying the
// parsed error body when one was present.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("Graph API error (%s): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("Graph API error: %d %s", e.StatusCode, e.Message)
}

// NetworkError is a transport-level failure before any HTTP status arrived.
type NetworkError struct {
	Op    string
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *NetworkError) Unwrap() error { return e.Cause }

// DialogError means the host could not open a dialog.
type DialogError struct {
	Cause error
}

func (e *DialogError) Error() string {
	return fmt.Sprintf("failed to display dialog: %v", e.Cause)
}

func (e *DialogError) Unwrap() error { return e.Cause }

// NotificationError means the host rejected a transient notification.
type NotificationError struct {
	Cause error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("failed to show notification: %v", e.Cause)
}

func (e *NotificationError) Unwrap() error { return e.Cause }
