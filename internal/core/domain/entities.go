package domain

import (
	"time"

	"github.com/google/uuid"
)

// Graph scopes requested per operation. Mail scopes cover reading the
// reported message and forwarding it; profile scopes cover the /me lookup.
var (
	MailScopes    = []string{"mail.read", "mail.send"}
	ProfileScopes = []string{"user.read"}
)

const (
	// RestVersion is the REST id format passed to the host conversion call.
	RestVersion = "v2.0"

	// JunkFolderID is the well-known destination folder for move-to-junk.
	JunkFolderID = "junkemail"

	// HostOutlookIOS identifies the mobile host whose native item ids are
	// already REST-compatible.
	HostOutlookIOS = "OutlookIOS"
)

type EmailAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// MessageReference holds both representations of the reported message id.
// NativeID is the host mail client's internal format, RestID the Graph one.
type MessageReference struct {
	NativeID string
	RestID   string
}

type ItemBody struct {
	ContentType string `json:"contentType,omitempty"`
	Content     string `json:"content,omitempty"`
}

// Message is the slice of a Graph message this system cares about.
type Message struct {
	ID      string    `json:"id,omitempty"`
	Subject string    `json:"subject,omitempty"`
	Body    *ItemBody `json:"body,omitempty"`
}

// UserProfile is the reporting user's identity from /me.
type UserProfile struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Mail        string `json:"mail,omitempty"`
}

type AttachmentDetails struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Size           int64  `json:"size"`
	AttachmentType string `json:"attachmentType"`
	ContentType    string `json:"contentType"`
	IsInline       bool   `json:"isInline"`
}

// EmailItem is the consolidated view of the message under report as seen
// through the host mail client.
type EmailItem struct {
	ItemID  string
	Subject string
	From    EmailAddress
	To      []EmailAddress
	Cc      []EmailAddress
	Sender  EmailAddress
}

// ReportRequest carries everything one report invocation needs. It is built
// once per user action and consumed exactly once.
type ReportRequest struct {
	MessageID      string
	User           UserProfile
	ReportType     string
	AdditionalInfo string
	ForwardToEmail string
}

// ReportOutcome is the terminal value of one workflow invocation.
type ReportOutcome struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ForwardRequest is the body of POST /me/messages/{id}/forward.
type ForwardRequest struct {
	Comment      string      `json:"comment"`
	ToRecipients []Recipient `json:"toRecipients"`
}

type Recipient struct {
	EmailAddress EmailAddress `json:"emailAddress"`
}

// PaneState is the task pane's single mutable presentation state.
type PaneState int

const (
	PaneIdle PaneState = iota
	PaneReporting
	PaneSuccess
	PaneError
)

func (s PaneState) String() string {
	switch s {
	case PaneIdle:
		return "idle"
	case PaneReporting:
		return "reporting"
	case PaneSuccess:
		return "success"
	case PaneError:
		return "error"
	}
	return "unknown"
}

// PhishReport is one logged report as persisted by the tracker service.
type PhishReport struct {
	ID            uuid.UUID
	EmployeeEmail string
	EmailMessage  string
	ReceivedAt    time.Time
}
