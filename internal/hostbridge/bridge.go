package hostbridge

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
	"github.com/LCOG/outlook-report-phishing/internal/core/port"
)

// Frame types exchanged with the pane script.
const (
	frameRequest     = "request"
	frameResponse    = "response"
	frameDialogEvent = "dialogEvent"
	frameCommand     = "command"
	frameState       = "state"
	frameUserData    = "userData"
	frameClosePane   = "closePane"
)

// Host operations invoked over the bridge.
const (
	opSubject            = "subject"
	opFrom               = "from"
	opToRecipients       = "toRecipients"
	opCcRecipients       = "ccRecipients"
	opAttachments        = "attachments"
	opInternetHeaders    = "internetHeaders"
	opItemID             = "itemId"
	opHostName           = "hostName"
	opConvertToRestID    = "convertToRestId"
	opShowNotification   = "showNotification"
	opDisplayDialog      = "displayDialog"
	opCloseDialog        = "closeDialog"
	opAcquireInteractive = "acquireInteractive"
	opLogoutPopup        = "logoutPopup"
)

// Pane commands dispatched to the controller.
const (
	ActionReport   = "report"
	ActionJunk     = "junk"
	ActionUserData = "userdata"
	ActionSignOut  = "signout"
)

// popupBlockedCode is the error code the pane relays when the browser refused
// to open the interactive popup.
const popupBlockedCode = "popup_blocked"

// ErrBridgeClosed is returned to callers whose request was still pending when
// the pane connection went away.
var ErrBridgeClosed = errors.New("host bridge connection closed")

// frame is the single wire envelope. Request/response pairs are correlated
// by ID; pushes and commands carry no ID.
type frame struct {
	ID   string `json:"id,omitempty"`
	Type string `json:"type"`
	Op   string `json:"op,omitempty"`

	Params json.RawMessage `json:"params,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	// Error is a host-side failure; Unsupported means the host does not
	// implement the operation at all.
	Error       string `json:"error,omitempty"`
	Unsupported bool   `json:"unsupported,omitempty"`

	DialogID string `json:"dialogId,omitempty"`
	Message  string `json:"message,omitempty"`
	Closed   bool   `json:"closed,omitempty"`

	Action         string `json:"action,omitempty"`
	ReportType     string `json:"reportType,omitempty"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`

	State  string              `json:"state,omitempty"`
	Detail string              `json:"detail,omitempty"`
	User   *domain.UserProfile `json:"user,omitempty"`
}

// Conn is the subset of *websocket.Conn the bridge uses.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// CommandHandler receives the pane's user actions. Each command runs on its
// own goroutine; the handler is responsible for its own re-entry rules.
type CommandHandler interface {
	SubmitReport(ctx context.Context, reportType, additionalInfo string)
	MoveToJunk(ctx context.Context)
	LoadUserData(ctx context.Context)
	SignOut(ctx context.Context)
}

// Bridge adapts one pane websocket connection into the host-side ports. All
// Office host calls become request frames answered by the pane script, which
// holds the actual Office.js objects.
type Bridge struct {
	conn Conn

	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[string]chan frame
	dialogs map[string]*bridgeDialog
	closed  bool
}

func NewBridge(conn Conn) *Bridge {
	return &Bridge{
		conn:    conn,
		pending: make(map[string]chan frame),
		dialogs: make(map[string]*bridgeDialog),
	}
}

// Run reads frames until the connection fails, dispatching responses to
// their callers, dialog events to their dialogs, and commands to the handler.
// It always leaves the bridge closed: pending callers get ErrBridgeClosed and
// open dialog channels are closed.
func (b *Bridge) Run(ctx context.Context, handler CommandHandler) error {
	defer b.shutdown()

	for {
		_, data, err := b.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return err
			}
			return nil
		}

		var f frame
		if err := json.Unmarshal(data, &f); err != nil {
			log.WithError(err).Warn("Discarding malformed bridge frame")
			continue
		}

		switch f.Type {
		case frameResponse:
			b.resolve(f)
		case frameDialogEvent:
			b.dispatchDialogEvent(f)
		case frameCommand:
			go b.dispatchCommand(ctx, handler, f)
		default:
			log.WithField("type", f.Type).Warn("Discarding bridge frame of unknown type")
		}
	}
}

func (b *Bridge) dispatchCommand(ctx context.Context, handler CommandHandler, f frame) {
	switch f.Action {
	case ActionReport:
		handler.SubmitReport(ctx, f.ReportType, f.AdditionalInfo)
	case ActionJunk:
		handler.MoveToJunk(ctx)
	case ActionUserData:
		handler.LoadUserData(ctx)
	case ActionSignOut:
		handler.SignOut(ctx)
	default:
		log.WithField("action", f.Action).Warn("Discarding unknown pane command")
	}
}

// resolve delivers a response to its waiting caller. A response whose caller
// already gave up, or a duplicate, is dropped.
func (b *Bridge) resolve(f frame) {
	b.mu.Lock()
	ch, ok := b.pending[f.ID]
	if ok {
		delete(b.pending, f.ID)
	}
	b.mu.Unlock()

	if ok {
		ch <- f
	}
}

func (b *Bridge) dispatchDialogEvent(f frame) {
	b.mu.Lock()
	dialog, ok := b.dialogs[f.DialogID]
	if ok && f.Closed {
		delete(b.dialogs, f.DialogID)
	}
	b.mu.Unlock()

	if !ok {
		return
	}
	dialog.deliver(port.DialogEvent{Message: f.Message, Closed: f.Closed})
	if f.Closed {
		dialog.finish()
	}
}

func (b *Bridge) shutdown() {
	b.mu.Lock()
	b.closed = true
	pending := b.pending
	dialogs := b.dialogs
	b.pending = make(map[string]chan frame)
	b.dialogs = make(map[string]*bridgeDialog)
	b.mu.Unlock()

	for _, ch := range pending {
		close(ch)
	}
	for _, dialog := range dialogs {
		dialog.finish()
	}
	_ = b.conn.Close()
}

// call performs one request/response round trip. The result is decoded into
// out when both are present.
func (b *Bridge) call(ctx context.Context, op string, params, out any) error {
	id := uuid.NewString()
	ch := make(chan frame, 1)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrBridgeClosed
	}
	b.pending[id] = ch
	b.mu.Unlock()

	if err := b.writeRequest(id, op, params); err != nil {
		b.mu.Lock()
		delete(b.pending, id)
		b.mu.Unlock()
		return err
	}

	var resp frame
	select {
	case <-ctx.Done():
		b.mu.Lock()
		delete(b.pending, id)
		b.mu.Unlock()
		return ctx.Err()
	case r, ok := <-ch:
		if !ok {
			return ErrBridgeClosed
		}
		resp = r
	}

	switch {
	case resp.Unsupported:
		return domain.ErrUnsupported
	case resp.Error == popupBlockedCode:
		return domain.ErrPopupBlocked
	case resp.Error != "":
		return errors.New(resp.Error)
	}

	if out != nil && len(resp.Result) > 0 {
		return json.Unmarshal(resp.Result, out)
	}
	return nil
}

func (b *Bridge) writeRequest(id, op string, params any) error {
	f := frame{ID: id, Type: frameRequest, Op: op}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return err
		}
		f.Params = raw
	}
	return b.writeFrame(f)
}

func (b *Bridge) writeFrame(f frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}

	b.writeMu.Lock()
	defer b.writeMu.Unlock()
	return b.conn.WriteMessage(websocket.TextMessage, data)
}

// push sends a fire-and-forget frame to the pane. Presentation pushes have no
// failure path; a dead connection is discovered by the read loop.
func (b *Bridge) push(f frame) {
	if err := b.writeFrame(f); err != nil {
		log.WithError(err).Warn("Failed to push frame to pane")
	}
}
