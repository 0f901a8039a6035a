// Package session holds one user's transient state: their access role, the
// chat scratchpad, and upload metadata for the Gallery and Invitations
// pages. Nothing here is ever persisted; logout or process exit discards
// it all. Each session belongs to exactly one user interaction loop, so no
// synchronization is needed.
package session

import (
	"strings"
	"time"

	"fete/internal/access"

	"github.com/google/uuid"
)

// ChatMessage is one line of the session chat log.
type ChatMessage struct {
	At   time.Time
	Text string
}

// Upload is session-only metadata about an attached file. The file itself
// stays where it is; fete never copies or stores it.
type Upload struct {
	ID        string
	Name      string
	SizeBytes int64
	AddedAt   time.Time
}

// Session is one user's live state.
type Session struct {
	ID        string
	Role      access.Role
	StartedAt time.Time

	chat    []ChatMessage
	uploads map[string][]Upload
}

// New starts a logged-out session.
func New() *Session {
	return &Session{
		ID:        uuid.NewString(),
		Role:      access.RoleNone,
		StartedAt: time.Now(),
		uploads:   make(map[string][]Upload),
	}
}

// Login records a successful gate check.
func (s *Session) Login(role access.Role) {
	s.Role = role
}

// Logout ends the session: the role drops to none and the chat log and
// uploads are gone for good. A fresh ID marks the next session.
func (s *Session) Logout() {
	s.ID = uuid.NewString()
	s.Role = access.RoleNone
	s.StartedAt = time.Now()
	s.chat = nil
	s.uploads = make(map[string][]Upload)
}

// AppendChat adds a timestamped line to the chat log. Blank lines are
// dropped; ok reports whether anything was added.
func (s *Session) AppendChat(text string) (msg ChatMessage, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ChatMessage{}, false
	}
	msg = ChatMessage{At: time.Now(), Text: text}
	s.chat = append(s.chat, msg)
	return msg, true
}

// Chat returns the log in arrival order.
func (s *Session) Chat() []ChatMessage {
	return s.chat
}

// AddUpload records an attached file against a page (gallery, invites).
func (s *Session) AddUpload(page, name string, sizeBytes int64) Upload {
	u := Upload{
		ID:        uuid.NewString(),
		Name:      name,
		SizeBytes: sizeBytes,
		AddedAt:   time.Now(),
	}
	s.uploads[page] = append(s.uploads[page], u)
	return u
}

// Uploads returns the files attached to a page this session.
func (s *Session) Uploads(page string) []Upload {
	return s.uploads[page]
}
