// Package access implements the party's two-tier shared-code gate. It
// decides what the UI shows, nothing more: anyone with spreadsheet access
// can bypass it entirely, so it is a curtain, not a lock.
package access

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/alexedwards/argon2id"
)

// Role is the coarse access level of one session.
type Role int

const (
	RoleNone Role = iota
	RoleGuest
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleGuest:
		return "guest"
	default:
		return "none"
	}
}

// ErrInvalidCode is returned for any input that matches neither code.
var ErrInvalidCode = errors.New("access: invalid code")

// Gate verifies entered codes against the two configured secrets. Stored
// values may be argon2id hashes (written by `fete setup`) or plaintext
// (env overrides). An empty stored value disables that role.
type Gate struct {
	adminCode string
	guestCode string
}

// NewGate builds a gate from the configured admin and guest codes.
func NewGate(adminCode, guestCode string) *Gate {
	return &Gate{adminCode: adminCode, guestCode: guestCode}
}

// Open reports whether the gate has no codes configured at all. An open
// gate means a single-host setup; sessions start as admin without a login.
func (g *Gate) Open() bool {
	return g.adminCode == "" && g.guestCode == ""
}

// Verify checks an entered code. Admin wins when both codes match. Empty
// input never matches anything, even a carelessly configured empty code.
func (g *Gate) Verify(code string) (Role, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return RoleNone, ErrInvalidCode
	}

	if g.adminCode != "" && matches(code, g.adminCode) {
		return RoleAdmin, nil
	}
	if g.guestCode != "" && matches(code, g.guestCode) {
		return RoleGuest, nil
	}
	return RoleNone, ErrInvalidCode
}

// HashCode hashes a code for storage in the config file.
func HashCode(code string) (string, error) {
	return argon2id.CreateHash(code, argon2id.DefaultParams)
}

func matches(input, stored string) bool {
	if strings.HasPrefix(stored, "$argon2id$") {
		match, err := argon2id.ComparePasswordAndHash(input, stored)
		return err == nil && match
	}
	return subtle.ConstantTimeCompare([]byte(input), []byte(stored)) == 1
}
