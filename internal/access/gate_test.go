package access

import (
	"errors"
	"testing"
)

func TestVerifyPlaintextCodes(t *testing.T) {
	g := NewGate("fireworks", "lemonade")

	role, err := g.Verify("fireworks")
	if err != nil || role != RoleAdmin {
		t.Fatalf("Verify(admin code) = %v, %v, want RoleAdmin", role, err)
	}

	role, err = g.Verify("lemonade")
	if err != nil || role != RoleGuest {
		t.Fatalf("Verify(guest code) = %v, %v, want RoleGuest", role, err)
	}

	role, err = g.Verify("wrong")
	if !errors.Is(err, ErrInvalidCode) || role != RoleNone {
		t.Fatalf("Verify(wrong) = %v, %v, want RoleNone + ErrInvalidCode", role, err)
	}
}

func TestVerifyHashedCodes(t *testing.T) {
	adminHash, err := HashCode("fireworks")
	if err != nil {
		t.Fatalf("HashCode() error = %v", err)
	}
	guestHash, err := HashCode("lemonade")
	if err != nil {
		t.Fatalf("HashCode() error = %v", err)
	}

	g := NewGate(adminHash, guestHash)

	if role, err := g.Verify("fireworks"); err != nil || role != RoleAdmin {
		t.Fatalf("Verify(admin) with hash = %v, %v", role, err)
	}
	if role, err := g.Verify("lemonade"); err != nil || role != RoleGuest {
		t.Fatalf("Verify(guest) with hash = %v, %v", role, err)
	}
	if _, err := g.Verify("fireworks "); err != nil {
		t.Fatalf("Verify should trim input: %v", err)
	}
	if _, err := g.Verify("FIREWORKS"); !errors.Is(err, ErrInvalidCode) {
		t.Fatal("codes are case-sensitive")
	}
}

func TestVerifyEmptyInputNeverMatches(t *testing.T) {
	g := NewGate("", "lemonade")

	if _, err := g.Verify(""); !errors.Is(err, ErrInvalidCode) {
		t.Fatal("empty input matched")
	}
	if _, err := g.Verify("   "); !errors.Is(err, ErrInvalidCode) {
		t.Fatal("blank input matched")
	}
}

func TestDisabledRoles(t *testing.T) {
	g := NewGate("fireworks", "")

	if _, err := g.Verify("lemonade"); !errors.Is(err, ErrInvalidCode) {
		t.Fatal("guest role should be disabled when its code is empty")
	}
	if g.Open() {
		t.Fatal("Open() = true with an admin code configured")
	}

	open := NewGate("", "")
	if !open.Open() {
		t.Fatal("Open() = false with no codes configured")
	}
}

func TestRoleString(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleAdmin, "admin"},
		{RoleGuest, "guest"},
		{RoleNone, "none"},
	}
	for _, tt := range tests {
		if got := tt.role.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.role, got, tt.want)
		}
	}
}
