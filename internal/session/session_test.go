package session

import (
	"testing"

	"fete/internal/access"
)

func TestChatLogOrderAndBlankFiltering(t *testing.T) {
	s := New()

	if _, ok := s.AppendChat("   "); ok {
		t.Fatal("blank chat line accepted")
	}

	s.AppendChat("who's bringing ice?")
	s.AppendChat("me, two bags")

	log := s.Chat()
	if len(log) != 2 {
		t.Fatalf("chat len = %d, want 2", len(log))
	}
	if log[0].Text != "who's bringing ice?" || log[1].Text != "me, two bags" {
		t.Fatalf("chat order wrong: %v", log)
	}
	if log[0].At.After(log[1].At) {
		t.Fatal("chat timestamps out of order")
	}
}

func TestLogoutWipesEverything(t *testing.T) {
	s := New()
	oldID := s.ID

	s.Login(access.RoleAdmin)
	s.AppendChat("secret admin note")
	s.AddUpload("gallery", "beach.jpg", 120_000)

	s.Logout()

	if s.Role != access.RoleNone {
		t.Fatalf("role after logout = %v, want RoleNone", s.Role)
	}
	if len(s.Chat()) != 0 {
		t.Fatal("chat survived logout")
	}
	if len(s.Uploads("gallery")) != 0 {
		t.Fatal("uploads survived logout")
	}
	if s.ID == oldID {
		t.Fatal("session ID not rotated on logout")
	}
}

func TestUploadsAreScopedByPage(t *testing.T) {
	s := New()
	s.AddUpload("gallery", "beach.jpg", 120_000)
	s.AddUpload("gallery", "cake.png", 80_000)
	s.AddUpload("invites", "invite-v2.pdf", 44_000)

	if got := len(s.Uploads("gallery")); got != 2 {
		t.Fatalf("gallery uploads = %d, want 2", got)
	}
	if got := len(s.Uploads("invites")); got != 1 {
		t.Fatalf("invites uploads = %d, want 1", got)
	}
	if got := len(s.Uploads("chat")); got != 0 {
		t.Fatalf("unrelated page uploads = %d, want 0", got)
	}

	u := s.Uploads("gallery")[0]
	if u.ID == "" || u.Name != "beach.jpg" || u.SizeBytes != 120_000 {
		t.Fatalf("upload metadata = %+v", u)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	a := New()
	b := New()

	a.Login(access.RoleAdmin)
	a.AppendChat("only in a")

	if b.Role != access.RoleNone {
		t.Fatal("second session inherited a role")
	}
	if len(b.Chat()) != 0 {
		t.Fatal("second session inherited chat")
	}
	if a.ID == b.ID {
		t.Fatal("sessions share an ID")
	}
}
