package room

import "testing"

func TestManagerCreateRoomAssignsUniqueCodes(t *testing.T) {
	m := NewManager(nil)
	a := m.CreateRoom()
	b := m.CreateRoom()
	if a == "" || b == "" || a == b {
		t.Fatalf("expected two distinct codes, got %q and %q", a, b)
	}
	if len(a) != 6 {
		t.Fatalf("code length = %d, want 6", len(a))
	}

	infos := m.ListRooms()
	if len(infos) != 2 {
		t.Fatalf("ListRooms returned %d rooms, want 2", len(infos))
	}
}

func TestManagerGetOrCreateRoomReusesExisting(t *testing.T) {
	m := NewManager(nil)
	r1 := m.GetOrCreateRoom("ABC123")
	r2 := m.GetOrCreateRoom("ABC123")
	if r1 != r2 {
		t.Fatalf("expected the same room for the same code")
	}
	if m.GetOrCreateRoom("") != nil {
		t.Fatalf("empty code must not create a room")
	}
}
