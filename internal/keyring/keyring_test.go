package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestConnectionString_RoundTrip(t *testing.T) {
	gokeyring.MockInit()

	connStr := "postgres://anchor@localhost:5432/anchor?sslmode=disable"
	if err := SetConnectionString(connStr); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}

	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString() failed: %v", err)
	}
	if got != connStr {
		t.Errorf("GetConnectionString() = %q, want %q", got, connStr)
	}

	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString() failed: %v", err)
	}
	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete, GetConnectionString() error = %v, want %v", err, ErrNotFound)
	}
}

func TestSet_RejectsEmpty(t *testing.T) {
	gokeyring.MockInit()

	tests := []struct {
		name string
		fn   func() error
	}{
		{name: "empty connection string", fn: func() error { return SetConnectionString("") }},
		{name: "blank secret", fn: func() error { return Set("other", "   ") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestAccountsAreIndependent(t *testing.T) {
	gokeyring.MockInit()

	if err := Set("a", "one"); err != nil {
		t.Fatal(err)
	}
	if err := Set("b", "two"); err != nil {
		t.Fatal(err)
	}
	if got, _ := Get("a"); got != "one" {
		t.Errorf("Get(a) = %q, want one", got)
	}
	if err := Delete("a"); err != nil {
		t.Fatal(err)
	}
	if got, _ := Get("b"); got != "two" {
		t.Errorf("Get(b) after deleting a = %q, want two", got)
	}
}

func TestDelete_NotFound(t *testing.T) {
	gokeyring.MockInit()

	_ = DeleteConnectionString()
	if err := DeleteConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteConnectionString() error = %v, want %v", err, ErrNotFound)
	}
}

func TestGet_Unavailable(t *testing.T) {
	gokeyring.MockInitWithError(errors.New("no dbus"))
	defer gokeyring.MockInit()

	if _, err := GetConnectionString(); !errors.Is(err, ErrKeyringUnavailable) {
		t.Errorf("GetConnectionString() error = %v, want %v", err, ErrKeyringUnavailable)
	}
	if IsAvailable() {
		t.Error("IsAvailable() = true with a failing keyring")
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()

	if !IsAvailable() {
		t.Error("IsAvailable() = false, want true in mock mode")
	}
}
