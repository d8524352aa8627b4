package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestEncodeDecode_Signed(t *testing.T) {
	m := NewManager("test-secret")
	id := uuid.New().String()

	value := m.Encode(id)
	if !strings.Contains(value, ".") {
		t.Fatalf("signed cookie value missing signature: %q", value)
	}

	got, ok := m.Decode(value)
	if !ok {
		t.Fatal("valid signed value rejected")
	}
	if got != id {
		t.Errorf("Decode = %q, want %q", got, id)
	}
}

func TestDecode_RejectsTamperedSignature(t *testing.T) {
	m := NewManager("test-secret")
	value := m.Encode(uuid.New().String())

	tampered := value[:len(value)-1] + "0"
	if tampered == value {
		tampered = value[:len(value)-1] + "1"
	}
	if _, ok := m.Decode(tampered); ok {
		t.Error("tampered signature accepted")
	}
}

func TestDecode_RejectsForeignSecret(t *testing.T) {
	a := NewManager("secret-a")
	b := NewManager("secret-b")

	value := a.Encode(uuid.New().String())
	if _, ok := b.Decode(value); ok {
		t.Error("cookie signed with a different secret accepted")
	}
}

func TestDecode_Unsigned(t *testing.T) {
	m := NewManager("")
	id := uuid.New().String()

	if got := m.Encode(id); got != id {
		t.Errorf("unsigned Encode = %q, want bare id", got)
	}
	if _, ok := m.Decode(id); !ok {
		t.Error("unsigned valid uuid rejected")
	}
	if _, ok := m.Decode("not-a-uuid"); ok {
		t.Error("malformed id accepted in unsigned mode")
	}
}

func TestSessionID_MintsAndReuses(t *testing.T) {
	m := NewManager("test-secret")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/recommend", nil)
	id := m.SessionID(w, r)
	if id == "" {
		t.Fatal("no session id minted")
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("expected one %s cookie, got %v", CookieName, cookies)
	}

	// Same cookie on a follow-up request yields the same id without a
	// new Set-Cookie.
	w2 := httptest.NewRecorder()
	r2 := httptest.NewRequest(http.MethodGet, "/explain-node", nil)
	r2.AddCookie(cookies[0])
	if got := m.SessionID(w2, r2); got != id {
		t.Errorf("follow-up session id = %q, want %q", got, id)
	}
	if len(w2.Result().Cookies()) != 0 {
		t.Error("cookie re-set on a request that already carried one")
	}
}

func TestSessionID_ReplacesInvalidCookie(t *testing.T) {
	m := NewManager("test-secret")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/recommend", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})

	id := m.SessionID(w, r)
	if id == "" {
		t.Fatal("no replacement id minted")
	}
	if len(w.Result().Cookies()) != 1 {
		t.Error("expected replacement Set-Cookie")
	}
}
