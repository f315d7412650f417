package browser

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCookieFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	body := `[
  {"name": "li_at", "value": "secret", "domain": ".linkedin.com", "path": "/", "secure": true, "httpOnly": true, "expirationDate": 1788000000.5},
  {"name": "", "value": "dropped"},
  {"name": "bcookie", "value": "v2", "domain": ".linkedin.com"}
]`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cookies, err := LoadCookieFile(path)
	if err != nil {
		t.Fatalf("LoadCookieFile: %v", err)
	}
	if len(cookies) != 2 {
		t.Fatalf("got %d cookies, want nameless entry dropped", len(cookies))
	}
	if cookies[0].Name != "li_at" || cookies[0].Value != "secret" {
		t.Errorf("first cookie = %+v", cookies[0])
	}
	if cookies[1].Path != "/" {
		t.Errorf("empty path should default to /, got %q", cookies[1].Path)
	}
}

func TestLoadCookieFileMissingIsNotAnError(t *testing.T) {
	cookies, err := LoadCookieFile(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if cookies != nil {
		t.Fatalf("got %v, want nil", cookies)
	}

	cookies, err = LoadCookieFile("")
	if err != nil || cookies != nil {
		t.Fatalf("empty path: %v, %v", cookies, err)
	}
}

func TestLoadCookieFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCookieFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestHTTPCookies(t *testing.T) {
	in := []Cookie{
		{Name: "li_at", Value: "secret", Domain: ".linkedin.com", Path: "/", Secure: true, HTTPOnly: true, Expires: 1788000000},
		{Name: "session", Value: "x", Path: "/"},
	}
	out := HTTPCookies(in)
	if len(out) != 2 {
		t.Fatalf("got %d cookies", len(out))
	}
	if !out[0].Secure || !out[0].HttpOnly {
		t.Errorf("flags lost: %+v", out[0])
	}
	if out[0].Expires.IsZero() {
		t.Error("expiry lost")
	}
	if !out[1].Expires.IsZero() {
		t.Error("sessions cookies must not gain an expiry")
	}
}
