package web

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
)

const flashCookie = "accountpro_flash"

// Notice categories. They double as CSS classes in the layout.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notice is a one-shot message shown on the next rendered page.
type Notice struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// FlashStore carries notices across a redirect in an HMAC-signed
// cookie. Tampered or unsigned cookies are discarded silently.
type FlashStore struct {
	secret []byte
}

// NewFlashStore creates a flash store signing with the given key.
func NewFlashStore(secret string) *FlashStore {
	return &FlashStore{secret: []byte(secret)}
}

// Set stores the notices for the next request.
func (f *FlashStore) Set(w http.ResponseWriter, notices ...Notice) {
	payload, err := json.Marshal(notices)
	if err != nil {
		return
	}
	value := base64.RawURLEncoding.EncodeToString(payload)
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    value + "." + f.sign(value),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending notices and clears the cookie. A missing,
// malformed or badly signed cookie yields nil.
func (f *FlashStore) Pop(w http.ResponseWriter, r *http.Request) []Notice {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	value, sig, ok := strings.Cut(c.Value, ".")
	if !ok || !hmac.Equal([]byte(sig), []byte(f.sign(value))) {
		return nil
	}

	payload, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}

	var notices []Notice
	if err := json.Unmarshal(payload, &notices); err != nil {
		return nil
	}
	return notices
}

func (f *FlashStore) sign(value string) string {
	mac := hmac.New(sha256.New, f.secret)
	mac.Write([]byte(value))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
