// Package flash carries one-shot notices across a redirect.
//
// A notice is added to a signed cookie session before redirecting and
// popped by the next page render, so it is shown exactly once. The browser
// removes it after DismissAfterMS.
package flash

import (
	"encoding/gob"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Notice kinds map to alert styles.
const (
	KindSuccess = "success"
	KindDanger  = "danger"
	KindInfo    = "info"
)

// DefaultDismiss is how long a notice stays on screen.
const DefaultDismiss = 3 * time.Second

const flashKey = "_notices"

// Notice is one transient message.
type Notice struct {
	Kind           string
	Message        string
	DismissAfterMS int64
}

func init() {
	gob.Register(Notice{})
	gob.Register([]interface{}{})
}

// Manager stores notices in a cookie session.
type Manager struct {
	store   *sessions.CookieStore
	name    string
	dismiss time.Duration
	log     *zap.Logger
}

// NewManager builds a Manager. An empty key generates a random one, which
// means notices do not survive a restart; fine for dev, set a key in prod.
func NewManager(key []byte, name string, secure bool, dismiss time.Duration, logger *zap.Logger) *Manager {
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
	}
	if name == "" {
		name = "octofit-flash"
	}
	if dismiss <= 0 {
		dismiss = DefaultDismiss
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, name: name, dismiss: dismiss, log: logger}
}

// Dismiss returns the configured on-screen time.
func (m *Manager) Dismiss() time.Duration { return m.dismiss }

// Add queues a notice for the next render. It must run before the response
// header is written.
func (m *Manager) Add(w http.ResponseWriter, r *http.Request, kind, msg string) error {
	sess, err := m.session(r)
	if err != nil {
		return err
	}
	sess.AddFlash(Notice{Kind: kind, Message: msg, DismissAfterMS: m.dismiss.Milliseconds()}, flashKey)
	if err := sess.Save(r, w); err != nil {
		m.log.Warn("flash save failed", zap.Error(err))
		return err
	}
	return nil
}

// Pop returns and clears the queued notices. Failures are logged and yield
// no notices; a broken cookie should never break a page.
func (m *Manager) Pop(w http.ResponseWriter, r *http.Request) []Notice {
	sess, err := m.session(r)
	if err != nil {
		return nil
	}
	raw := sess.Flashes(flashKey)
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		m.log.Warn("flash clear failed", zap.Error(err))
	}
	out := make([]Notice, 0, len(raw))
	for _, v := range raw {
		if n, ok := v.(Notice); ok {
			out = append(out, n)
		}
	}
	return out
}

// session returns the flash session. A cookie signed with an old key is
// replaced with a fresh session rather than failing the request.
func (m *Manager) session(r *http.Request) (*sessions.Session, error) {
	sess, err := m.store.Get(r, m.name)
	if err == nil {
		return sess, nil
	}
	var cerr securecookie.Error
	if errors.As(err, &cerr) && cerr.IsDecode() && sess != nil {
		m.log.Debug("discarding unreadable flash cookie", zap.Error(err))
		return sess, nil
	}
	m.log.Warn("flash session unavailable", zap.Error(err))
	return nil, err
}
