package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/octofit/internal/app/system/flash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func carry(t *testing.T, from *httptest.ResponseRecorder, to *http.Request) {
	t.Helper()
	for _, c := range from.Result().Cookies() {
		to.AddCookie(c)
	}
}

func TestAddThenPopOnce(t *testing.T) {
	m := flash.NewManager(testKey, "test-flash", false, 0, zap.NewNop())

	// Submit: add notice, redirect.
	r1 := httptest.NewRequest(http.MethodPost, "/users", nil)
	w1 := httptest.NewRecorder()
	require.NoError(t, m.Add(w1, r1, flash.KindSuccess, "User added successfully!"))

	// Next render pops it.
	r2 := httptest.NewRequest(http.MethodGet, "/users", nil)
	carry(t, w1, r2)
	w2 := httptest.NewRecorder()
	got := m.Pop(w2, r2)
	require.Len(t, got, 1)
	assert.Equal(t, flash.Notice{
		Kind:           flash.KindSuccess,
		Message:        "User added successfully!",
		DismissAfterMS: flash.DefaultDismiss.Milliseconds(),
	}, got[0])

	// The render after that sees nothing.
	r3 := httptest.NewRequest(http.MethodGet, "/users", nil)
	carry(t, w2, r3)
	assert.Empty(t, m.Pop(httptest.NewRecorder(), r3))
}

func TestPop_NoCookie(t *testing.T) {
	m := flash.NewManager(testKey, "", false, time.Second, nil)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, m.Pop(httptest.NewRecorder(), r))
	assert.Equal(t, time.Second, m.Dismiss())
}

func TestPop_ForeignKeyIgnored(t *testing.T) {
	a := flash.NewManager(testKey, "f", false, 0, zap.NewNop())
	b := flash.NewManager([]byte("ffffffffffffffffffffffffffffffff"), "f", false, 0, zap.NewNop())

	r1 := httptest.NewRequest(http.MethodPost, "/users", nil)
	w1 := httptest.NewRecorder()
	require.NoError(t, a.Add(w1, r1, flash.KindInfo, "hi"))

	r2 := httptest.NewRequest(http.MethodGet, "/users", nil)
	carry(t, w1, r2)
	assert.Empty(t, b.Pop(httptest.NewRecorder(), r2))
}

func TestAdd_SetsCookieAttributes(t *testing.T) {
	m := flash.NewManager(testKey, "attrs", true, 0, zap.NewNop())
	w := httptest.NewRecorder()
	require.NoError(t, m.Add(w, httptest.NewRequest(http.MethodPost, "/", nil), flash.KindSuccess, "ok"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "attrs", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
}
