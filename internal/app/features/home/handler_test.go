package home

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/octofit/internal/app/resources"
	"github.com/dalemusser/octofit/internal/app/system/viewdata"
	"github.com/dalemusser/octofit/internal/testutil"
	"go.uber.org/zap"
)

func TestNewHandler(t *testing.T) {
	if NewHandler(zap.NewNop()) == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestServeRoot(t *testing.T) {
	h := NewHandler(zap.NewNop())
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	// Rendering needs the booted template engine; without it Render may panic.
	func() {
		defer func() { _ = recover() }()
		h.ServeRoot(rec, req)
	}()
}

func TestHomeTemplate_LinksEveryView(t *testing.T) {
	tmpl := testutil.ParseTemplates(t, resources.FS, FS)
	out := testutil.Execute(t, tmpl, "home", homeData{
		BaseVM: viewdata.BaseVM{SiteName: "OctoFit Tracker", Nav: viewdata.Nav("/")},
		Cards:  cards,
	})

	for _, href := range []string{"/activities", "/teams", "/leaderboard", "/workouts", "/users"} {
		if !strings.Contains(out, `href="`+href+`"`) {
			t.Errorf("landing page missing link to %s", href)
		}
	}
	if !strings.Contains(out, "Welcome to OctoFit Tracker") {
		t.Error("missing welcome heading")
	}
}
