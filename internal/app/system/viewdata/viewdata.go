// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"strings"
	"sync"

	"github.com/dalemusser/octofit/internal/app/system/flash"
	"github.com/dalemusser/octofit/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// NavItem is one entry of the top navigation bar.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// navItems lists the views in menu order.
var navItems = []struct{ Label, Href string }{
	{"Home", "/"},
	{"Users", "/users"},
	{"Activities", "/activities"},
	{"Teams", "/teams"},
	{"Workouts", "/workouts"},
	{"Leaderboard", "/leaderboard"},
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
//	type listData struct {
//	    viewdata.BaseVM
//	    Table resourceview.Table[activityRow]
//	}
type BaseVM struct {
	SiteName string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
	Nav         []NavItem

	// CSRF protection
	CSRFToken string

	// One-shot notices popped from the flash session.
	Notices []flash.Notice
}

var (
	mu       sync.RWMutex
	siteName = models.DefaultSiteName
	flashes  *flash.Manager
)

// Init sets the site name and flash manager. Call once from bootstrap.
func Init(name string, fm *flash.Manager) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(name) != "" {
		siteName = name
	}
	flashes = fm
}

// Flashes returns the manager set by Init, or nil.
func Flashes() *flash.Manager {
	mu.RLock()
	defer mu.RUnlock()
	return flashes
}

// NewBaseVM builds the shared page fields. It pops pending flash notices,
// so call it once per full-page render and before writing the response.
func NewBaseVM(w http.ResponseWriter, r *http.Request, title, backDefault string) BaseVM {
	mu.RLock()
	name, fm := siteName, flashes
	mu.RUnlock()

	cur := httpnav.CurrentPath(r)
	vm := BaseVM{
		SiteName:    name,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: cur,
		Nav:         Nav(r.URL.Path),
		CSRFToken:   csrf.Token(r),
	}
	if fm != nil && w != nil {
		vm.Notices = fm.Pop(w, r)
	}
	return vm
}

// Nav returns the navigation bar with the entry for path marked active.
func Nav(path string) []NavItem {
	out := make([]NavItem, 0, len(navItems))
	for _, n := range navItems {
		active := path == n.Href
		if n.Href != "/" && strings.HasPrefix(path, n.Href+"/") {
			active = true
		}
		out = append(out, NavItem{Label: n.Label, Href: n.Href, Active: active})
	}
	return out
}
