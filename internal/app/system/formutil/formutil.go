// Package formutil helps re-render a form after a failed submit.
//
// The page is rebuilt with the user's input echoed back and an error
// message. Embed Base in the form's view model:
//
//	type userFormData struct {
//		formutil.Base
//		Draft models.UserDraft
//	}
//
//	data := userFormData{Draft: d}
//	formutil.SetBase(&data.Base, w, r, "Edit User", "/users")
//	data.SetError(apiclient.Message(err))
package formutil

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/octofit/internal/app/system/viewdata"
)

// Base is viewdata.BaseVM plus the form's error message.
type Base struct {
	viewdata.BaseVM
	Error template.HTML
}

// SetBase fills the shared page fields.
func SetBase(b *Base, w http.ResponseWriter, r *http.Request, title, backDefault string) {
	b.BaseVM = viewdata.NewBaseVM(w, r, title, backDefault)
}

// SetError sets a plain-text error. The text is escaped.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(template.HTMLEscapeString(msg))
}

// HasError reports whether an error is set.
func (b *Base) HasError() bool { return b.Error != "" }
