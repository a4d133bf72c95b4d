// internal/app/system/limits/limits.go
package limits

// Request body size limits for form submissions.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxUserFormSize bounds the add/edit/delete user forms.
	MaxUserFormSize = 64 << 10 // 64 KB

	// UserMutationsPerMinute is the default per-IP allowance for user
	// create/update/delete requests.
	UserMutationsPerMinute = 30
)
