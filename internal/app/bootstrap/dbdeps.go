// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/octofit/internal/app/system/apiclient"
)

// DBDeps holds the back-end dependencies for the app. OctoFit keeps no
// data of its own; its only backend is the upstream API.
type DBDeps struct {
	API *apiclient.Client
}
