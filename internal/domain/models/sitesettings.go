// internal/domain/models/sitesettings.go
package models

// DefaultSiteName is the site name used when none is configured.
const DefaultSiteName = "OctoFit Tracker"
