// Package version holds the build version, overridable with
// -ldflags "-X demoshell/internal/version.AppVersion=1.2.3".
package version

// AppVersion is the released version of demoshell.
var AppVersion = "0.1.0"
