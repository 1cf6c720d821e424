// Package version holds the CLI version, overridable at build time via
// -ldflags "-X .../internal/version.Version=...".
package version

var Version = "dev"
