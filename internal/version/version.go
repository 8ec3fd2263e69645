// internal/version/version.go
package version

// Version is the release string, overridden at build time via
// -ldflags "-X seqstat/internal/version.Version=...".
var Version = "dev"
