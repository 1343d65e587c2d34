package version

// Version is the version of the inkdrop CLI. It is overridden at build time
// with -ldflags "-X .../internal/version.Version=...".
var Version = "0.1.0-dev"
