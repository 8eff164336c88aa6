package version

// Version is the release version of docsentry. Overridden at build time via
// -ldflags "-X docsentry/version.Version=...".
var Version = "0.3.0"
