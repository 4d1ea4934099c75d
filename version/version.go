package version

// Version is the release version, set at build time with
// -ldflags "-X github.com/wc-toolkit/cem-changelog/version.Version=...".
var Version = "dev"
