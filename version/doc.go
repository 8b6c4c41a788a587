// Package version provides build version information embedding for
// seqkit.
//
// Version, git commit, and build time are set at compile time via
// -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/seqkit/version.Version=1.0.0"
//
// When ldflags are absent the package falls back to the VCS metadata
// the Go toolchain embeds in the binary.
package version
