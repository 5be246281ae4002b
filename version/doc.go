// Package version reports the apistruct build. Release builds set the
// variables with -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/apistruct/version.Version=1.2.0" ./cmd/apistruct
//
// Unset values fall back to the VCS settings recorded by the Go toolchain.
package version
