// Package version exposes build metadata of the hearth-version binary itself.
//
// Version, Commit and BuildTime are injected via ldflags. Unstamped builds fall
// back to the module version recorded by the Go toolchain.
package version
