// Package release holds the rules that turn a raw tag or describe output into
// the version string displayed in the documentation.
package release
