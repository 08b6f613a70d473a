// Package macros resolves the documentation version string and registers it
// as the hearth_version template function.
//
// Resolution tries `git describe --tags`, then the extra.local.tag entry of
// the site configuration, then a fixed default, and normalises describe output
// to a -SNAPSHOT version. It never fails.
package macros
