package release

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// Default is used when no source yields a version.
	Default = "hearth_version"

	// SnapshotSuffix marks a build that is not exactly on a tag.
	SnapshotSuffix = "-SNAPSHOT"
)

var (
	// markedDescribe matches `<tag>-<N>-g<hash>` describe output.
	markedDescribe = regexp.MustCompile(`^.+-[0-9]+-g[0-9a-z]{8}`)
	// bareDescribe matches `<tag>-<N>-<hash>` without the `g` marker.
	bareDescribe = regexp.MustCompile(`^.+-[0-9]+-[0-9a-z]{8}`)
)

// FirstNonEmpty returns the first non-empty candidate, or "" if there is none.
func FirstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}

	return ""
}

// Normalize appends the snapshot suffix to describe-style versions.
// Patterns are matched against the prefix of s and only the first match applies.
// For the `g`-marked form the last rune is dropped before the suffix is
// appended, which keeps 8-digit abbreviated hashes at the usual 7 digits.
func Normalize(s string) string {
	switch {
	case markedDescribe.MatchString(s):
		_, size := utf8.DecodeLastRuneInString(s)

		return s[:len(s)-size] + SnapshotSuffix
	case bareDescribe.MatchString(s):
		return s + SnapshotSuffix
	default:
		return s
	}
}

// IsSnapshot reports whether v carries the snapshot suffix.
func IsSnapshot(v string) bool {
	return strings.HasSuffix(v, SnapshotSuffix)
}
