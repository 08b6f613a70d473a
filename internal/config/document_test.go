package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const siteDocument = `
site_name: Hearth
theme:
  name: material
defaults: &defaults
  channel: stable
extra:
  <<: *defaults
  local:
    tag: nightly
  empty: ~
  list: [a, b]
  number: 1.10
markdown_extensions:
  - pymdownx.emoji:
      emoji_generator: !!python/name:material.extensions.emoji.to_svg
`

// TestDocumentLookup walks nested keys, merge keys and non-scalar leaves.
func TestDocumentLookup(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument([]byte(siteDocument))
	require.NoError(t, err)

	value, ok := doc.Lookup(TagPath)
	require.True(t, ok)
	require.Equal(t, "nightly", value)

	value, ok = doc.Lookup("extra.channel")
	require.True(t, ok)
	require.Equal(t, "stable", value)

	value, ok = doc.Lookup("extra.number")
	require.True(t, ok)
	require.Equal(t, "1.10", value)

	for _, path := range []string{"extra.empty", "extra.list", "extra.local", "extra.local.tag.more", "missing", ""} {
		_, ok = doc.Lookup(path)
		require.False(t, ok, path)
	}
}

// TestEmptyDocuments ensures empty and nil documents have no keys.
func TestEmptyDocuments(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument(nil)
	require.NoError(t, err)

	_, ok := doc.Lookup(TagPath)
	require.False(t, ok)

	_, ok = (*Document)(nil).Lookup(TagPath)
	require.False(t, ok)
}

// TestParseDocumentRejectsMalformedYAML checks parse errors are reported.
func TestParseDocumentRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument([]byte("extra: [unterminated"))
	require.Error(t, err)
}

// TestLoadDocument reads a document from disk and reports missing files.
func TestLoadDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, DefaultDocumentFilename)
	require.NoError(t, os.WriteFile(path, []byte(siteDocument), 0o600))

	doc, err := LoadDocument(path)
	require.NoError(t, err)

	value, ok := doc.Lookup(TagPath)
	require.True(t, ok)
	require.Equal(t, "nightly", value)

	_, err = LoadDocument(filepath.Join(dir, "absent.yml"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

// TestEnvTag resolves mkdocs !ENV scalars and sequences.
// It mutates the environment, so it does not run in parallel.
func TestEnvTag(t *testing.T) {
	t.Setenv("HEARTH_TEST_CI_TAG", "v2.0.0")
	t.Setenv("HEARTH_TEST_EMPTY", "")

	doc, err := ParseDocument([]byte(`
extra:
  scalar: !ENV HEARTH_TEST_CI_TAG
  unset: !ENV HEARTH_TEST_UNSET
  second: !ENV [HEARTH_TEST_UNSET, HEARTH_TEST_CI_TAG, fallback]
  fallback: !ENV [HEARTH_TEST_UNSET, fallback]
  single: !ENV [HEARTH_TEST_CI_TAG]
  set_but_empty: !ENV [HEARTH_TEST_EMPTY, fallback]
  null_fallback: !ENV [HEARTH_TEST_UNSET, null]
`))
	require.NoError(t, err)

	cases := map[string]string{
		"extra.scalar":        "v2.0.0",
		"extra.second":        "v2.0.0",
		"extra.fallback":      "fallback",
		"extra.single":        "v2.0.0",
		"extra.set_but_empty": "",
	}
	for path, want := range cases {
		value, ok := doc.Lookup(path)
		require.True(t, ok, path)
		require.Equal(t, want, value, path)
	}

	_, ok := doc.Lookup("extra.unset")
	require.False(t, ok)

	_, ok = doc.Lookup("extra.null_fallback")
	require.False(t, ok)
}
