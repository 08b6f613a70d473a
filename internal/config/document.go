package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultDocumentFilename is the site configuration read when no path is given.
	DefaultDocumentFilename = "mkdocs.yml"

	// TagPath is the location of the release tag supplied by CI.
	TagPath = "extra.local.tag"

	// envTag resolves a scalar from environment variables, as mkdocs does.
	envTag = "!ENV"

	nullTag  = "!!null"
	mergeKey = "<<"
)

// Document is a parsed YAML site configuration.
// The zero value and a nil *Document behave as an empty mapping.
type Document struct {
	root *yaml.Node
}

// LoadDocument reads and parses the YAML document at path.
// A missing file yields an error wrapping os.ErrNotExist.
func LoadDocument(path string) (*Document, error) {
	if path == "" {
		path = DefaultDocumentFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	return ParseDocument(contents)
}

// ParseDocument parses YAML contents into a Document.
func ParseDocument(contents []byte) (*Document, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(contents, &node); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}

	doc := new(Document)
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		doc.root = node.Content[0]
	}

	return doc, nil
}

// Lookup returns the scalar at a dotted path such as "extra.local.tag".
// Missing keys, non-scalar values and nulls report false.
func (d *Document) Lookup(path string) (string, bool) {
	if d == nil || d.root == nil || path == "" {
		return "", false
	}

	node := d.root
	for _, key := range strings.Split(path, ".") {
		node = child(node, key)
		if node == nil {
			return "", false
		}
	}

	return scalar(node)
}

// child returns the value stored under key in a mapping node, following
// aliases and merge keys.
func child(node *yaml.Node, key string) *yaml.Node {
	node = deref(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	var merged []*yaml.Node

	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]

		switch k.Value {
		case key:
			return deref(v)
		case mergeKey:
			merged = append(merged, v)
		}
	}

	for _, m := range merged {
		m = deref(m)
		if m.Kind == yaml.SequenceNode {
			for _, item := range m.Content {
				if found := child(item, key); found != nil {
					return found
				}
			}

			continue
		}

		if found := child(m, key); found != nil {
			return found
		}
	}

	return nil
}

func deref(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	return node
}

func scalar(node *yaml.Node) (string, bool) {
	if node.Tag == envTag {
		return lookupEnv(node)
	}

	if node.Kind != yaml.ScalarNode || node.ShortTag() == nullTag {
		return "", false
	}

	return node.Value, true
}

// lookupEnv resolves `!ENV NAME` and `!ENV [NAME, OTHER, fallback]`.
// In the sequence form every item but the last names a variable; the last is
// the literal fallback used when none of them is set.
func lookupEnv(node *yaml.Node) (string, bool) {
	switch node.Kind {
	case yaml.ScalarNode:
		return os.LookupEnv(node.Value)
	case yaml.SequenceNode:
		items := node.Content
		if len(items) == 0 {
			return "", false
		}

		names, fallback := items, (*yaml.Node)(nil)
		if len(items) > 1 {
			names, fallback = items[:len(items)-1], items[len(items)-1]
		}

		for _, name := range names {
			if value, ok := os.LookupEnv(name.Value); ok {
				return value, true
			}
		}

		if fallback == nil || fallback.Kind != yaml.ScalarNode || fallback.ShortTag() == nullTag {
			return "", false
		}

		return fallback.Value, true
	default:
		return "", false
	}
}
