// Package engine decodes a streaming token source into an "any" tree
// (map[string]any / []any / scalars) and layers duplicate-key detection and
// depth/byte enforcement on top of any TokenSource. It backs the value
// package's default decode path.
package engine
