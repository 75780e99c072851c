package value

import (
	"bytes"
	"io"

	"github.com/schemacore/jsonschema/internal/engine"
)

// Decode drives a TokenSource to build a Node tree, preserving object member
// source order exactly (the property the spec's equality/iteration rules
// depend on, and that a map[string]any decode cannot guarantee).
func Decode(src engine.TokenSource) (Node, error) {
	tok, err := src.NextToken()
	if err != nil {
		return Node{}, err
	}
	return decodeValue(src, tok)
}

// DecodeBytes decodes a JSON document using the fast goccy/go-json driver
// (the teacher's default JSONDriver), preserving member order.
func DecodeBytes(b []byte) (Node, error) {
	return Decode(engine.NewGoccyTokenSource(bytes.NewReader(b)))
}

// DecodeReader decodes a JSON document from a stream.
func DecodeReader(r io.Reader) (Node, error) {
	return Decode(engine.NewGoccyTokenSource(r))
}

// DecodeBytesEnforced decodes with duplicate-key/depth/size enforcement
// applied, surfacing violations as an engine.IssueError rather than silently
// accepting the last-wins duplicate key or unbounded recursion a bare decode
// would allow. Schema documents are untrusted input in the same sense an
// instance document is, so this path is what jsonschema.CompileBytes and
// Schema.ValidateBytes use.
func DecodeBytesEnforced(b []byte, opt engine.EnforceOptions) (Node, error) {
	src := engine.WrapWithEnforcement(engine.NewGoccyTokenSource(bytes.NewReader(b)), opt)
	return Decode(src)
}

func decodeValue(src engine.TokenSource, tok engine.Token) (Node, error) {
	switch tok.Kind {
	case engine.KindBeginObject:
		return decodeObject(src)
	case engine.KindBeginArray:
		return decodeArray(src)
	case engine.KindString:
		return String(tok.String), nil
	case engine.KindNumber:
		return FromNumber(NewNumber(tok.Number)), nil
	case engine.KindBool:
		return Bool(tok.Bool), nil
	case engine.KindNull:
		return Null(), nil
	default:
		return Node{}, io.ErrUnexpectedEOF
	}
}

func decodeObject(src engine.TokenSource) (Node, error) {
	var keys []string
	var vals []Node
	for {
		tok, err := src.NextToken()
		if err != nil {
			return Node{}, err
		}
		if tok.Kind == engine.KindEndObject {
			return Object(keys, vals), nil
		}
		if tok.Kind != engine.KindKey {
			return Node{}, io.ErrUnexpectedEOF
		}
		vt, err := src.NextToken()
		if err != nil {
			return Node{}, err
		}
		v, err := decodeValue(src, vt)
		if err != nil {
			return Node{}, err
		}
		keys = append(keys, tok.String)
		vals = append(vals, v)
	}
}

func decodeArray(src engine.TokenSource) (Node, error) {
	var items []Node
	for {
		tok, err := src.NextToken()
		if err != nil {
			return Node{}, err
		}
		if tok.Kind == engine.KindEndArray {
			return Array(items), nil
		}
		v, err := decodeValue(src, tok)
		if err != nil {
			return Node{}, err
		}
		items = append(items, v)
	}
}
