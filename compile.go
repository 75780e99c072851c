package jsonschema

import (
	"github.com/schemacore/jsonschema/internal/engine"
	"github.com/schemacore/jsonschema/pointer"
	"github.com/schemacore/jsonschema/registry"
	"github.com/schemacore/jsonschema/schema"
	"github.com/schemacore/jsonschema/value"
)

// Schema is a compiled schema document bound to a Registry (for resolving
// any $ref it or its descendants contain) and the Options it was compiled
// with.
type Schema struct {
	compiled *schema.Schema
	reg      *registry.Registry
	opts     Options
}

// defaultBaseURI is used when a caller does not supply one; relative $refs
// within a schema with no $id still resolve against it internally, they
// simply never need to leave the document.
const defaultBaseURI = "https://jsonschema.invalid/schema.json"

// Compile parses and compiles a schema document already decoded into a
// value.Node. baseURI anchors relative $id/$ref resolution; pass "" to use
// an opaque internal default.
func Compile(doc value.Node, baseURI string, opts Options) (*Schema, error) {
	if opts.ValidatingAs < Draft2020_12 || opts.ValidatingAs > Draft6 {
		return nil, &ParseError{Code: CodeUnsupportedDraft, Message: "draft " + opts.ValidatingAs.String() + " is not supported"}
	}
	if baseURI == "" {
		baseURI = defaultBaseURI
	}
	reg := registry.New(opts.ValidatingAs)
	compiled, err := reg.Register(baseURI, doc)
	if err != nil {
		return nil, wrapCompileErr(err)
	}
	return &Schema{compiled: compiled, reg: reg, opts: opts}, nil
}

// CompileBytes decodes and compiles a schema document from raw JSON bytes.
// The document is decoded with duplicate-key and depth/size enforcement per
// opts, since a schema document is untrusted input in the same sense an
// instance document is.
func CompileBytes(b []byte, baseURI string, opts Options) (*Schema, error) {
	doc, err := decodeEnforced(b, opts)
	if err != nil {
		return nil, &ParseError{Code: CodeParseError, Message: err.Error(), Cause: err}
	}
	return Compile(doc, baseURI, opts)
}

// Validate evaluates inst against the compiled schema and returns the
// result tree. The returned Node's Render method takes the output format
// as an argument; s.opts.OutputFormat is not applied automatically.
func (s *Schema) Validate(inst value.Node) Node {
	ctx := &schema.Context{
		Opts:     s.opts.toEvalOptions(),
		Resolver: s.reg,
	}
	return s.compiled.Evaluate(ctx, inst, pointer.Root(), pointer.Root())
}

// ValidateBytes decodes raw JSON bytes and validates the result, applying
// the same decode enforcement CompileBytes uses.
func (s *Schema) ValidateBytes(b []byte) (Node, error) {
	inst, err := decodeEnforced(b, s.opts)
	if err != nil {
		return Node{}, err
	}
	return s.Validate(inst), nil
}

func decodeEnforced(b []byte, opts Options) (value.Node, error) {
	return value.DecodeBytesEnforced(b, engine.EnforceOptions{
		OnDuplicate: engine.DupError,
		MaxDepth:    opts.MaxDepth,
		MaxBytes:    opts.MaxBytes,
	})
}

func wrapCompileErr(err error) error {
	if ce, ok := err.(interface {
		Error() string
		Path() string
		Code() string
	}); ok {
		code := ce.Code()
		if code == "" {
			code = CodeParseError
		}
		return &ParseError{Path: ce.Path(), Code: code, Message: ce.Error(), Cause: err}
	}
	if ce, ok := err.(interface {
		Error() string
		Path() string
	}); ok {
		return &ParseError{Path: ce.Path(), Code: CodeParseError, Message: ce.Error(), Cause: err}
	}
	return &ParseError{Code: CodeParseError, Message: err.Error(), Cause: err}
}

