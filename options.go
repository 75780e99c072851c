package jsonschema

import "github.com/schemacore/jsonschema/schema"

// Draft, OutputFormat, and Node/Result are defined once in the schema
// package (which does the actual compiling and evaluating) and re-exported
// here so callers never need to import schema directly for ordinary use.
type Draft = schema.Draft

const (
	Draft2020_12 = schema.Draft2020_12
	Draft2019_09 = schema.Draft2019_09
	Draft7       = schema.Draft7
	Draft6       = schema.Draft6
)

type OutputFormat = schema.OutputFormat

const (
	Flag     = schema.Flag
	Basic    = schema.Basic
	Detailed = schema.Detailed
	Verbose  = schema.Verbose
)

// Node is the validation result tree: the outcome of applying one keyword
// (or nested schema) at one location. The root Node's Valid field is the
// overall pass/fail answer.
type Node = schema.Result

// BasicEntry is one line of Node.Basic() output.
type BasicEntry = schema.BasicEntry

// Options bundles the orthogonal knobs threaded through compilation and
// validation, mirroring the teacher's ParseOpt/Strictness grouping rather
// than a scattering of functional options.
type Options struct {
	// ValidatingAs selects the draft. Zero value is Draft2020_12.
	ValidatingAs Draft

	// OutputFormat records the caller's preferred rendering. Validate does
	// not consult it: Node.Render always takes the format as an argument
	// (the CLI passes this value there).
	OutputFormat OutputFormat

	// ApplyOptimizations is passed through to evaluation, but no keyword
	// short-circuits on it: every applicator branch (allOf, anyOf, oneOf,
	// items, ...) runs whether it is set or not, so Verbose output always
	// includes passing branches.
	ApplyOptimizations bool

	// AssertFormat turns the format keyword from an annotation into an
	// assertion that can fail validation. Off by default per 2019-09+
	// semantics, where format is vocabulary-gated and non-failing unless a
	// caller opts in.
	AssertFormat bool

	// MaxDepth and MaxBytes bound schema/instance document ingestion via
	// value.DecodeBytesEnforced; zero means unbounded.
	MaxDepth int
	MaxBytes int64

	// LogIndentLevel is carried on Options but not read by compilation,
	// evaluation or rendering; Node's textual dump always starts at
	// indentation depth 0.
	LogIndentLevel int
}

// DefaultOptions returns the Options a bare Compile/Validate call uses.
func DefaultOptions() Options {
	return Options{
		ValidatingAs:       Draft2020_12,
		OutputFormat:       Basic,
		ApplyOptimizations: true,
	}
}

func (o Options) toEvalOptions() schema.EvalOptions {
	return schema.EvalOptions{
		Draft:              o.ValidatingAs,
		ApplyOptimizations: o.ApplyOptimizations,
		AssertFormat:       o.AssertFormat,
	}
}
