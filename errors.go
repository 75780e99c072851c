package jsonschema

import (
	"fmt"
	"strings"

	"github.com/schemacore/jsonschema/schema"
)

// Parse/compile-time error codes. CodeParseError, CodeDuplicateID and
// CodeUnsupportedDraft surface as Go errors from Compile; a schema document
// that merely fails to validate an instance never produces one of these,
// see the Issue* codes for that path instead. CodeUnresolvedRef is reported during
// validation, as the Code of a failing Node, since $refs are resolved only
// when evaluated.
//
// There is no CodeCyclicRef: a $ref cycle is not a compile-time error here.
// schema.Context detects it during evaluation and short-circuits that
// branch to valid (see schema/keyword.go), since JSON Schema has no notion
// of bounded recursion depth; a cyclic $ref is a structural possibility,
// not a failure, so no code path ever needs to report one.
const (
	CodeParseError       = "parse_error"
	CodeUnresolvedRef    = schema.CodeUnresolvedRef
	CodeDuplicateID      = schema.CodeDuplicateID
	CodeUnsupportedDraft = "unsupported_draft"
)

// ParseError reports a problem compiling a schema document: malformed JSON,
// a keyword value its parser rejects, a duplicate $id, or an unsupported
// draft. A keyword that the selected draft does not define is skipped, not
// rejected.
type ParseError struct {
	Path    string // JSON Pointer into the schema document.
	Code    string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Path, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// ParseErrors collects multiple ParseError values into one error. Compile
// itself returns a single *ParseError.
type ParseErrors []*ParseError

func (es ParseErrors) Error() string {
	if len(es) == 0 {
		return ""
	}
	const maxShown = 3
	var b strings.Builder
	lim := len(es)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(es[i].Error())
	}
	if len(es) > lim {
		fmt.Fprintf(&b, "; ... (total %d)", len(es))
	}
	return b.String()
}

// Issue codes for validation-time failures, carried on a Node rather than
// returned as a Go error (a failing instance is not itself an application
// error). Defined in schema (re-exported here) since that is where keyword
// evaluation attaches them to a Result/Node.
const (
	IssueInvalidType         = schema.IssueInvalidType
	IssueRequired            = schema.IssueRequired
	IssueAdditionalProperty  = schema.IssueAdditionalProperty
	IssueUnevaluatedProperty = schema.IssueUnevaluatedProperty
	IssueUnevaluatedItem     = schema.IssueUnevaluatedItem
	IssueTooFewItems         = schema.IssueTooFewItems
	IssueTooManyItems        = schema.IssueTooManyItems
	IssueTooShort            = schema.IssueTooShort
	IssueTooLong             = schema.IssueTooLong
	IssueMinimum             = schema.IssueMinimum
	IssueMaximum             = schema.IssueMaximum
	IssueMultipleOf          = schema.IssueMultipleOf
	IssuePattern             = schema.IssuePattern
	IssueFormat              = schema.IssueFormat
	IssueEnum                = schema.IssueEnum
	IssueConst               = schema.IssueConst
	IssueNot                 = schema.IssueNot
	IssueUniqueItems         = schema.IssueUniqueItems
	IssueContains            = schema.IssueContains
	IssuePropertyNames       = schema.IssuePropertyNames
	IssueDependentRequired   = schema.IssueDependentRequired
	IssueOneOf               = schema.IssueOneOf
	IssueAnyOf               = schema.IssueAnyOf
	IssueAllOf               = schema.IssueAllOf
	IssueTooFewProperties    = schema.IssueTooFewProperties
	IssueTooManyProperties   = schema.IssueTooManyProperties
)
