package schema

// Issue codes identify why a keyword failed validation, for i18n.T and for
// callers that want to switch on failure kind rather than parse prose.
// These live here (rather than in the jsonschema root package, where they
// are re-exported) because keyword Evaluate methods live in this package
// and schema cannot import jsonschema without an import cycle.
const (
	IssueInvalidType         = "invalid_type"
	IssueRequired            = "required"
	IssueAdditionalProperty  = "additional_property"
	IssueUnevaluatedProperty = "unevaluated_property"
	IssueUnevaluatedItem     = "unevaluated_item"
	IssueTooFewItems         = "too_few_items"
	IssueTooManyItems        = "too_many_items"
	IssueTooShort            = "too_short"
	IssueTooLong             = "too_long"
	IssueMinimum             = "minimum"
	IssueMaximum             = "maximum"
	IssueMultipleOf          = "multiple_of"
	IssuePattern             = "pattern"
	IssueFormat              = "format"
	IssueEnum                = "enum"
	IssueConst               = "const"
	IssueNot                 = "not"
	IssueUniqueItems         = "unique_items"
	IssueContains            = "contains"
	IssuePropertyNames       = "property_names"
	IssueDependentRequired   = "dependent_required"
	IssueOneOf               = "one_of"
	IssueAnyOf               = "any_of"
	IssueAllOf               = "all_of"
	IssueTooFewProperties    = "too_few_properties"
	IssueTooManyProperties   = "too_many_properties"

	// CodeUnresolvedRef and CodeDuplicateID are shared with the jsonschema
	// root package's compile-time ParseError codes; the value is the same
	// whether the failure surfaces during compilation (a registry-level
	// $id conflict) or during evaluation (a $ref that fails to resolve).
	CodeUnresolvedRef = "unresolved_ref"
	CodeDuplicateID   = "duplicate_id"
)
