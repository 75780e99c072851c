// Package schema is the validation engine: the compiled Schema model, the
// keyword registry and dispatch table, the evaluation Context (including
// $ref resolution), and every keyword's Evaluate implementation. It merges
// what would otherwise be several tightly-coupled packages (compiler,
// schema model, validation context, keyword implementations, driver) into
// one, the way santhosh-tekuri/jsonschema's compiler+schema+validate design
// does, to avoid a Context<->Schema<->Registry import cycle.
package schema
