// Package jsonschema validates JSON instances against JSON Schema documents
// (Draft 6, Draft 7, 2019-09, and 2020-12), producing a structured result
// tree rather than a single pass/fail bool.
//
// A schema document is compiled once via Compile or CompileBytes, then
// applied to any number of instances via Schema.Validate.
package jsonschema
