// Package vocab lets a caller register keyword implementations for a custom
// (vendor) vocabulary, layered on top of schema.RegisterPredicateKeyword the
// way the teacher layers SetJSONDriver/SetTranslator on top of a
// package-level, mutex-guarded singleton: a caller swaps in behavior
// without recompiling the validator itself.
package vocab

import (
	"sync"

	"github.com/schemacore/jsonschema/schema"
	"github.com/schemacore/jsonschema/value"
)

var (
	mu         sync.RWMutex
	registered = map[string]bool{}
)

// Predicate is a custom keyword expressed as a single boolean check over a
// schema member and the instance value it applies to.
type Predicate func(member, inst value.Node) (bool, string)

// RegisterPredicate installs a custom keyword under name that fails with the
// message the Predicate returns whenever it reports false.
func RegisterPredicate(name string, check Predicate) {
	mu.Lock()
	registered[name] = true
	mu.Unlock()

	schema.RegisterPredicateKeyword(name, schema.PredicateCheck(check))
}

// Registered reports whether name has been installed via RegisterPredicate.
func Registered(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	return registered[name]
}
