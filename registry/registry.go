// Package registry resolves $ref URIs to compiled schemas. It implements
// the schema.RefResolver interface, so registry imports schema while schema
// never needs to import registry.
package registry

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/schemacore/jsonschema/pointer"
	"github.com/schemacore/jsonschema/schema"
	"github.com/schemacore/jsonschema/value"
)

// Registry stores compiled schemas keyed by absolute base URI, and the raw
// decoded documents needed to resolve JSON-pointer fragments ($ref targets
// like "#/$defs/positiveInt") on demand.
type Registry struct {
	draft schema.Draft

	roots   map[string]*schema.Schema
	docs    map[string]value.Node
	anchors map[string]*schema.Schema

	// resolveCache memoizes Resolve by an xxhash digest of the absolute
	// ref string, avoiding repeat pointer-walks/compiles for a $ref that
	// recurs across many instance validations.
	resolveCache map[uint64]*schema.Schema
}

// New creates an empty Registry for the given draft.
func New(d schema.Draft) *Registry {
	return &Registry{
		draft:        d,
		roots:        map[string]*schema.Schema{},
		docs:         map[string]value.Node{},
		anchors:      map[string]*schema.Schema{},
		resolveCache: map[uint64]*schema.Schema{},
	}
}

// Register compiles doc as the schema resource identified by uri, and
// recursively registers every nested $id/$anchor found within it so later
// $refs into those sub-resources resolve without re-walking the document.
func (r *Registry) Register(uri string, doc value.Node) (*schema.Schema, error) {
	if dup, ok := findDuplicateID(doc); ok {
		return nil, &registryError{code: schema.CodeDuplicateID, msg: fmt.Sprintf("duplicate $id %q", dup)}
	}
	compiled, err := schema.Compile(doc, uri, r.draft)
	if err != nil {
		return nil, err
	}
	r.roots[uri] = compiled
	r.docs[uri] = doc
	r.indexAnchors(uri, doc)
	return compiled, nil
}

// registryError lets a registry-level failure carry a Code through
// compile.wrapCompileErr the same way schema's compileError does, without
// registry needing to import the jsonschema root package.
type registryError struct{ code, msg string }

func (e *registryError) Error() string { return e.msg }
func (e *registryError) Path() string  { return "" }
func (e *registryError) Code() string  { return e.code }

// findDuplicateID walks doc looking for two nested schema objects declaring
// the same $id. A document legitimately declaring the same $id twice would
// make any $ref into it ambiguous, so this is rejected at registration
// rather than left to resolve unpredictably to whichever compiled first.
func findDuplicateID(doc value.Node) (string, bool) {
	seen := map[string]bool{}
	var walk func(n value.Node) (string, bool)
	walk = func(n value.Node) (string, bool) {
		switch {
		case n.IsObject():
			if idNode, ok := n.Get("$id"); ok {
				if id, err := idNode.AsString(); err == nil && id != "" {
					if seen[id] {
						return id, true
					}
					seen[id] = true
				}
			}
			keys, _ := n.Keys()
			for _, k := range keys {
				child, _ := n.Get(k)
				if dup, found := walk(child); found {
					return dup, true
				}
			}
		case n.IsArray():
			items, _ := n.Items()
			for _, it := range items {
				if dup, found := walk(it); found {
					return dup, true
				}
			}
		}
		return "", false
	}
	return walk(doc)
}

// indexAnchors walks doc registering every nested $id (as a root under its
// resolved URI) and every nested $anchor (under the URI of its enclosing
// $id resource) so refs to them resolve without a pointer walk. A nested
// schema that fails to compile is not registered; a $ref to it then fails
// to resolve.
func (r *Registry) indexAnchors(baseURI string, doc value.Node) {
	if !doc.IsObject() {
		return
	}
	if idNode, ok := doc.Get("$id"); ok {
		if id, err := idNode.AsString(); err == nil && id != "" {
			abs, _ := splitFragment(resolveRef(baseURI, id))
			if _, exists := r.roots[abs]; !exists {
				if compiled, err := schema.Compile(doc, abs, r.draft); err == nil {
					r.roots[abs] = compiled
					r.docs[abs] = doc
				}
			}
			baseURI = abs
		}
	}
	if a, ok := doc.Get("$anchor"); ok {
		if name, err := a.AsString(); err == nil {
			if compiled, err := schema.Compile(doc, baseURI, r.draft); err == nil {
				r.anchors[baseURI+"#"+name] = compiled
			}
		}
	}
	keys, _ := doc.Keys()
	for _, k := range keys {
		child, _ := doc.Get(k)
		r.walkForAnchors(baseURI, child)
	}
}

func (r *Registry) walkForAnchors(baseURI string, n value.Node) {
	switch n.Kind() {
	case value.KindObject:
		r.indexAnchors(baseURI, n)
	case value.KindArray:
		items, _ := n.Items()
		for _, it := range items {
			r.walkForAnchors(baseURI, it)
		}
	}
}

// Resolve implements schema.RefResolver.
func (r *Registry) Resolve(ref, base string) (*schema.Schema, error) {
	abs := resolveRef(base, ref)
	key := xxhash.Sum64String(abs)
	if cached, ok := r.resolveCache[key]; ok {
		return cached, nil
	}

	baseURI, fragment := splitFragment(abs)

	var resolved *schema.Schema
	var err error
	switch {
	case fragment == "" || fragment == "/":
		resolved, err = r.resolveRoot(baseURI)
	case strings.HasPrefix(fragment, "/"):
		resolved, err = r.resolvePointer(baseURI, fragment)
	default:
		resolved, err = r.resolveAnchor(baseURI, fragment)
	}
	if err != nil {
		return nil, err
	}
	r.resolveCache[key] = resolved
	return resolved, nil
}

func (r *Registry) resolveRoot(baseURI string) (*schema.Schema, error) {
	if s, ok := r.roots[baseURI]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("no schema registered for %q", baseURI)
}

func (r *Registry) resolveAnchor(baseURI, anchor string) (*schema.Schema, error) {
	if s, ok := r.anchors[baseURI+"#"+anchor]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("no anchor %q registered under %q", anchor, baseURI)
}

func (r *Registry) resolvePointer(baseURI, fragment string) (*schema.Schema, error) {
	doc, ok := r.docs[baseURI]
	if !ok {
		return nil, fmt.Errorf("no schema document registered for %q", baseURI)
	}
	target, err := navigate(doc, pointer.Parse(fragment))
	if err != nil {
		return nil, err
	}
	return schema.Compile(target, baseURI, r.draft)
}

func navigate(doc value.Node, p pointer.Pointer) (value.Node, error) {
	cur := doc
	for _, tok := range p.Tokens() {
		switch {
		case cur.IsObject():
			v, ok := cur.Get(tok)
			if !ok {
				return value.Node{}, fmt.Errorf("json pointer segment %q not found", tok)
			}
			cur = v
		case cur.IsArray():
			idx, err := strconv.Atoi(tok)
			if err != nil {
				return value.Node{}, fmt.Errorf("json pointer segment %q is not a valid array index", tok)
			}
			items, _ := cur.Items()
			if idx < 0 || idx >= len(items) {
				return value.Node{}, fmt.Errorf("json pointer index %d out of range", idx)
			}
			cur = items[idx]
		default:
			return value.Node{}, fmt.Errorf("json pointer segment %q has nothing to index into", tok)
		}
	}
	return cur, nil
}

func splitFragment(abs string) (base, fragment string) {
	if i := strings.IndexByte(abs, '#'); i >= 0 {
		return abs[:i], abs[i+1:]
	}
	return abs, ""
}

func resolveRef(base, ref string) string {
	if base == "" {
		return ref
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	rp, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(rp).String()
}
