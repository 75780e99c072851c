package schema

import "net/url"

// resolveURI resolves ref against base per RFC 3986, returning ref
// unchanged if either fails to parse (best-effort, matching how schema
// documents in the wild are not always strictly conformant URIs).
func resolveURI(base, ref string) string {
	if base == "" {
		return ref
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}
