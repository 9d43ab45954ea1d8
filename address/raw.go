package address

import "strings"

// separator delimits parts within an address's internal representation.
// Chosen from the C0 control range so that ordinary contribution-graph
// identifiers (usernames, repo slugs, commit shas, ...) never collide with it
// in practice; parts that do contain it are escaped regardless.
const separator byte = 0x1f

// escapeByte marks an escaped separator or escapeByte occurrence within a
// part, so that decomposition can tell a literal separator-shaped byte
// apart from a real part boundary.
const escapeByte byte = 0x1e

// escapePart rewrites p so that it contains no unescaped separator or
// escapeByte bytes, prefixing each occurrence of either with escapeByte.
func escapePart(p string) string {
	if strings.IndexByte(p, separator) < 0 && strings.IndexByte(p, escapeByte) < 0 {
		return p // fast path: nothing to escape
	}
	var b strings.Builder
	b.Grow(len(p) + 4)
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c == separator || c == escapeByte {
			b.WriteByte(escapeByte)
		}
		b.WriteByte(c)
	}
	return b.String()
}

// joinParts builds the internal representation for a part sequence: each
// part is prefixed with a separator byte, so the number of leading
// separators always equals the number of parts and the zero-part (root)
// address is uniquely the empty string — even a sequence containing a
// single empty-string part is distinguishable from the root.
func joinParts(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteByte(separator)
		b.WriteString(escapePart(p))
	}
	return b.String()
}

// splitParts decomposes an internal representation back into its original
// parts, reversing escapePart/joinParts. It never uses strings.Split on the
// raw separator, since an escaped separator inside a part must not be
// treated as a boundary.
func splitParts(raw string) []string {
	if raw == "" {
		return nil
	}
	var parts []string
	var cur strings.Builder
	started := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == escapeByte && i+1 < len(raw):
			cur.WriteByte(raw[i+1])
			i++
		case c == separator:
			if started {
				parts = append(parts, cur.String())
				cur.Reset()
			}
			started = true
		default:
			cur.WriteByte(c)
		}
	}
	parts = append(parts, cur.String())
	return parts
}

// hasRawPrefix reports whether raw begins with prefixRaw at a part boundary:
// either prefixRaw is the whole of raw, or the byte immediately following it
// in raw is a separator. This prevents a prefix like "ab" from matching "abc"
// when "abc" was really a single, longer part.
func hasRawPrefix(raw, prefixRaw string) bool {
	if prefixRaw == "" {
		return true // the empty (root) address prefixes everything
	}
	if !strings.HasPrefix(raw, prefixRaw) {
		return false
	}
	if len(raw) == len(prefixRaw) {
		return true
	}
	return raw[len(prefixRaw)] == separator
}
