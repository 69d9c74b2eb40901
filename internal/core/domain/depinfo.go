package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ParseDepInfo extracts the dependency list from the text of a
// compiler-emitted .d file. The format is a make rule: everything before the
// first colon is the rule target and is discarded; the remainder is a
// whitespace-separated path list where spaces inside paths are escaped with a
// backslash.
//
// The requesting asset's own path is excluded from the result so the host's
// rebuild graph never gains a self-referential edge. A file with no colon or
// with nothing after the colon is malformed: silently returning an empty list
// would leave the host with stale incremental rebuilds.
func ParseDepInfo(content, selfPath string) ([]string, error) {
	idx := strings.IndexByte(content, ':')
	if idx < 0 {
		return nil, zerr.Wrap(ErrDependencyParse, "no rule separator found")
	}

	tokens := splitDepPaths(content[idx+1:])
	if len(tokens) == 0 {
		return nil, zerr.Wrap(ErrDependencyParse, "rule lists no dependencies")
	}

	deps := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == selfPath {
			continue
		}
		deps = append(deps, tok)
	}
	return deps, nil
}

// splitDepPaths splits a make-rule dependency list on unescaped whitespace,
// unescaping "\ " sequences into literal spaces.
func splitDepPaths(s string) []string {
	var paths []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			paths = append(paths, cur.String())
			cur.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && s[i+1] == ' ':
			cur.WriteByte(' ')
			i++
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	flush()

	return paths
}
