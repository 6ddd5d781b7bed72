// Package signature strips automated co-authorship signatures from commit
// messages and from shell commands that embed a commit message.
package signature

import (
	"fmt"
	"regexp"
	"strings"
)

// Identity names the automation whose signatures are removed.
type Identity struct {
	// DisplayName is the agent's display name, e.g. "Claude".
	DisplayName string
	// Domain is the organization's domain token, e.g. "anthropic".
	Domain string
	// Emoji is the glyph that opens a generated-with line.
	Emoji string
}

// DefaultIdentity returns the identity removed when nothing is configured.
func DefaultIdentity() Identity {
	return Identity{
		DisplayName: "Claude",
		Domain:      "anthropic",
		Emoji:       "🤖",
	}
}

// Scope selects how far a match may extend on its line.
type Scope int

const (
	// ScopeMessage matches up to the end of the line. Used on standalone
	// commit messages.
	ScopeMessage Scope = iota
	// ScopeCommand also ends a match at the quote that closes the shell
	// argument holding the message, so the quote and anything after it stay.
	ScopeCommand
)

// Pattern is one removal pass.
type Pattern struct {
	Name  string
	re    *regexp.Regexp
	scope Scope
}

// Remove deletes every match of the pattern and reports whether anything matched.
func (p Pattern) Remove(text string) (string, bool) {
	locs := p.re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text, false
	}

	var b strings.Builder
	last := 0
	removed := false
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if p.scope == ScopeCommand {
			end = start + argumentEnd(text[start:end])
			if !p.re.MatchString(text[start:end]) {
				continue
			}
		}
		b.WriteString(text[last:start])
		last = end
		removed = true
	}
	if !removed {
		return text, false
	}
	b.WriteString(text[last:])
	return b.String(), true
}

// argumentEnd returns the offset of the first quote in segment that closes
// the enclosing shell argument, or len(segment). A quote closes the argument
// when it is unescaped, not part of a pair opened inside segment, and
// followed by the end of the line or a shell separator.
func argumentEnd(segment string) int {
	var open [2]bool
	for i := 0; i < len(segment); i++ {
		var q int
		switch segment[i] {
		case '"':
			q = 0
		case '\'':
			q = 1
		default:
			continue
		}
		if i > 0 && segment[i-1] == '\\' {
			continue
		}
		if open[q] {
			open[q] = false
			continue
		}
		if i+1 == len(segment) || strings.IndexByte(" \t);&|", segment[i+1]) >= 0 {
			return i
		}
		open[q] = true
	}
	return len(segment)
}

// PatternSet is the ordered list of signature patterns for one identity.
type PatternSet struct {
	patterns []Pattern
}

// NewPatternSet builds the signature patterns for identity in the given scope.
func NewPatternSet(identity Identity, scope Scope) (*PatternSet, error) {
	if identity.DisplayName == "" {
		return nil, fmt.Errorf("identity display name cannot be empty")
	}
	if identity.Domain == "" {
		return nil, fmt.Errorf("identity domain cannot be empty")
	}
	if identity.Emoji == "" {
		return nil, fmt.Errorf("identity emoji cannot be empty")
	}

	rest := `[^\n]*`

	// Each expression swallows the newlines that precede the signature line
	// so a trailing trailer block leaves no blank line behind.
	defs := []struct {
		name   string
		prefix string
		token  string
	}{
		{name: "co-authored-by-name", prefix: `Co-Authored-By:`, token: identity.DisplayName},
		{name: "co-authored-by-domain", prefix: `Co-Authored-By:`, token: identity.Domain},
		{name: "emoji-signature", prefix: regexp.QuoteMeta(identity.Emoji), token: identity.DisplayName},
	}

	set := &PatternSet{patterns: make([]Pattern, 0, len(defs))}
	for _, s := range defs {
		expr := `(?i)\n*` + s.prefix + rest + regexp.QuoteMeta(s.token) + rest
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %s: %w", s.name, err)
		}
		set.patterns = append(set.patterns, Pattern{Name: s.name, re: re, scope: scope})
	}

	return set, nil
}

// MustPatternSet is like NewPatternSet but panics on error.
func MustPatternSet(identity Identity, scope Scope) *PatternSet {
	set, err := NewPatternSet(identity, scope)
	if err != nil {
		panic(err)
	}
	return set
}
