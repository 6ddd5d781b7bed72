package signature

import (
	"regexp"
	"strings"
)

var (
	blankLineRun = regexp.MustCompile(`\n{3,}`)
	// A quoted argument that removal left holding only whitespace, e.g. the
	// gap between a message and a trailer that is now gone.
	emptyQuoteGap = regexp.MustCompile(`"\s*\n+\s*"`)
	heredocStart  = regexp.MustCompile(`<<-?\s*['"]?([A-Za-z_][A-Za-z0-9_]*)['"]?`)
)

const defaultHeredocTerminator = "EOF"

// Result is the outcome of one normalization.
type Result struct {
	Original string
	Cleaned  string
	Changed  bool
}

// Normalizer removes signatures matched by a PatternSet.
type Normalizer struct {
	patterns *PatternSet
}

// NewNormalizer creates a Normalizer over patterns.
func NewNormalizer(patterns *PatternSet) *Normalizer {
	return &Normalizer{
		patterns: patterns,
	}
}

// Normalize removes every signature match and, if anything was removed,
// collapses runs of blank lines. Text without a match is returned unchanged.
func (n *Normalizer) Normalize(text string) Result {
	cleaned := text
	matched := false
	for _, p := range n.patterns.patterns {
		var ok bool
		cleaned, ok = p.Remove(cleaned)
		matched = matched || ok
	}

	if !matched {
		return Result{Original: text, Cleaned: text, Changed: false}
	}

	cleaned = CollapseBlankLines(cleaned)
	return Result{
		Original: text,
		Cleaned:  cleaned,
		Changed:  cleaned != text,
	}
}

// NormalizeMessage normalizes a standalone commit message and trims the
// result. Changed compares against the trimmed original.
func (n *Normalizer) NormalizeMessage(message string) Result {
	result := n.Normalize(message)
	result.Cleaned = strings.TrimSpace(result.Cleaned)
	result.Changed = result.Cleaned != strings.TrimSpace(message)
	return result
}

// NormalizeCommand normalizes a shell command that embeds a commit message.
// Leading and trailing whitespace of the command is preserved.
func (n *Normalizer) NormalizeCommand(command string) Result {
	result := n.Normalize(command)
	if !result.Changed {
		return result
	}

	cleaned := CollapseEmptyQuotes(result.Cleaned)
	cleaned = CollapseBeforeHeredocTerminators(cleaned)
	result.Cleaned = cleaned
	result.Changed = cleaned != command
	return result
}

// CollapseBlankLines replaces every run of three or more newlines with two.
func CollapseBlankLines(text string) string {
	return blankLineRun.ReplaceAllLiteralString(text, "\n\n")
}

// CollapseEmptyQuotes joins a closing and an opening double quote separated
// only by whitespace that spans at least one newline.
func CollapseEmptyQuotes(command string) string {
	return emptyQuoteGap.ReplaceAllLiteralString(command, `"`)
}

// CollapseBeforeHeredocTerminators removes blank lines directly above each
// heredoc terminator used in command. A terminator is a line holding nothing
// but the delimiter. A declaration counts only when such a line follows it;
// EOF is assumed when no declaration does.
func CollapseBeforeHeredocTerminators(command string) string {
	for _, term := range heredocTerminators(command) {
		command = terminatorLine(term, `\n+`).ReplaceAllLiteralString(command, "\n"+term)
	}
	return command
}

// terminatorLine matches lead followed by a line that is exactly term.
func terminatorLine(term, lead string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)` + lead + regexp.QuoteMeta(term) + `$`)
}

func heredocTerminators(command string) []string {
	seen := make(map[string]bool)
	var terms []string
	for _, m := range heredocStart.FindAllStringSubmatchIndex(command, -1) {
		term := command[m[2]:m[3]]
		if seen[term] {
			continue
		}
		if !terminatorLine(term, `\n`).MatchString(command[m[1]:]) {
			continue
		}
		seen[term] = true
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		return []string{defaultHeredocTerminator}
	}
	return terms
}
