package transformations

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// Kind tells how a Rule produces its replacement.
type Kind int

const (
	// KindTemplate replaces matches with a literal template ($1, $2, ...).
	KindTemplate Kind = iota
	// KindFunc replaces matches with the output of a ReplaceFunc.
	KindFunc
)

// String names the kind for listings.
func (k Kind) String() string {
	switch k {
	case KindTemplate:
		return "template"
	case KindFunc:
		return "func"
	default:
		return "unknown"
	}
}

// ReplaceFunc computes the replacement for one match. groups[0] is the whole
// match, groups[i] the i-th capture ("" when the group did not take part).
type ReplaceFunc func(groups []string) string

// Rule is one substitution step: a matcher plus either a template or a
// function. Rules are immutable once built.
type Rule struct {
	name     string
	pattern  string
	kind     Kind
	template string
	fn       ReplaceFunc
	re       *regexp2.Regexp
}

// Template builds a rule replacing every match of pattern with template.
// It panics if pattern does not compile, like regexp.MustCompile.
func Template(name, pattern, template string) Rule {
	return Rule{
		name:     name,
		pattern:  pattern,
		kind:     KindTemplate,
		template: template,
		re:       regexp2.MustCompile(pattern, regexp2.None),
	}
}

// Func builds a rule replacing every match of pattern with fn's result.
func Func(name, pattern string, fn ReplaceFunc) Rule {
	return Rule{
		name:    name,
		pattern: pattern,
		kind:    KindFunc,
		fn:      fn,
		re:      regexp2.MustCompile(pattern, regexp2.None),
	}
}

// Name identifies the rule in listings and logs.
func (r Rule) Name() string { return r.name }

// Pattern is the regexp2 source the rule was built from.
func (r Rule) Pattern() string { return r.pattern }

// Kind tells whether the rule uses a template or a ReplaceFunc.
func (r Rule) Kind() Kind { return r.kind }

// Apply replaces every non-overlapping match in text, left to right.
// regexp2 matches on runes; replacements are spliced into the original
// bytes, so bytes outside a match (invalid UTF-8 included) are kept as they
// are. A matcher error (only possible on a match timeout) leaves text
// unchanged.
func (r Rule) Apply(text string) string {
	if r.re == nil {
		return text
	}

	m, err := r.re.FindStringMatch(text)
	if err != nil || m == nil {
		return text
	}

	offsets := runeOffsets(text)
	var (
		sb   strings.Builder
		last int
	)
	for m != nil {
		groups := submatches(text, offsets, m)
		start := offsets[m.Index]
		sb.WriteString(text[last:start])
		if r.kind == KindFunc {
			sb.WriteString(r.fn(groups))
		} else {
			sb.WriteString(expand(r.template, groups))
		}
		last = offsets[m.Index+m.Length]

		m, err = r.re.FindNextMatch(m)
		if err != nil {
			return text
		}
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// runeOffsets maps every rune index of text, as regexp2 counts them, to its
// byte offset. An invalid byte counts as one rune. The extra last entry is
// len(text).
func runeOffsets(text string) []int {
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	return append(offsets, len(text))
}

// submatches returns the whole match followed by its numbered groups, cut
// from the original text. A group that did not take part is "".
func submatches(text string, offsets []int, m *regexp2.Match) []string {
	groups := m.Groups()
	out := make([]string, len(groups))
	for i := range groups {
		if len(groups[i].Captures) == 0 {
			continue
		}
		g := groups[i]
		out[i] = text[offsets[g.Index]:offsets[g.Index+g.Length]]
	}
	return out
}

// expand fills a replacement template: $N and ${N} insert group N, $$ a
// literal $. Anything else is copied as is.
func expand(template string, groups []string) string {
	if !strings.Contains(template, "$") {
		return template
	}

	var sb strings.Builder
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '$' || i+1 == len(template) {
			sb.WriteByte(c)
			continue
		}

		rest := template[i+1:]
		switch {
		case rest[0] == '$':
			sb.WriteByte('$')
			i++
		case rest[0] == '{':
			end := strings.IndexByte(rest, '}')
			n, err := strconv.Atoi(rest[1:max(end, 1)])
			if end < 0 || err != nil || n >= len(groups) {
				sb.WriteByte(c)
				continue
			}
			sb.WriteString(groups[n])
			i += end + 1
		case rest[0] >= '0' && rest[0] <= '9':
			j := 0
			for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
				j++
			}
			n, _ := strconv.Atoi(rest[:j])
			if n >= len(groups) {
				sb.WriteByte(c)
				continue
			}
			sb.WriteString(groups[n])
			i += j
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
