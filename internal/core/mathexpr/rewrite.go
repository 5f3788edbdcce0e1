package mathexpr

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"mathgate/internal/core/rulepack"
)

var (
	// non-nested bar pairs only; nested or unbalanced bars pass through
	absBarRe = regexp.MustCompile(`\|([^|]+)\|`)

	// explicit degree marker wins regardless of angle mode
	degCallRe = regexp.MustCompile(`\b(sin|cos|tan)\s*\(\s*([0-9]+(?:\.[0-9]+)?)\s*(?:°|درجة|degrees?)\s*\)`)
	degBareRe = regexp.MustCompile(`\b(sin|cos|tan)\s+([0-9]+(?:\.[0-9]+)?)\s*(?:°|درجة|degrees?)`)

	// bare numeric trig argument; anything non-numeric (including an arg
	// already carrying pi/180) falls outside the match, so ambient-mode
	// conversion can never double-convert
	ambientRe = regexp.MustCompile(`\b(sin|cos|tan)\s*\(\s*([0-9]+(?:\.[0-9]+)?)\s*\)`)

	// function name, whitespace, bare identifier or number, no parens
	bareAppRe = regexp.MustCompile(`\b(sin|cos|tan|sqrt|log|ln|Abs)\s+([A-Za-z][A-Za-z0-9_]*|[0-9]+(?:\.[0-9]+)?)`)

	// known call heads are guarded so implicit multiplication never splits
	// them from their opening paren
	fnCallRe = regexp.MustCompile(`\b(sin|cos|tan|sqrt|log|ln|exp|Abs)\(`)

	digitLetterRe = regexp.MustCompile(`([0-9])([A-Za-z])`)
	letterParenRe = regexp.MustCompile(`([A-Za-z0-9_])\(`)
	closeParenRe  = regexp.MustCompile(`\)([A-Za-z0-9(])`)
)

// guard sits between a guarded function name and its paren during the
// implicit multiplication pass; stripped before returning
const guard = "\x00"

// Rewriter expands vocabulary, degree-annotated trig, absolute-value bars
// and implicit multiplication into explicit operator form
type Rewriter struct {
	rules []rulepack.Rule
}

// NewRewriter builds a Rewriter over the pack's ordered vocabulary
func NewRewriter(p *rulepack.Pack) *Rewriter {
	return &Rewriter{rules: p.Vocabulary}
}

// Rewrite applies the rewrite rules in their fixed order. It never errors;
// constructs it cannot disambiguate pass through untouched
func (rw *Rewriter) Rewrite(s string, mode AngleMode) string {
	if s == "" {
		return ""
	}

	// 1 absolute value bars
	s = absBarRe.ReplaceAllString(s, "Abs($1)")

	// 2 vocabulary, longest phrase first; runs before the degree and
	// application steps so Arabic phrasing resolves to the ASCII forms
	// those steps match
	s = rw.applyVocabulary(s)

	// 3 explicit degree markers
	s = degCallRe.ReplaceAllString(s, "$1($2*pi/180)")
	s = degBareRe.ReplaceAllString(s, "$1($2*pi/180)")

	// 4 bare function application
	s = bareAppRe.ReplaceAllString(s, "$1($2)")

	// 5 ambient degree mode for bare numeric trig args; runs after bare
	// application so sin 60 and sin(60) convert identically and the
	// output is stable under a second pass
	if mode == AngleDegrees {
		s = ambientRe.ReplaceAllString(s, "$1($2*pi/180)")
	}

	// 6 implicit multiplication: digit-letter, letter-paren,
	// close-paren-alnum, one pass each, in that order
	s = fnCallRe.ReplaceAllString(s, "$1"+guard+"(")
	s = digitLetterRe.ReplaceAllString(s, "$1*$2")
	s = letterParenRe.ReplaceAllString(s, "$1*(")
	s = closeParenRe.ReplaceAllString(s, ")*$1")
	s = strings.ReplaceAll(s, guard, "")

	// 7 canonical exponent token
	s = strings.ReplaceAll(s, "^", "**")

	return s
}

func (rw *Rewriter) applyVocabulary(s string) string {
	for _, r := range rw.rules {
		s = replacePhrase(s, r.Match, r.Replace)
	}
	return s
}

// replacePhrase swaps whole-token occurrences of phrase; a token boundary is
// any rune that is not an Arabic letter, so a phrase never matches inside a
// longer Arabic word
func replacePhrase(s, phrase, repl string) string {
	if !strings.Contains(s, phrase) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		j := strings.Index(s[i:], phrase)
		if j < 0 {
			b.WriteString(s[i:])
			break
		}
		j += i
		end := j + len(phrase)
		if boundaryBefore(s, j) && boundaryAfter(s, end) {
			b.WriteString(s[i:j])
			b.WriteString(repl)
			i = end
			continue
		}
		// partial match inside a longer word; emit one rune and rescan
		_, w := utf8.DecodeRuneInString(s[j:])
		b.WriteString(s[i : j+w])
		i = j + w
	}
	return b.String()
}

func boundaryBefore(s string, idx int) bool {
	if idx == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:idx])
	return !isArabicLetter(r)
}

func boundaryAfter(s string, idx int) bool {
	if idx >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[idx:])
	return !isArabicLetter(r)
}

func isArabicLetter(r rune) bool {
	return unicode.IsLetter(r) && unicode.Is(unicode.Arabic, r)
}
