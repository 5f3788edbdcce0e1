// Package rulepack loads the embedded rules.json holding the Arabic math
// vocabulary and the problem-kind keyword sets.
// Vocabulary entries are data, not behavior: the rewriter applies them in the
// order the pack exposes them (longest phrase first)
package rulepack

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	_ "embed"
)

//go:embed rules.json
var embedded []byte

// Kind classifies what the solver should do with an expression
type Kind string

// Problem kinds forwarded as the solver request mode
const (
	KindEvaluate   Kind = "evaluate"
	KindDerivative Kind = "derivative"
	KindIntegral   Kind = "integral"
	KindSolve      Kind = "solve"
)

// Rule is a single vocabulary substitution
// Priority is the phrase length in runes; higher runs first
type Rule struct {
	Match    string
	Replace  string
	Priority int
}

type rawRule struct {
	Match   string `json:"match"`
	Replace string `json:"replace"`
}

type rawPack struct {
	Version    int                 `json:"version"`
	Meta       map[string]any      `json:"meta"`
	Vocabulary []rawRule           `json:"vocabulary"`
	Kinds      map[string][]string `json:"kinds"`
}

// Pack is the loaded, validated rule pack
type Pack struct {
	Version int
	Meta    map[string]any

	// Vocabulary is ordered longest-match-first
	Vocabulary []Rule

	// keyword sets for DetectKind, lowercased
	derivative []string
	integral   []string
	solve      []string
}

// Load parses and validates the embedded rules.json
func Load() (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("rulepack: parse rules.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("rulepack: unsupported rules.json version %d (want 1)", rp.Version)
	}

	p := &Pack{
		Version: rp.Version,
		Meta:    rp.Meta,
	}

	seen := make(map[string]struct{}, len(rp.Vocabulary))
	for _, r := range rp.Vocabulary {
		match := strings.TrimSpace(r.Match)
		if match == "" {
			return nil, fmt.Errorf("rulepack: vocabulary entry with empty match")
		}
		if r.Replace == "" {
			return nil, fmt.Errorf("rulepack: vocabulary entry %q with empty replacement", match)
		}
		if _, dup := seen[match]; dup {
			return nil, fmt.Errorf("rulepack: duplicate vocabulary entry %q", match)
		}
		seen[match] = struct{}{}
		p.Vocabulary = append(p.Vocabulary, Rule{
			Match:    match,
			Replace:  r.Replace,
			Priority: utf8.RuneCountInString(match),
		})
	}

	// longest first so multi-word phrases are never fragmented by their
	// sub-phrases; ties break on the phrase itself for determinism
	sort.SliceStable(p.Vocabulary, func(i, j int) bool {
		if p.Vocabulary[i].Priority != p.Vocabulary[j].Priority {
			return p.Vocabulary[i].Priority > p.Vocabulary[j].Priority
		}
		return p.Vocabulary[i].Match < p.Vocabulary[j].Match
	})

	p.derivative = lowered(rp.Kinds["derivative"])
	p.integral = lowered(rp.Kinds["integral"])
	p.solve = lowered(rp.Kinds["solve"])
	if len(p.derivative) == 0 || len(p.integral) == 0 || len(p.solve) == 0 {
		return nil, fmt.Errorf("rulepack: kinds must define derivative, integral and solve keywords")
	}

	return p, nil
}

// MustLoad panics on a broken embedded pack; for wiring paths where a bad
// pack is a build defect, not a runtime condition
func MustLoad() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

// DetectKind inspects raw (or canonical) text and picks the problem kind.
// Checks run derivative, integral, solve, in that order; anything else
// evaluates
func (p *Pack) DetectKind(text string) Kind {
	t := strings.ToLower(text)
	if containsAny(t, p.derivative) {
		return KindDerivative
	}
	if containsAny(t, p.integral) {
		return KindIntegral
	}
	if containsAny(t, p.solve) {
		return KindSolve
	}
	return KindEvaluate
}

func containsAny(s string, kws []string) bool {
	for _, kw := range kws {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func lowered(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
