package classify

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// Keyword scanning runs the Aho-Corasick prefilter only on inputs large
// enough for it to pay off, mirroring the cutover used for search terms in
// large-tree scans.
const ahoMinContentBytes = 4 * 1024

type keywordTerm struct {
	category Category
	keyword  string
	wordRe   *regexp.Regexp
}

// Classifier detects sensitive-content categories in plain text. Rules are
// data: a keyword table and a pattern table, both fixed at construction, so
// classification is deterministic and safe for concurrent use.
type Classifier struct {
	terms []keywordTerm
	// The matcher dictionary is deduplicated: keywords like "gdpr" belong to
	// more than one category, so each dictionary index fans out to every term
	// sharing that keyword.
	matcher   *ahocorasick.Matcher
	dictTerms [][]int
	patterns  []Pattern
}

// New builds a classifier from explicit rule tables. Keywords are matched
// case-insensitively as whole words; each pattern contributes its name as
// evidence under its category.
func New(keywords map[Category][]string, patterns []Pattern) *Classifier {
	c := &Classifier{}

	cats := make([]Category, 0, len(keywords))
	for cat := range keywords {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	dictionary := make([]string, 0, 64)
	dictIndex := make(map[string]int, 64)
	for _, cat := range cats {
		for _, kw := range keywords[cat] {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			c.terms = append(c.terms, keywordTerm{
				category: cat,
				keyword:  kw,
				wordRe:   regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`),
			})
			idx, ok := dictIndex[kw]
			if !ok {
				idx = len(dictionary)
				dictIndex[kw] = idx
				dictionary = append(dictionary, kw)
				c.dictTerms = append(c.dictTerms, nil)
			}
			c.dictTerms[idx] = append(c.dictTerms[idx], len(c.terms)-1)
		}
	}
	if len(dictionary) > 0 {
		c.matcher = ahocorasick.NewStringMatcher(dictionary)
	}

	c.patterns = append(c.patterns, patterns...)
	return c
}

// NewDefault builds a classifier with the built-in rule tables.
func NewDefault() *Classifier {
	return New(DefaultKeywords(), DefaultPatterns())
}

// DefaultKeywords returns a copy of the built-in keyword table.
func DefaultKeywords() map[Category][]string {
	out := make(map[Category][]string, len(defaultKeywords))
	for cat, kws := range defaultKeywords {
		out[cat] = append([]string(nil), kws...)
	}
	return out
}

// DefaultPatterns returns a copy of the built-in pattern table.
func DefaultPatterns() []Pattern {
	return append([]Pattern(nil), defaultPatterns...)
}

// CompilePattern builds a custom pattern rule from a regex source string.
func CompilePattern(name string, category Category, expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("pattern %s: %w", name, err)
	}
	if category == "" {
		category = PII
	}
	return Pattern{Name: name, Category: category, Regex: re}, nil
}

// Classify scans text and returns the categories detected with their evidence
// tokens. Empty text yields an empty findings map. Output is deterministic:
// evidence is deduplicated and sorted, and categories with no evidence are
// omitted.
func (c *Classifier) Classify(text string) Findings {
	findings := Findings{}
	if text == "" {
		return findings
	}

	lower := strings.ToLower(text)
	for _, i := range c.candidateTerms(lower) {
		term := c.terms[i]
		if term.wordRe.MatchString(lower) {
			findings[term.category] = append(findings[term.category], term.keyword)
		}
	}

	for _, p := range c.patterns {
		if p.Regex.MatchString(text) {
			findings[p.Category] = append(findings[p.Category], p.Name)
		}
	}

	for cat, evidence := range findings {
		findings[cat] = dedupeSorted(evidence)
	}
	return findings
}

// candidateTerms returns indices of keyword terms that may occur in the text.
// Large inputs go through the Aho-Corasick matcher first so that the per-term
// word-boundary verification only runs for substrings actually present.
func (c *Classifier) candidateTerms(lower string) []int {
	if c.matcher == nil {
		return nil
	}
	if len(lower) < ahoMinContentBytes {
		all := make([]int, len(c.terms))
		for i := range c.terms {
			all[i] = i
		}
		return all
	}
	var out []int
	for _, hit := range c.matcher.MatchThreadSafe([]byte(lower)) {
		if hit < 0 || hit >= len(c.dictTerms) {
			continue
		}
		out = append(out, c.dictTerms[hit]...)
	}
	sort.Ints(out)
	return out
}

func dedupeSorted(values []string) []string {
	sort.Strings(values)
	out := values[:0]
	var prev string
	for i, v := range values {
		if i > 0 && v == prev {
			continue
		}
		out = append(out, v)
		prev = v
	}
	return out
}
