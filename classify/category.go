package classify

import "sort"

// Category is one of the closed set of sensitive-content taxonomies.
type Category string

const (
	PII          Category = "pii"
	Financial    Category = "financial"
	Legal        Category = "legal"
	Confidential Category = "confidential"
)

// Categories lists the closed taxonomy in a stable order.
func Categories() []Category {
	return []Category{PII, Financial, Legal, Confidential}
}

// Known reports whether c belongs to the closed taxonomy.
func Known(c Category) bool {
	switch c {
	case PII, Financial, Legal, Confidential:
		return true
	}
	return false
}

// Findings maps a category to the evidence tokens matched for it. Categories
// with no evidence are never present.
type Findings map[Category][]string

// CategoryList returns the categories present in the findings, sorted.
func (f Findings) CategoryList() []Category {
	out := make([]Category, 0, len(f))
	for c := range f {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
