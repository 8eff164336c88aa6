// Package risk computes a composite, explainable risk score for a classified
// file. The model is additive over three factors: what kind of sensitive
// content was found, how old the file is, and how long since anyone touched
// it. Each factor has a fixed small weight table and the total is capped at 1.
package risk

import (
	"sort"
	"time"

	"docsentry/classify"
)

// Level is the discrete bucket derived from the continuous score.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Per-category content weights. Categories outside the closed taxonomy fall
// back to defaultContentWeight so future additions degrade gracefully.
var contentWeights = map[classify.Category]float64{
	classify.Confidential: 0.4,
	classify.PII:          0.3,
	classify.Financial:    0.2,
	classify.Legal:        0.1,
}

const defaultContentWeight = 0.05

// Shared three-tier weights for the age and access factors.
const (
	factorHigh   = 0.3
	factorMedium = 0.2
	factorLow    = 0.1
)

// CategoryWeight returns the content weight for a single category.
func CategoryWeight(c classify.Category) float64 {
	if w, ok := contentWeights[c]; ok {
		return w
	}
	return defaultContentWeight
}

// ContentWeight sums the weights of all categories present in the findings.
func ContentWeight(findings classify.Findings) float64 {
	var sum float64
	for c := range findings {
		sum += CategoryWeight(c)
	}
	return sum
}

// AgeFactor weights a file by creation age: files older than three years are
// the riskiest (stale data). A zero created time means the creation date is
// unknown and yields the medium weight.
func AgeFactor(created time.Time, now time.Time) float64 {
	if created.IsZero() {
		return factorMedium
	}
	return tierFactor(created, now)
}

// AccessFactor weights a file by time since last access. A zero accessed time
// means the signal is unavailable and yields the HIGH weight: a file nobody
// can say was recently touched is treated as forgotten. Note the asymmetry
// with AgeFactor's unknown default; it is deliberate.
func AccessFactor(accessed time.Time, now time.Time) float64 {
	if accessed.IsZero() {
		return factorHigh
	}
	return tierFactor(accessed, now)
}

func tierFactor(t time.Time, now time.Time) float64 {
	years := now.Sub(t).Hours() / 24 / 365
	switch {
	case years >= 3:
		return factorHigh
	case years >= 1:
		return factorMedium
	default:
		return factorLow
	}
}

// Score combines content, age and access factors into a score in [0,1].
func Score(findings classify.Findings, created, accessed time.Time, now time.Time) float64 {
	score := ContentWeight(findings) + AgeFactor(created, now) + AccessFactor(accessed, now)
	if score > 1.0 {
		return 1.0
	}
	return score
}

// LevelFor buckets a score. Tier lower bounds are inclusive.
func LevelFor(score float64) Level {
	switch {
	case score >= 0.7:
		return LevelHigh
	case score >= 0.4:
		return LevelMedium
	default:
		return LevelLow
	}
}

// PrimaryCategory returns the highest-weighted category present in the
// findings, used as the single sensitivity reason on a file record. Ties are
// broken by category name for determinism.
func PrimaryCategory(findings classify.Findings) classify.Category {
	cats := findings.CategoryList()
	if len(cats) == 0 {
		return ""
	}
	sort.SliceStable(cats, func(i, j int) bool {
		return CategoryWeight(cats[i]) > CategoryWeight(cats[j])
	})
	return cats[0]
}
