package classify

import "regexp"

// Pattern is a structured-signal rule. A match contributes the pattern's name
// as evidence under its category.
type Pattern struct {
	Name     string
	Category Category
	Regex    *regexp.Regexp
}

// defaultPatterns covers card numbers, identifiers requiring contextual prefix
// words, contact details, and legal or classification references. RE2 has no
// lookbehind, so the context requirements are expressed as leading literals.
var defaultPatterns = []Pattern{
	{
		// Visa, MasterCard, Amex, Discover shapes.
		Name:     "credit_card",
		Category: Financial,
		Regex:    regexp.MustCompile(`(?:4[0-9]{12}(?:[0-9]{3})?|5[1-5][0-9]{14}|3[47][0-9]{13}|6(?:011|5[0-9]{2})[0-9]{12})`),
	},
	{
		Name:     "expiry_date",
		Category: Financial,
		Regex:    regexp.MustCompile(`(?:0[1-9]|1[0-2])/(?:2[3-9]|[3-9][0-9])`),
	},
	{
		Name:     "ssn",
		Category: PII,
		Regex:    regexp.MustCompile(`(?i)(?:SSN|Social Security)[^0-9-]*\d{3}-\d{2}-\d{4}`),
	},
	{
		Name:     "email",
		Category: PII,
		Regex:    regexp.MustCompile(`[a-zA-Z0-9._%+-]+@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}`),
	},
	{
		Name:     "phone",
		Category: PII,
		Regex:    regexp.MustCompile(`(?i)\b(?:phone|tel|mobile|contact|call|fax)\b[^0-9(]{0,20}(?:\+?1[-. ])?\(?[2-9][0-9]{2}\)?[-. ]?[2-9][0-9]{2}[-. ]?[0-9]{4}(?:\s*(?:ext|x)\.?\s*\d{1,5})?`),
	},
	{
		Name:     "drivers_license",
		Category: PII,
		Regex:    regexp.MustCompile(`(?:Driver'?s? License|DL|License Number|License #)[^0-9]*(?:[A-Z][0-9]{7,8}|[A-Z][0-9]{12}|\d{7,9}|[A-Z]\d{2}[-\s]?\d{3}[-\s]?\d{3}|[A-Z]\d{3}[-\s]?\d{3}[-\s]?\d{3}|[A-Z]{1,2}\d{4,7})`),
	},
	{
		Name:     "address_like",
		Category: PII,
		Regex:    regexp.MustCompile(`(?:Address|Location|Street)[^0-9]*\d{1,5}\s[\w\s.]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Circle|Cir|Court|Ct|Way|Place|Pl|Square|Sq)\b`),
	},
	{
		Name:     "contract_number",
		Category: Legal,
		Regex:    regexp.MustCompile(`(?:Contract|Agreement|License)\s*(?:#|Number|No\.?)\s*[A-Z0-9-]+`),
	},
	{
		Name:     "legal_case",
		Category: Legal,
		Regex:    regexp.MustCompile(`(?:Case|Docket)\s*(?:#|Number|No\.?)\s*[A-Z0-9-]+`),
	},
	{
		Name:     "regulation_ref",
		Category: Legal,
		Regex:    regexp.MustCompile(`(?:CFR|U\.S\.C\.|Regulation)\s+\d+[A-Z]?(?:\.\d+)*`),
	},
	{
		Name:     "classification_level",
		Category: Confidential,
		Regex:    regexp.MustCompile(`(?:TOP SECRET|SECRET|CONFIDENTIAL|RESTRICTED|INTERNAL)`),
	},
	{
		Name:     "nda_reference",
		Category: Confidential,
		Regex:    regexp.MustCompile(`(?:NDA|Non-Disclosure|Non Disclosure)\s+(?:Agreement|Contract)`),
	},
}
