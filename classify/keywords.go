package classify

// defaultKeywords maps each category to the case-insensitive keywords that
// signal it. Matches are whole-word only.
var defaultKeywords = map[Category][]string{
	PII: {
		"dob", "email", "phone", "address", "ssn", "personal", "pii",
		"hipaa", "gdpr", "personally identifiable", "customer data",
		"personnel", "employee", "patient", "healthcare",
	},
	Financial: {
		"credit", "bank", "amount", "revenue", "budget", "roi", "cost",
		"financial", "invoice", "payment", "expense", "profit", "pricing",
		"salary", "investment", "tax",
	},
	Legal: {
		"license", "contract", "agreement", "legal", "compliance",
		"regulatory", "counsel", "policy", "policies", "terms",
		"regulation", "gdpr", "ccpa", "hipaa", "certification",
		"audit", "liability",
	},
	Confidential: {
		"confidential", "internal use", "do not distribute", "sensitive",
		"security", "restricted", "proprietary", "classified", "private",
		"secret", "nda", "non-disclosure", "intellectual property",
		"trade secret", "internal only",
	},
}
