package domain

// Language keys understood by the analysis engine. Any other string is
// accepted; the tokenizer and stopword provider then fall back to
// their language-agnostic strategies.
const (
	LanguageGerman  = "german"
	LanguageEnglish = "english"
)

// DefaultLanguage is used when the caller does not specify one.
// The tool is German-first, matching its primary user base.
const DefaultLanguage = LanguageGerman
