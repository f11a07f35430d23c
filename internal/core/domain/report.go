package domain

import "time"

// FrequencyEntry is one row of a frequency table.
type FrequencyEntry struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// ScoreEntry is one row of a score table (TF-IDF, WDF-IDF).
type ScoreEntry struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// WordStats holds the basic word statistics of one document.
// TotalWords counts every token including duplicates; UniqueWords
// counts distinct tokens and is independent of the truncation applied
// to TopFrequency.
type WordStats struct {
	TotalWords   int              `json:"total_words"`
	UniqueWords  int              `json:"unique_words"`
	TopFrequency []FrequencyEntry `json:"word_frequency"`
}

// Readability complexity labels, keyed off the Flesch Reading Ease score.
const (
	ComplexityVeryHard = "Sehr schwierig"
	ComplexityHard     = "Schwierig"
	ComplexityMedium   = "Etwas schwierig"
	ComplexityStandard = "Standard"
	ComplexityEasy     = "Leicht verständlich"
	ComplexityUnknown  = "Unbekannt"
)

// ReadabilityResult holds the readability metrics of one document.
// Ease can be negative or above 100 for pathological input; Label is
// one of the Complexity constants.
type ReadabilityResult struct {
	Ease  float64 `json:"flesch_reading_ease"`
	Grade float64 `json:"flesch_kincaid_grade"`
	Label string  `json:"complexity_level"`
}

// SemanticSummary holds the salience analysis of one document:
// distinct non-stopword token count and the ten most frequent
// non-stopword tokens.
type SemanticSummary struct {
	UniqueMeaningful int              `json:"unique_meaningful_words"`
	TopMeaningful    []FrequencyEntry `json:"top_meaningful_words"`
}

// Diagnostic is a non-fatal warning raised during analysis, such as a
// tokenizer falling back to a simpler strategy. Diagnostics never
// abort an analysis.
type Diagnostic struct {
	Component string `json:"component"`
	Document  string `json:"document,omitempty"`
	Message   string `json:"message"`
}

// DocumentReport bundles every per-document metric.
// Failed sub-metrics appear as zero values with their label set to
// ComplexityUnknown, never as missing fields.
type DocumentReport struct {
	Name           string             `json:"file"`
	RawWordCount   int                `json:"raw_word_count"`
	Stats          WordStats          `json:"stats"`
	Readability    ReadabilityResult  `json:"readability"`
	KeywordDensity map[string]float64 `json:"keyword_density,omitempty"`
	Semantic       SemanticSummary    `json:"semantic"`
}

// AnalysisReport is the result of analyzing a batch of documents.
// TFIDF and WDFIDF are corpus-wide tables; when a term appears in
// several documents the score from the later document wins.
type AnalysisReport struct {
	ID          string           `json:"id"`
	CreatedAt   time.Time        `json:"created_at"`
	Language    string           `json:"language"`
	Documents   []DocumentReport `json:"documents"`
	TFIDF       []ScoreEntry     `json:"tf_idf"`
	WDFIDF      []ScoreEntry     `json:"wdf_idf"`
	Diagnostics []Diagnostic     `json:"diagnostics,omitempty"`
}
