package models

import (
	"time"
)

// TextStatistics holds basic statistics computed over normalized text
type TextStatistics struct {
	WordCount         int     `json:"word_count"`
	CharacterCount    int     `json:"character_count"`
	SentenceCount     int     `json:"sentence_count"`
	AvgWordLength     float64 `json:"average_word_length"`
	AvgSentenceLength float64 `json:"average_sentence_length"`
}

// TypeScore holds the per-type scoring detail produced by the classifier
type TypeScore struct {
	Score           float64  `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MatchedPatterns []string `json:"matched_patterns"`
	Confidence      float64  `json:"confidence"`
}

// Classification is the outcome of document type classification.
// PredictedType is "unknown" when no type reached the confidence threshold;
// Scores always carries the raw per-type detail regardless.
type Classification struct {
	PredictedType string               `json:"predicted_type"`
	Confidence    float64              `json:"confidence"`
	IsConfident   bool                 `json:"is_confident"`
	Scores        map[string]TypeScore `json:"scores"`
}

// Entity is a single extracted entity with its location and surrounding context
type Entity struct {
	Text       string  `json:"text"`
	Type       string  `json:"type"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Confidence float64 `json:"confidence"`
	Context    string  `json:"context,omitempty"`
}

// Party is a contracting party identified in the document
type Party struct {
	Name    string `json:"name"`
	Type    string `json:"type"` // organization or person
	Context string `json:"context,omitempty"`
}

// Obligation is a modal-verb clause describing a duty or responsibility
type Obligation struct {
	Text    string `json:"text"`
	Context string `json:"context,omitempty"`
}

// Deadline is a date or time-bound phrase with deadline semantics
type Deadline struct {
	Text       string `json:"text"`
	FullClause string `json:"full_clause"`
	Type       string `json:"type"`
	Context    string `json:"context,omitempty"`
}

// EntitySet aggregates all entity extraction output for one document
type EntitySet struct {
	Entities          map[string][]Entity `json:"entities"`
	KeyParties        []Party             `json:"key_parties"`
	Obligations       []Obligation        `json:"obligations"`
	DatesAndDeadlines []Deadline          `json:"dates_and_deadlines"`
}

// Clause is one segmented span of document text
type Clause struct {
	Text    string `json:"text"`
	Ordinal int    `json:"ordinal"`
}

// SimplifiedClause is the plain-language rendering of a single clause
type SimplifiedClause struct {
	Original   string   `json:"original_clause"`
	Simplified string   `json:"simplified_clause"`
	Summary    string   `json:"plain_english_summary"`
	KeyPoints  []string `json:"key_points"`
	Score      float64  `json:"simplification_score"`
}

// ClauseReport groups extracted clauses with their simplifications.
// SimplifiedClauses may be shorter than ExtractedClauses when individual
// simplifications failed.
type ClauseReport struct {
	TotalCount        int                `json:"total_count"`
	ExtractedClauses  []Clause           `json:"extracted_clauses"`
	SimplifiedClauses []SimplifiedClause `json:"simplified_clauses"`
}

// Characteristics holds type-specific secondary findings about a document
type Characteristics struct {
	Type        string            `json:"type"`
	Detail      map[string]string `json:"detail,omitempty"`
	Complexity  string            `json:"complexity"`
	KeySections []string          `json:"key_sections,omitempty"`
}

// DocumentInfo carries metadata supplied by the external format decoder
type DocumentInfo struct {
	FileName   string    `json:"file_name"`
	FileType   string    `json:"file_type"` // txt, pdf, docx
	FileSize   int       `json:"file_size"`
	AnalyzedAt time.Time `json:"analysis_timestamp"`
}

// Summary is a condensed view of the full analysis
type Summary struct {
	DocumentType      string              `json:"document_type"`
	Confidence        float64             `json:"confidence"`
	KeyFindings       []string            `json:"key_findings"`
	ImportantEntities map[string][]string `json:"important_entities,omitempty"`
	Complexity        string              `json:"document_complexity"`
}

// AnalysisResult is the complete analysis report returned to callers.
// The analyzer holds no reference to it after return.
type AnalysisResult struct {
	DocumentInfo    DocumentInfo    `json:"document_info"`
	Classification  Classification  `json:"classification"`
	Characteristics Characteristics `json:"characteristics"`
	Statistics      TextStatistics  `json:"text_statistics"`
	Entities        EntitySet       `json:"entities"`
	Clauses         ClauseReport    `json:"clauses"`
	Summary         Summary         `json:"summary"`
	Recommendations []string        `json:"recommendations"`
}

// QuickResult is the reduced output of a cached quick analysis
type QuickResult struct {
	Classification Classification      `json:"classification"`
	Entities       map[string][]Entity `json:"entities"`
	WordCount      int                 `json:"word_count"`
	CharacterCount int                 `json:"character_count"`
}
