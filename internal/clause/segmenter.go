package clause

import (
	"context"
	"regexp"
	"strings"

	"github.com/plainterms/legal-analyzer/pkg/models"
)

// Config controls segmentation behavior.
type Config struct {
	// MaxClauses caps the returned clause count. Valid range is 1-50.
	MaxClauses int
	// MinLength drops clauses shorter than this unless doing so would
	// leave nothing.
	MinLength int
	// ChunkThreshold switches to the chunked path for longer documents.
	ChunkThreshold int
	ChunkSize      int
	ChunkOverlap   int
	// Concurrency bounds parallel chunk segmentation.
	Concurrency int
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		MaxClauses:     10,
		MinLength:      50,
		ChunkThreshold: 10000,
		ChunkSize:      5000,
		ChunkOverlap:   500,
		Concurrency:    4,
	}
}

// MaxClauseLimit is the upper bound for Config.MaxClauses.
const MaxClauseLimit = 50

var (
	numberedRE = regexp.MustCompile(`\n\s*\d+\.\s*`)
	letteredRE = regexp.MustCompile(`\n\s*[a-z]\)\s*`)
	sentenceRE = regexp.MustCompile(`[.!?]+`)
)

const (
	sentenceChunkMin  = 1000
	sentenceChunkSize = 400
	fallbackParts     = 10
	fallbackFloor     = 400
	dedupPrefixLen    = 100
	boundaryLookback  = 200
)

// Segmenter splits text into discrete clauses using an ordered fallback
// chain of strategies. Large documents are segmented over overlapping
// chunks concurrently and merged with cross-chunk deduplication.
type Segmenter struct {
	cfg Config
}

// New creates a segmenter with the given configuration; zero fields fall
// back to defaults.
func New(cfg Config) *Segmenter {
	def := DefaultConfig()
	if cfg.MaxClauses <= 0 {
		cfg.MaxClauses = def.MaxClauses
	}
	if cfg.MaxClauses > MaxClauseLimit {
		cfg.MaxClauses = MaxClauseLimit
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = def.MinLength
	}
	if cfg.ChunkThreshold <= 0 {
		cfg.ChunkThreshold = def.ChunkThreshold
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = def.ChunkSize
	}
	if cfg.ChunkOverlap <= 0 || cfg.ChunkOverlap >= cfg.ChunkSize {
		cfg.ChunkOverlap = def.ChunkOverlap
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = def.Concurrency
	}
	return &Segmenter{cfg: cfg}
}

// Segment extracts clauses from the text. Documents above the chunk
// threshold are split into overlapping chunks segmented concurrently, then
// merged; duplicates across chunk boundaries are removed by comparing the
// first hundred characters, first occurrence winning.
func (s *Segmenter) Segment(ctx context.Context, text string) []models.Clause {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var parts []string
	if len(text) > s.cfg.ChunkThreshold {
		parts = s.segmentChunked(ctx, text)
	} else {
		parts = s.segmentOne(text)
	}

	if len(parts) > s.cfg.MaxClauses {
		parts = parts[:s.cfg.MaxClauses]
	}

	clauses := make([]models.Clause, len(parts))
	for i, p := range parts {
		clauses[i] = models.Clause{Text: p, Ordinal: i}
	}
	return clauses
}

// segmentOne applies the strategy chain to a single text unit: the first
// strategy producing more than one part wins.
func (s *Segmenter) segmentOne(text string) []string {
	strategies := []func(string) []string{
		splitNumbered,
		splitLettered,
		s.splitParagraphs,
		s.rechunkSentences,
		s.splitFixed,
	}

	var parts []string
	for _, strategy := range strategies {
		if parts = strategy(text); len(parts) > 1 {
			break
		}
	}
	if len(parts) == 0 {
		parts = []string{strings.TrimSpace(text)}
	}

	return s.filterShort(parts)
}

// filterShort drops clauses under the minimum length unless that would
// leave nothing, in which case the unfiltered list is kept.
func (s *Segmenter) filterShort(parts []string) []string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) >= s.cfg.MinLength {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return parts
	}
	return kept
}

func splitNumbered(text string) []string {
	return cleanSplit(numberedRE.Split(text, -1)[1:])
}

func splitLettered(text string) []string {
	return cleanSplit(letteredRE.Split(text, -1)[1:])
}

func cleanSplit(parts []string) []string {
	cleaned := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return cleaned
}

func (s *Segmenter) splitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if len(p) > s.cfg.MinLength {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// rechunkSentences re-joins sentences into roughly 400-character chunks for
// unstructured texts longer than 1000 characters.
func (s *Segmenter) rechunkSentences(text string) []string {
	if len(text) <= sentenceChunkMin {
		return nil
	}

	sentences := sentenceRE.Split(text, -1)
	var chunks []string
	var current strings.Builder

	for _, sent := range sentences {
		sent = strings.TrimSpace(sent)
		if sent == "" {
			continue
		}
		if current.Len() > 0 && current.Len()+len(sent) > sentenceChunkSize {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(sent)
		current.WriteString(". ")
	}
	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}
	return chunks
}

// splitFixed cuts the text into up to ten equal-size pieces as a last
// resort. Piece size never drops below the floor, so a short unstructured
// text comes back whole instead of shredded.
func (s *Segmenter) splitFixed(text string) []string {
	size := len(text) / fallbackParts
	if size < fallbackFloor {
		size = fallbackFloor
	}
	if size >= len(text) {
		return []string{strings.TrimSpace(text)}
	}

	var parts []string
	for start := 0; start < len(text); start += size {
		end := start + size
		if end > len(text) {
			end = len(text)
		}
		p := strings.TrimSpace(text[start:end])
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
