package analyzer

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/plainterms/legal-analyzer/internal/classify"
	"github.com/plainterms/legal-analyzer/internal/clause"
	"github.com/plainterms/legal-analyzer/internal/entity"
	"github.com/plainterms/legal-analyzer/internal/normalize"
	"github.com/plainterms/legal-analyzer/internal/simplify"
	"github.com/plainterms/legal-analyzer/pkg/models"
)

// Config holds analyzer-level settings independent of a single run.
type Config struct {
	// Workers sizes the shared worker pool.
	Workers int
	// CacheTTL is the quick-analysis cache lifetime.
	CacheTTL time.Duration
}

// DefaultConfig returns the default analyzer configuration.
func DefaultConfig() Config {
	return Config{
		Workers:  4,
		CacheTTL: 30 * time.Minute,
	}
}

// Document is the analysis input: decoded text plus metadata from the
// caller's format decoder.
type Document struct {
	Text     string
	FileName string
	FileType string
	FileSize int
}

// Analyzer orchestrates the full analysis pipeline. All stage components
// are injected at construction; concurrent analyses share the worker pool
// and the quick-analysis cache. Safe for concurrent use.
type Analyzer struct {
	classifier *classify.Classifier
	extractor  *entity.Extractor
	simplifier *simplify.Simplifier

	pool   *Pool
	cache  *resultCache
	logger *zap.Logger
}

// New builds an analyzer with the default pipeline components.
func New(cfg Config, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		classifier: classify.New(),
		extractor:  entity.New(),
		simplifier: simplify.New(),
		pool:       NewPool(cfg.Workers),
		cache:      newResultCache(cfg.CacheTTL),
		logger:     logger,
	}
}

// Close releases the worker pool. The analyzer must not be used after
// Close returns.
func (a *Analyzer) Close() {
	a.pool.Close()
}

// Analyze runs the complete pipeline over one document. Empty text is
// accepted and yields a zeroed result; mandatory stage failures and
// cancellation surface as errors. The returned result is owned by the
// caller.
func (a *Analyzer) Analyze(ctx context.Context, doc Document, opts Options) (*models.AnalysisResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	a.logger.Info("starting document analysis",
		zap.String("file_name", doc.FileName),
		zap.Int("text_length", len(doc.Text)))

	normalized := normalize.Normalize(doc.Text)

	cls, ents, err := a.classifyAndExtract(ctx, normalized.Cleaned)
	if err != nil {
		return nil, err
	}

	segmenter := clause.New(clause.Config{
		MaxClauses:     opts.MaxClauses,
		ChunkThreshold: opts.ChunkThreshold,
		ChunkSize:      opts.ChunkSize,
		ChunkOverlap:   opts.ChunkOverlap,
	})
	clauses := segmenter.Segment(ctx, normalized.Cleaned)
	if err := ctx.Err(); err != nil {
		return nil, stageErr(StageSegment, err)
	}

	var simplified []models.SimplifiedClause
	if opts.IncludeSimplification && len(clauses) > 0 {
		simplified, err = a.simplifyBatches(ctx, clauses, opts)
		if err != nil {
			return nil, err
		}
	}

	characteristics := a.classifier.Characterize(normalized.Cleaned, cls.PredictedType)

	result := &models.AnalysisResult{
		DocumentInfo: models.DocumentInfo{
			FileName:   doc.FileName,
			FileType:   doc.FileType,
			FileSize:   doc.FileSize,
			AnalyzedAt: time.Now(),
		},
		Classification:  cls,
		Characteristics: characteristics,
		Statistics:      normalized.Statistics,
		Entities:        ents,
		Clauses: models.ClauseReport{
			TotalCount:        len(clauses),
			ExtractedClauses:  clauses,
			SimplifiedClauses: simplified,
		},
		Summary:         buildSummary(cls, ents, characteristics),
		Recommendations: recommendations(cls, ents),
	}

	a.logger.Info("document analysis completed",
		zap.String("file_name", doc.FileName),
		zap.String("document_type", cls.PredictedType),
		zap.Int("clause_count", len(clauses)),
		zap.Duration("elapsed", time.Since(start)))
	return result, nil
}

// classifyAndExtract runs classification and entity extraction in parallel
// on the worker pool.
func (a *Analyzer) classifyAndExtract(ctx context.Context, text string) (models.Classification, models.EntitySet, error) {
	var (
		wg   sync.WaitGroup
		cls  models.Classification
		ents models.EntitySet
	)

	wg.Add(1)
	if err := a.pool.Submit(ctx, func() {
		defer wg.Done()
		cls = a.classifier.Classify(text)
	}); err != nil {
		wg.Done()
		return cls, ents, stageErr(StageClassify, err)
	}

	wg.Add(1)
	if err := a.pool.Submit(ctx, func() {
		defer wg.Done()
		ents = a.extractor.Analyze(text)
	}); err != nil {
		wg.Done()
		wg.Wait()
		return cls, ents, stageErr(StageExtract, err)
	}

	wg.Wait()
	if err := ctx.Err(); err != nil {
		return cls, ents, stageErr(StageClassify, err)
	}
	return cls, ents, nil
}

// simplifyBatches simplifies clauses in fixed-size batches. Clauses within
// a batch run concurrently on the pool and results keep clause order;
// batches run strictly in sequence with a rate-limited gap between them.
// A failed clause is logged and dropped without failing the run.
func (a *Analyzer) simplifyBatches(ctx context.Context, clauses []models.Clause, opts Options) ([]models.SimplifiedClause, error) {
	limiter := rate.NewLimiter(rate.Every(opts.InterBatchDelay), 1)

	simplified := make([]models.SimplifiedClause, 0, len(clauses))
	for offset := 0; offset < len(clauses); offset += opts.BatchSize {
		if err := limiter.Wait(ctx); err != nil {
			return nil, stageErr(StageSimplify, err)
		}

		batch := clauses[offset:min(offset+opts.BatchSize, len(clauses))]
		results := make([]*models.SimplifiedClause, len(batch))

		var wg sync.WaitGroup
		for i, c := range batch {
			wg.Add(1)
			if err := a.pool.Submit(ctx, func() {
				defer wg.Done()
				sc := a.simplifier.Simplify(c.Text)
				results[i] = &sc
			}); err != nil {
				wg.Done()
				wg.Wait()
				return nil, stageErr(StageSimplify, err)
			}
		}
		wg.Wait()

		for i, r := range results {
			if r == nil {
				a.logger.Warn("clause simplification dropped",
					zap.Int("ordinal", batch[i].Ordinal))
				continue
			}
			simplified = append(simplified, *r)
		}
	}
	return simplified, nil
}

// QuickAnalyze classifies and extracts entities from a text snippet,
// memoizing results for the cache lifetime. Identical inputs within the
// window return the cached result without recomputation.
func (a *Analyzer) QuickAnalyze(ctx context.Context, text string) (*models.QuickResult, error) {
	key := cacheKey(text)
	if cached, ok := a.cache.get(key); ok {
		a.logger.Debug("quick analysis cache hit")
		return cached, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cleaned := normalize.Normalize(text).Cleaned
	result := &models.QuickResult{
		Classification: a.classifier.Classify(cleaned),
		Entities:       a.extractor.Extract(cleaned),
		WordCount:      len(strings.Fields(cleaned)),
		CharacterCount: len(cleaned),
	}
	a.cache.set(key, result)
	return result, nil
}

// ClearCache drops all memoized quick-analysis results.
func (a *Analyzer) ClearCache() {
	a.cache.clear()
}
