package clause

import (
	"context"
	"strings"
	"sync"
)

// chunkText splits the text into overlapping chunks, preferring to cut at a
// sentence end within the last 200 characters before the boundary.
func (s *Segmenter) chunkText(text string) []string {
	var chunks []string
	start := 0

	for start < len(text) {
		end := start + s.cfg.ChunkSize
		if end < len(text) {
			from := end - boundaryLookback
			if from < start {
				from = start
			}
			if idx := strings.LastIndex(text[from:end], "."); idx >= 0 {
				end = from + idx + 1
			}
		} else {
			end = len(text)
		}

		chunks = append(chunks, text[start:end])

		if end >= len(text) {
			break
		}
		// Boundary snapping can pull end back past the overlap window;
		// never let the next start move backwards.
		if next := end - s.cfg.ChunkOverlap; next > start {
			start = next
		} else {
			start = end
		}
	}
	return chunks
}

// segmentChunked segments each chunk independently and concurrently, then
// merges the per-chunk clauses in chunk order with cross-chunk dedup.
func (s *Segmenter) segmentChunked(ctx context.Context, text string) []string {
	chunks := s.chunkText(text)

	perChunk := make([][]string, len(chunks))
	sem := make(chan struct{}, s.cfg.Concurrency)
	var wg sync.WaitGroup

	for i, chunk := range chunks {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, chunk string) {
			defer wg.Done()
			defer func() { <-sem }()
			perChunk[i] = s.segmentOne(chunk)
		}(i, chunk)
	}
	wg.Wait()

	var all []string
	for _, parts := range perChunk {
		all = append(all, parts...)
	}
	return dedupByPrefix(all)
}

// dedupByPrefix removes duplicate clauses by comparing the first hundred
// characters; the first occurrence wins.
func dedupByPrefix(clauses []string) []string {
	var unique []string
	seen := make(map[string]bool, len(clauses))

	for _, c := range clauses {
		prefix := clausePrefix(c)
		if seen[prefix] {
			continue
		}
		seen[prefix] = true
		unique = append(unique, c)
	}
	return unique
}

func clausePrefix(c string) string {
	if len(c) > dedupPrefixLen {
		c = c[:dedupPrefixLen]
	}
	return strings.TrimSpace(c)
}
