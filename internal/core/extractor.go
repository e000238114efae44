// Package core wires the two-tier extraction pipeline: a schema-constrained
// LLM pass first, and the deterministic fallback extractors whenever the LLM
// call fails or its output cannot be recovered as JSON. The second tier makes
// both extractors total: callers always get a normalized record back.
package core

import (
	"context"
	"encoding/json"
	"strings"

	"voice-catalog-go/internal/fallback"
	"voice-catalog-go/internal/llm"
	"voice-catalog-go/internal/logger"
	"voice-catalog-go/internal/record"
)

// objectBounds cuts the substring between the first '{' and the last '}'.
// Model output is frequently wrapped in prose or markdown fences; everything
// outside the outermost braces is discarded.
func objectBounds(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || start >= end {
		return "", false
	}
	return s[start : end+1], true
}

// arrayBounds is the same recovery for a JSON array payload.
func arrayBounds(s string) (string, bool) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || start >= end {
		return "", false
	}
	return s[start : end+1], true
}

type BusinessExtractor struct {
	llm llm.Completer
	log *logger.Logger
}

func NewBusinessExtractor(completer llm.Completer) *BusinessExtractor {
	return &BusinessExtractor{
		llm: completer,
		log: logger.New(),
	}
}

// Extract runs the LLM pass once and falls through to the rule-based
// extractor on any failure. The result is always normalized and never an
// error: an unusable transcript yields a record of empty fields.
func (e *BusinessExtractor) Extract(ctx context.Context, transcript string) record.BusinessRecord {
	out, err := e.llm.Complete(ctx, buildBusinessPrompt(transcript))
	if err != nil {
		e.log.WithError(err).Warn("business extraction: llm call failed, using fallback")
		return fallback.ExtractBusiness(transcript)
	}

	raw, ok := objectBounds(out)
	if !ok {
		e.log.Warn("business extraction: no JSON object in llm output, using fallback")
		return fallback.ExtractBusiness(transcript)
	}

	var rec record.BusinessRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		e.log.WithError(err).Warn("business extraction: llm output did not parse, using fallback")
		return fallback.ExtractBusiness(transcript)
	}
	return record.NormalizeBusiness(rec)
}

type ProductExtractor struct {
	llm llm.Completer
	log *logger.Logger
}

func NewProductExtractor(completer llm.Completer) *ProductExtractor {
	return &ProductExtractor{
		llm: completer,
		log: logger.New(),
	}
}

// Extract parses a product-list transcript, recovering the JSON array
// between the first '[' and the last ']' of the model output. Any failure
// routes to the product fallback extractor with the same transcript.
func (e *ProductExtractor) Extract(ctx context.Context, transcript string) []record.ProductRecord {
	out, err := e.llm.Complete(ctx, buildProductPrompt(transcript))
	if err != nil {
		e.log.WithError(err).Warn("product extraction: llm call failed, using fallback")
		return fallback.ExtractProducts(transcript)
	}

	raw, ok := arrayBounds(out)
	if !ok {
		e.log.Warn("product extraction: no JSON array in llm output, using fallback")
		return fallback.ExtractProducts(transcript)
	}

	var products []record.ProductRecord
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		e.log.WithError(err).Warn("product extraction: llm output did not parse, using fallback")
		return fallback.ExtractProducts(transcript)
	}
	return record.NormalizeProducts(products)
}
