package service

import (
	"context"
	"time"

	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/internal/types"
)

// ExtractionPipeline turns a shopping-list photo into categorized items:
// OCR, normalization, prompt, completion call, parse/validate. It holds no
// per-request state; concurrent runs are independent.
type ExtractionPipeline struct {
	ocr ITextReader
	llm ICompletionService
	now func() time.Time
}

// NewExtractionPipeline wires the pipeline with its two collaborators.
func NewExtractionPipeline(ocr ITextReader, llm ICompletionService) *ExtractionPipeline {
	return &ExtractionPipeline{
		ocr: ocr,
		llm: llm,
		now: time.Now,
	}
}

// Run executes one extraction request against the image at imagePath. The
// temp file behind imagePath is owned by the caller, which releases it on
// every exit path. OCR faults propagate unmapped; completion and parse
// failures carry the typed taxonomy.
func (p *ExtractionPipeline) Run(ctx context.Context, imagePath string) ([]types.ExtractedItem, error) {
	if imagePath == "" {
		return nil, ErrNoImage
	}

	detections, err := p.ocr.ReadText(ctx, imagePath)
	if err != nil {
		return nil, err
	}

	text := JoinDetections(detections)
	observedAt := p.now().Format(types.TimeLayout)
	prompt := BuildExtractionPrompt(text, observedAt)

	raw, err := p.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return ParseExtraction(raw)
}
