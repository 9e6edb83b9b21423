package service

import "context"

// ITextReader is the OCR collaborator contract: it converts an image file
// into text detections in engine-reported order.
type ITextReader interface {
	ReadText(ctx context.Context, imagePath string) ([]Detection, error)
}

// ICompletionService sends one rendered prompt to the chat-completion service
// and returns the first choice's message text verbatim.
type ICompletionService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
