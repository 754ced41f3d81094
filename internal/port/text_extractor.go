package port

import "context"

// ExtractedText is the plain text and page count of a document.
type ExtractedText struct {
	Text  string
	Pages int
}

// TextExtractor turns document bytes into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (*ExtractedText, error)
}
