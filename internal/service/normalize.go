package service

import "strings"

// JoinDetections flattens OCR detections into a single text blob, joining the
// recognized fragments with single spaces in engine-reported order. No
// deduplication, case folding or confidence filtering happens here: cleaning
// up OCR noise is the model's job, steered by the extraction prompt.
func JoinDetections(detections []Detection) string {
	fragments := make([]string, 0, len(detections))
	for _, d := range detections {
		fragments = append(fragments, d.Text)
	}
	return strings.Join(fragments, " ")
}
