package extractor

import "errors"

var (
	ErrFileNotActive        = errors.New("uploaded file did not become active in time")
	ErrFileProcessingFailed = errors.New("uploaded file processing failed")
	ErrEmptyResponse        = errors.New("empty response from Gemini")
)
