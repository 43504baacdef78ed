package extractor

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/pdd-flow/internal/pdd"
)

// Extract uploads the video, waits for it to become usable and asks the model
// for a process document shaped by responseSchema.
func (e *implExtractor) Extract(ctx context.Context, videoPath, transcript string) (*pdd.Document, error) {
	file, err := e.upload(ctx, videoPath)
	if err != nil {
		return nil, fmt.Errorf("upload video: %w", err)
	}
	if !e.keepUploads {
		defer e.deleteUpload(ctx, file.Name)
	}

	file, err = e.waitActive(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("wait for upload: %w", err)
	}

	doc, err := e.generate(ctx, file, transcript)
	if err != nil {
		return nil, fmt.Errorf("generate process document: %w", err)
	}

	return doc, nil
}

func (e *implExtractor) generate(ctx context.Context, file *genai.File, transcript string) (*pdd.Document, error) {
	parts := []*genai.Part{
		genai.NewPartFromURI(file.URI, file.MIMEType),
		genai.NewPartFromText(transcriptHeader + transcript),
		genai.NewPartFromText(docGeneratePrompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
	}

	e.logger.Info(ctx, "Requesting process document from %s...", e.model)
	start := time.Now()

	result, err := e.models.GenerateContent(ctx, e.model, contents, cfg)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrEmptyResponse
	}

	text := result.Text()
	if text == "" {
		reason := ""
		if len(result.Candidates) > 0 && result.Candidates[0] != nil {
			reason = string(result.Candidates[0].FinishReason)
		}
		return nil, fmt.Errorf("%w (finish_reason=%q)", ErrEmptyResponse, reason)
	}

	doc, err := decodeDocument(text)
	if err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	e.logger.Info(ctx, "Received %q with %d steps in %s",
		doc.ProcessName, len(doc.Steps), time.Since(start).Round(time.Millisecond))
	return doc, nil
}
