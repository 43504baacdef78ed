package extractor

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/pdd-flow/internal/config"
	"github.com/nguyentantai21042004/pdd-flow/internal/logger"
)

// fileStore is the subset of genai.Files used for video upload.
type fileStore interface {
	UploadFromPath(ctx context.Context, path string, config *genai.UploadFileConfig) (*genai.File, error)
	Get(ctx context.Context, name string, config *genai.GetFileConfig) (*genai.File, error)
	Delete(ctx context.Context, name string, config *genai.DeleteFileConfig) (*genai.DeleteFileResponse, error)
}

// contentGenerator is the subset of genai.Models used for extraction.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type implExtractor struct {
	files           fileStore
	models          contentGenerator
	logger          logger.Logger
	model           string
	pollInterval    time.Duration
	uploadTimeout   time.Duration
	defaultMIMEType string
	keepUploads     bool
}

// New creates an Extractor backed by the Gemini API.
func New(ctx context.Context, cfg config.GeminiConfig, log logger.Logger) (Extractor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return newExtractor(client.Files, client.Models, cfg, log), nil
}

func newExtractor(files fileStore, models contentGenerator, cfg config.GeminiConfig, log logger.Logger) *implExtractor {
	return &implExtractor{
		files:           files,
		models:          models,
		logger:          log.With("component", "extractor"),
		model:           cfg.Model,
		pollInterval:    cfg.PollInterval,
		uploadTimeout:   cfg.UploadTimeout,
		defaultMIMEType: cfg.DefaultMIMEType,
		keepUploads:     cfg.KeepUploads,
	}
}
