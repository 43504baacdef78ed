package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrMissingAPIKey is returned when a command needs Gemini but no key is configured.
var ErrMissingAPIKey = errors.New("gemini api key is not set (GEMINI_API_KEY or gemini.api_key)")

type Config struct {
	Gemini   GeminiConfig   `yaml:"gemini"`
	FFmpeg   FFmpegConfig   `yaml:"ffmpeg"`
	Paths    PathsConfig    `yaml:"paths"`
	Document DocumentConfig `yaml:"document"`
	Logging  LoggingConfig  `yaml:"logging"`
	Watch    WatchConfig    `yaml:"watch"`
}

type GeminiConfig struct {
	APIKey          string        `yaml:"api_key"`
	Model           string        `yaml:"model"`
	PollInterval    time.Duration `yaml:"poll_interval" validate:"gte=0"`
	UploadTimeout   time.Duration `yaml:"upload_timeout" validate:"gte=0"`
	DefaultMIMEType string        `yaml:"default_mime_type"`
	KeepUploads     bool          `yaml:"keep_uploads"`
}

type FFmpegConfig struct {
	BinaryPath     string `yaml:"binary_path"`
	ProbePath      string `yaml:"probe_path"`
	ThumbnailWidth int    `yaml:"thumbnail_width" validate:"gte=0"`
	Quality        int    `yaml:"quality" validate:"gte=0,lte=31"`
	MaxConcurrent  int    `yaml:"max_concurrent" validate:"gte=0"`
}

type PathsConfig struct {
	Output     string `yaml:"output"`
	Thumbnails string `yaml:"thumbnails"`
	JSONName   string `yaml:"json_name"`
	DocxName   string `yaml:"docx_name"`
}

type DocumentConfig struct {
	Layout     string `yaml:"layout" validate:"omitempty,oneof=pdd simple"`
	Font       string `yaml:"font"`
	FontSize   int    `yaml:"font_size" validate:"gte=0,lte=72"`
	PreparedBy string `yaml:"prepared_by"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
}

type WatchConfig struct {
	Input         string        `yaml:"input"`
	Output        string        `yaml:"output"`
	MaxConcurrent int           `yaml:"max_concurrent" validate:"gte=0"`
	SettleDelay   time.Duration `yaml:"settle_delay" validate:"gte=0"`
}

var validate = validator.New()

// Validate fills defaults and checks field constraints.
func (c *Config) Validate() error {
	c.applyDefaults()

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, e := range verrs {
				msgs = append(msgs, formatValidationError(e))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// RequireAPIKey reports ErrMissingAPIKey when no Gemini key is available.
func (c *Config) RequireAPIKey() error {
	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.PollInterval == 0 {
		c.Gemini.PollInterval = 3 * time.Second
	}
	if c.Gemini.UploadTimeout == 0 {
		c.Gemini.UploadTimeout = 10 * time.Minute
	}
	if c.Gemini.DefaultMIMEType == "" {
		c.Gemini.DefaultMIMEType = "video/mp4"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}
	if c.FFmpeg.ThumbnailWidth == 0 {
		c.FFmpeg.ThumbnailWidth = 1280
	}
	if c.FFmpeg.Quality == 0 {
		c.FFmpeg.Quality = 2
	}
	if c.FFmpeg.MaxConcurrent == 0 {
		c.FFmpeg.MaxConcurrent = 4
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "."
	}
	if c.Paths.Thumbnails == "" {
		c.Paths.Thumbnails = "thumbnails"
	}
	if c.Paths.JSONName == "" {
		c.Paths.JSONName = "process_steps_with_thumbs.json"
	}
	if c.Paths.DocxName == "" {
		c.Paths.DocxName = "Process_Document.docx"
	}
	if c.Document.Layout == "" {
		c.Document.Layout = "pdd"
	}
	if c.Document.Font == "" {
		c.Document.Font = "Calibri"
	}
	if c.Document.FontSize == 0 {
		c.Document.FontSize = 11
	}
	if c.Document.PreparedBy == "" {
		c.Document.PreparedBy = "Automated Process Generator"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Watch.Input == "" {
		c.Watch.Input = "data/input"
	}
	if c.Watch.Output == "" {
		c.Watch.Output = "data/output"
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 2
	}
	if c.Watch.SettleDelay == 0 {
		c.Watch.SettleDelay = 500 * time.Millisecond
	}
}

func formatValidationError(e validator.FieldError) string {
	field := e.Namespace()
	switch e.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, e.Tag())
	}
}
