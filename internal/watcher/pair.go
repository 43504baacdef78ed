package watcher

import (
	"path/filepath"
	"strings"
	"sync"
)

var videoExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".avi": true, ".mkv": true,
	".webm": true, ".m4v": true, ".flv": true,
}

const transcriptExtension = ".txt"

// pairer matches videos and transcripts by base name. Each name is
// dispatched at most once per watcher lifetime.
type pairer struct {
	mu          sync.Mutex
	videos      map[string]string
	transcripts map[string]string
	dispatched  map[string]bool
}

func newPairer() *pairer {
	return &pairer{
		videos:      make(map[string]string),
		transcripts: make(map[string]string),
		dispatched:  make(map[string]bool),
	}
}

// add records path and returns the pair once both halves are known.
func (p *pairer) add(path string) (Job, bool) {
	name, isVideo, ok := classify(path)
	if !ok {
		return Job{}, false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if isVideo {
		p.videos[name] = path
	} else {
		p.transcripts[name] = path
	}

	video, hasVideo := p.videos[name]
	transcript, hasTranscript := p.transcripts[name]
	if !hasVideo || !hasTranscript || p.dispatched[name] {
		return Job{}, false
	}

	p.dispatched[name] = true
	return Job{Name: name, VideoPath: video, TranscriptPath: transcript}, true
}

// classify returns the pairing key of path and whether it is the video half.
func classify(path string) (name string, isVideo bool, ok bool) {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return "", false, false
	}
	ext := strings.ToLower(filepath.Ext(base))
	name = strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		return "", false, false
	}
	switch {
	case videoExtensions[ext]:
		return name, true, true
	case ext == transcriptExtension:
		return name, false, true
	default:
		return "", false, false
	}
}
