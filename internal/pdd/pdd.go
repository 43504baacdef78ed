// Package pdd holds the Process Definition Document model shared by the
// extractor, the thumbnail stage and the renderer.
package pdd

import (
	"encoding/json"
	"fmt"
	"os"
)

type SubStep struct {
	Step      string `json:"step"`
	Numbering string `json:"numbering"`
	TimeStamp string `json:"time_stamp"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type Step struct {
	GroupName string    `json:"group_name"`
	Numbering string    `json:"numbering"`
	TimeStamp string    `json:"time_stamp"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	SubSteps  []SubStep `json:"sub_steps"`
}

type Application struct {
	Name string `json:"application_name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

type Exception struct {
	Exception   string `json:"exception"`
	Description string `json:"description"`
}

// Document is the structured process description returned by the model and
// written to the JSON sidecar.
type Document struct {
	ProcessName      string        `json:"process_name"`
	ShortDescription string        `json:"short_process_description"`
	Applications     []Application `json:"list_of_applications"`
	Steps            []Step        `json:"list_of_steps"`
	Exceptions       []Exception   `json:"exceptions"`
	Clarifications   []string      `json:"clarifications"`
}

// Normalize replaces nil slices with empty ones so the sidecar never
// carries null lists.
func (d *Document) Normalize() {
	if d.Applications == nil {
		d.Applications = []Application{}
	}
	if d.Steps == nil {
		d.Steps = []Step{}
	}
	if d.Exceptions == nil {
		d.Exceptions = []Exception{}
	}
	if d.Clarifications == nil {
		d.Clarifications = []string{}
	}
	for i := range d.Steps {
		if d.Steps[i].SubSteps == nil {
			d.Steps[i].SubSteps = []SubStep{}
		}
	}
}

// CountTargets returns the number of steps plus sub-steps.
func (d *Document) CountTargets() int {
	n := len(d.Steps)
	for _, s := range d.Steps {
		n += len(s.SubSteps)
	}
	return n
}

// Decode parses a document from raw JSON.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode process document: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}

// Load reads a JSON sidecar from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(data)
}

// Save writes the document as indented JSON.
func (d *Document) Save(path string) error {
	d.Normalize()
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode process document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
