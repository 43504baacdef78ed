package extractor

import (
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/pdd-flow/pkg/timecode"
)

func stringSchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

func objectSchema(order []string, props map[string]*genai.Schema) *genai.Schema {
	return &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       props,
		PropertyOrdering: order,
	}
}

func arrayOf(items *genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: items}
}

// responseSchema mirrors pdd.Document; property ordering keeps the model's
// output in the same order as the document sections.
func responseSchema() *genai.Schema {
	application := objectSchema(
		[]string{"application_name", "type", "url"},
		map[string]*genai.Schema{
			"application_name": stringSchema(),
			"type":             stringSchema(),
			"url":              stringSchema(),
		},
	)

	subStep := objectSchema(
		[]string{"step", "numbering", "time_stamp"},
		map[string]*genai.Schema{
			"step":       stringSchema(),
			"numbering":  stringSchema(),
			"time_stamp": stringSchema(),
		},
	)

	step := objectSchema(
		[]string{"group_name", "numbering", "time_stamp", "sub_steps"},
		map[string]*genai.Schema{
			"group_name": stringSchema(),
			"numbering":  stringSchema(),
			"time_stamp": {Type: genai.TypeString, Pattern: timecode.Pattern},
			"sub_steps":  arrayOf(subStep),
		},
	)

	exception := objectSchema(
		[]string{"exception", "description"},
		map[string]*genai.Schema{
			"exception":   stringSchema(),
			"description": stringSchema(),
		},
	)

	return objectSchema(
		[]string{
			"process_name",
			"short_process_description",
			"list_of_applications",
			"list_of_steps",
			"exceptions",
			"clarifications",
		},
		map[string]*genai.Schema{
			"process_name":              stringSchema(),
			"short_process_description": stringSchema(),
			"list_of_applications":      arrayOf(application),
			"list_of_steps":             arrayOf(step),
			"exceptions":                arrayOf(exception),
			"clarifications":            arrayOf(stringSchema()),
		},
	)
}
