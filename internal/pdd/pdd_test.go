package pdd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "invoice.json"))
	require.NoError(t, err)

	assert.Equal(t, "Invoice Approval", doc.ProcessName)
	require.Len(t, doc.Applications, 2)
	assert.Equal(t, "SAP GUI", doc.Applications[0].Name)
	require.Len(t, doc.Steps, 2)
	assert.Equal(t, "1.0", doc.Steps[0].Numbering)
	require.Len(t, doc.Steps[0].SubSteps, 2)
	assert.Equal(t, "00:00:15", doc.Steps[0].SubSteps[1].TimeStamp)
	assert.Equal(t, 5, doc.CountTargets())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDecodeNormalizesNulls(t *testing.T) {
	doc, err := Decode([]byte(`{"process_name":"x","list_of_steps":[{"group_name":"g","numbering":"1.0","time_stamp":"00:00:01","sub_steps":null}]}`))
	require.NoError(t, err)

	assert.NotNil(t, doc.Applications)
	assert.NotNil(t, doc.Exceptions)
	assert.NotNil(t, doc.Clarifications)
	assert.NotNil(t, doc.Steps[0].SubSteps)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode([]byte(`{"process_name":`))
	assert.Error(t, err)
}

func TestSaveWritesIndentedJSON(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "invoice.json"))
	require.NoError(t, err)
	doc.Steps[0].Thumbnail = "thumbnails/step-1_0.jpg"
	doc.Clarifications = nil

	out := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, doc.Save(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "\n  \"process_name\": \"Invoice Approval\"")
	assert.Contains(t, text, `"thumbnail": "thumbnails/step-1_0.jpg"`)
	assert.Contains(t, text, `"clarifications": []`)

	// sub-steps without a thumbnail omit the field entirely
	reloaded, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, "", reloaded.Steps[0].SubSteps[0].Thumbnail)
	assert.Equal(t, "thumbnails/step-1_0.jpg", reloaded.Steps[0].Thumbnail)
}

func TestTargets(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "invoice.json"))
	require.NoError(t, err)

	targets := doc.Targets()
	require.Len(t, targets, 5)

	want := []struct {
		kind      TargetKind
		numbering string
	}{
		{KindStep, "1.0"},
		{KindSubStep, "1.1"},
		{KindSubStep, "1.2"},
		{KindStep, "2.0"},
		{KindSubStep, "2.1"},
	}
	for i, w := range want {
		assert.Equal(t, w.kind, targets[i].Kind)
		assert.Equal(t, w.numbering, targets[i].Numbering)
	}

	*targets[2].Thumbnail = "x.jpg"
	assert.Equal(t, "x.jpg", doc.Steps[0].SubSteps[1].Thumbnail)
}
