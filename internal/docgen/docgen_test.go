package docgen

import (
	"archive/zip"
	"bytes"
	"context"
	stdimage "image"
	"image/color"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/pdd-flow/internal/config"
	"github.com/nguyentantai21042004/pdd-flow/internal/logger"
	"github.com/nguyentantai21042004/pdd-flow/internal/pdd"
)

var fixedNow = func() time.Time { return time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC) }

func loadInvoice(t *testing.T) *pdd.Document {
	t.Helper()
	doc, err := pdd.Load(filepath.Join("..", "pdd", "testdata", "invoice.json"))
	require.NoError(t, err)
	return doc
}

func texts(blocks []Block) []string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		switch b.Kind {
		case KindTitle, KindHeading, KindParagraph, KindBullet:
			out = append(out, b.Text)
		case KindLabelled:
			out = append(out, b.Label+b.Text)
		}
	}
	return out
}

func TestNewLayouts(t *testing.T) {
	tests := []struct {
		name    string
		layout  string
		wantErr bool
	}{
		{"default", "", false},
		{"pdd", LayoutPDD, false},
		{"simple", LayoutSimple, false},
		{"unknown", "fancy", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(config.DocumentConfig{Layout: tt.layout}, logger.NewNop())
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLayout)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}
}

func TestNewDefaults(t *testing.T) {
	r, err := newRenderer(config.DocumentConfig{}, logger.NewNop(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, style{font: "Calibri", size: 11}, r.style)
	assert.Equal(t, "Automated Process Generator", r.preparedBy)

	r, err = newRenderer(config.DocumentConfig{Font: "Arial", FontSize: 12, PreparedBy: "Ops"}, logger.NewNop(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, style{font: "Arial", size: 12}, r.style)
	assert.Equal(t, "Ops", r.preparedBy)
}

func TestPDDLayout(t *testing.T) {
	doc := loadInvoice(t)
	blocks := pddLayout(doc, meta{PreparedBy: "Bot", Date: fixedNow()})

	assert.Equal(t, []string{
		"Process Definition Document",
		"2.2 Applications Utilized",
		"5.0 Detailed Process Steps",
		"1.0 Open SAP",
		"1.1 Double-click the SAP GUI icon (Timestamp: 00:00:07)",
		"1.2 Enter transaction MIRO (Timestamp: 00:00:15)",
		"2.0 Approve invoice",
		"2.1 Click Approve (Timestamp: 00:01:20)",
		"6.0 Business Exceptions",
		"7.0 Requires Clarification",
		"Which approval limit applies to managers?",
	}, texts(blocks))

	var tables []Block
	for _, b := range blocks {
		if b.Kind == KindTable {
			tables = append(tables, b)
		}
	}
	require.Len(t, tables, 3)

	assert.True(t, tables[0].FirstColumnBold)
	assert.Equal(t, [][]string{
		{"Project:", "Invoice Approval"},
		{"Process:", doc.ShortDescription},
		{"Prepared by:", "Bot"},
		{"Date:", "3/7/2025"},
	}, tables[0].Rows)

	assert.True(t, tables[1].HeaderRow)
	assert.Equal(t, []string{"SAP GUI", "Purpose not specified.", "desktop application"}, tables[1].Rows[1])
	assert.Equal(t, []string{"Outlook Web", "https://outlook.office.com", "web application"}, tables[1].Rows[2])

	assert.Equal(t, [][]string{
		{"Exception", "Handling"},
		{"Invoice locked", "Wait and retry later or contact the owner."},
	}, tables[2].Rows)
}

func TestPDDLayoutWithoutClarifications(t *testing.T) {
	doc := loadInvoice(t)
	doc.Clarifications = nil

	blocks := pddLayout(doc, meta{Date: fixedNow()})
	assert.NotContains(t, texts(blocks), "7.0 Requires Clarification")
}

func TestSimpleLayout(t *testing.T) {
	doc := loadInvoice(t)
	blocks := simpleLayout(doc, meta{})

	got := texts(blocks)
	require.GreaterOrEqual(t, len(got), 3)
	assert.Equal(t, "Invoice Approval", got[0])
	assert.Equal(t, "Process Description: "+doc.ShortDescription, got[1])
	assert.Equal(t, "1.0 Open SAP", got[2])
	for _, b := range blocks {
		assert.NotEqual(t, KindTable, b.Kind)
	}
}

func TestStepBlocksImages(t *testing.T) {
	steps := []pdd.Step{{
		GroupName: "Open",
		Numbering: "1.0",
		Thumbnail: "step-1_0.jpg",
		SubSteps: []pdd.SubStep{
			{Step: "Click", Numbering: "1.1", TimeStamp: "00:00:01", Thumbnail: "substep-1_1.jpg"},
			{Step: "Type", Numbering: "1.2", TimeStamp: "00:00:02"},
		},
	}}

	blocks := stepBlocks(steps)
	kinds := make([]Kind, len(blocks))
	for i, b := range blocks {
		kinds[i] = b.Kind
	}
	assert.Equal(t, []Kind{KindHeading, KindImage, KindBullet, KindImage, KindBullet, KindSpacer}, kinds)
	assert.Equal(t, Image{Path: "step-1_0.jpg", Width: 5.2, Height: 2.93, Owner: "step 1.0"}, blocks[1].Image)
	assert.Equal(t, Image{Path: "substep-1_1.jpg", Width: 4.17, Height: 2.34, Owner: "sub-step 1.1"}, blocks[3].Image)
}

func TestDropMissingImages(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "step-1_0.jpg")
	require.NoError(t, os.WriteFile(present, []byte("jpeg"), 0644))

	var buf bytes.Buffer
	log := logger.NewWithOptions(logger.Options{Level: "debug", Format: "json", Output: &buf})
	r, err := newRenderer(config.DocumentConfig{}, log, fixedNow)
	require.NoError(t, err)

	blocks := []Block{
		heading("1.0 Open", 2),
		image(present, 1, 1, "step 1.0"),
		image(filepath.Join(dir, "missing.jpg"), 1, 1, "sub-step 1.1"),
		spacer(),
	}

	kept := r.dropMissingImages(context.Background(), blocks)
	require.Len(t, kept, 3)
	assert.Equal(t, present, kept[1].Image.Path)
	assert.Contains(t, buf.String(), "could not read thumbnail for sub-step 1.1")
}

func TestRenderWritesDocx(t *testing.T) {
	doc := loadInvoice(t)
	out := filepath.Join(t.TempDir(), "out", "Process_Document.docx")

	r, err := newRenderer(config.DocumentConfig{}, logger.NewNop(), fixedNow)
	require.NoError(t, err)
	require.NoError(t, r.Render(context.Background(), doc, out))

	body := readDocumentXML(t, out)
	for _, want := range []string{
		"Process Definition Document",
		"Invoice Approval",
		"2.2 Applications Utilized",
		"Purpose not specified.",
		"1.0 Open SAP",
		"1.1 Double-click the SAP GUI icon (Timestamp: 00:00:07)",
		"6.0 Business Exceptions",
		"Invoice locked",
	} {
		assert.Contains(t, body, want)
	}
}

func TestRenderSkipsMissingThumbnails(t *testing.T) {
	doc := loadInvoice(t)
	doc.Steps[0].Thumbnail = filepath.Join(t.TempDir(), "gone.jpg")
	out := filepath.Join(t.TempDir(), "simple.docx")

	r, err := newRenderer(config.DocumentConfig{Layout: LayoutSimple}, logger.NewNop(), fixedNow)
	require.NoError(t, err)
	require.NoError(t, r.Render(context.Background(), doc, out))

	body := readDocumentXML(t, out)
	assert.Contains(t, body, "Process Description: ")
	assert.NotContains(t, body, "<w:drawing>")
}

func writeJPEG(t *testing.T, path string) {
	t.Helper()
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, 64, 36))
	for x := 0; x < 64; x++ {
		for y := 0; y < 36; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: 80, B: 160, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, img, nil))
}

func TestRenderEmbedsThumbnail(t *testing.T) {
	dir := t.TempDir()
	thumb := filepath.Join(dir, "step-1_0.jpg")
	writeJPEG(t, thumb)

	doc := loadInvoice(t)
	doc.Steps[0].Thumbnail = thumb
	doc.Steps[0].SubSteps[0].Thumbnail = filepath.Join(dir, "substep-1_1.jpg") // never written
	out := filepath.Join(dir, "Process_Document.docx")

	r, err := newRenderer(config.DocumentConfig{}, logger.NewNop(), fixedNow)
	require.NoError(t, err)
	require.NoError(t, r.Render(context.Background(), doc, out))

	body := readDocumentXML(t, out)
	assert.Equal(t, 1, strings.Count(body, "<w:drawing>"))
	assert.Contains(t, body, "1.0 Open SAP")
}

func TestRenderNilDocument(t *testing.T) {
	r, err := New(config.DocumentConfig{}, logger.NewNop())
	require.NoError(t, err)
	assert.Error(t, r.Render(context.Background(), nil, filepath.Join(t.TempDir(), "x.docx")))
}

func readDocumentXML(t *testing.T, path string) string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("word/document.xml not found in %s", path)
	return ""
}
