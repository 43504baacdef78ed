package docgen

// Kind tells the writer how to emit a block.
type Kind int

const (
	KindTitle Kind = iota
	KindHeading
	KindParagraph
	KindLabelled
	KindBullet
	KindTable
	KindImage
	KindSpacer
)

// Block is one element of the rendered document, in output order.
type Block struct {
	Kind  Kind
	Text  string
	Label string // KindLabelled: bold prefix
	Level uint   // KindHeading

	// KindTable
	Rows            [][]string
	HeaderRow       bool
	FirstColumnBold bool

	Image Image
}

// Image is a picture block sized in inches. Owner names the step it belongs
// to for warnings.
type Image struct {
	Path   string
	Width  float64
	Height float64
	Owner  string
}

func title(text string) Block           { return Block{Kind: KindTitle, Text: text} }
func heading(text string, l uint) Block { return Block{Kind: KindHeading, Text: text, Level: l} }
func paragraph(text string) Block       { return Block{Kind: KindParagraph, Text: text} }
func bullet(text string) Block          { return Block{Kind: KindBullet, Text: text} }
func spacer() Block                     { return Block{Kind: KindSpacer} }

func labelled(label, text string) Block {
	return Block{Kind: KindLabelled, Label: label, Text: text}
}

func image(path string, w, h float64, owner string) Block {
	return Block{Kind: KindImage, Image: Image{Path: path, Width: w, Height: h, Owner: owner}}
}
