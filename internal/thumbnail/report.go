package thumbnail

import "github.com/nguyentantai21042004/pdd-flow/internal/pdd"

// Failure describes a step whose frame is missing.
type Failure struct {
	Kind      pdd.TargetKind
	Numbering string
	TimeStamp string
	Reason    string

	index int // position in document order
}

// Report summarises a thumbnail batch.
type Report struct {
	Total     int
	Extracted int
	Skipped   int
	Failed    int
	Failures  []Failure
}

// OK reports whether every target produced a thumbnail.
func (r Report) OK() bool {
	return r.Skipped == 0 && r.Failed == 0
}
