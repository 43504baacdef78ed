package pdd

// TargetKind distinguishes step and sub-step thumbnails.
type TargetKind string

const (
	KindStep    TargetKind = "step"
	KindSubStep TargetKind = "substep"
)

// Target is one frame to grab. Thumbnail points into the owning document so
// the extractor can record or clear the path in place.
type Target struct {
	Kind      TargetKind
	Numbering string
	TimeStamp string
	Thumbnail *string
}

// Targets flattens steps and sub-steps in document order.
func (d *Document) Targets() []Target {
	targets := make([]Target, 0, d.CountTargets())
	for i := range d.Steps {
		step := &d.Steps[i]
		targets = append(targets, Target{
			Kind:      KindStep,
			Numbering: step.Numbering,
			TimeStamp: step.TimeStamp,
			Thumbnail: &step.Thumbnail,
		})
		for j := range step.SubSteps {
			sub := &step.SubSteps[j]
			targets = append(targets, Target{
				Kind:      KindSubStep,
				Numbering: sub.Numbering,
				TimeStamp: sub.TimeStamp,
				Thumbnail: &sub.Thumbnail,
			})
		}
	}
	return targets
}
