package pdd

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/nguyentantai21042004/pdd-flow/pkg/timecode"
)

var numberingPattern = regexp.MustCompile(`^\d+(\.\d+)*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("numbering", func(fl validator.FieldLevel) bool {
		return numberingPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("timestamp", func(fl validator.FieldLevel) bool {
		return timecode.IsStrict(fl.Field().String())
	})
	return v
}

type stepRule struct {
	Numbering string `validate:"numbering"`
	TimeStamp string `validate:"timestamp"`
}

// Issue is a single validation finding. Issues are advisory: the model output
// is still rendered.
type Issue struct {
	Field   string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// Validate checks numbering and timestamp formats of every step and sub-step.
func (d *Document) Validate() []Issue {
	var issues []Issue

	if d.ProcessName == "" {
		issues = append(issues, Issue{Field: "process_name", Message: "is empty"})
	}

	for i, step := range d.Steps {
		prefix := fmt.Sprintf("list_of_steps[%d]", i)
		issues = append(issues, checkRule(prefix, step.Numbering, step.TimeStamp)...)
		for j, sub := range step.SubSteps {
			subPrefix := fmt.Sprintf("%s.sub_steps[%d]", prefix, j)
			issues = append(issues, checkRule(subPrefix, sub.Numbering, sub.TimeStamp)...)
		}
	}

	return issues
}

func checkRule(prefix, numbering, timeStamp string) []Issue {
	err := validate.Struct(stepRule{Numbering: numbering, TimeStamp: timeStamp})
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Issue{{Field: prefix, Message: err.Error()}}
	}

	issues := make([]Issue, 0, len(verrs))
	for _, e := range verrs {
		switch e.Field() {
		case "Numbering":
			issues = append(issues, Issue{
				Field:   prefix + ".numbering",
				Message: fmt.Sprintf("%q is not a dotted number", numbering),
			})
		case "TimeStamp":
			issues = append(issues, Issue{
				Field:   prefix + ".time_stamp",
				Message: fmt.Sprintf("%q does not match HH:MM:SS", timeStamp),
			})
		}
	}
	return issues
}
