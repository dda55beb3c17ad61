package entities

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// JobDraft is the caller-supplied posting data before validation and
// persistence. Requirements is raw multi-line text as typed by the firm;
// blank lines are discarded on split.
type JobDraft struct {
	Title        string  `validate:"required"`
	Company      string  `validate:"required"`
	Type         JobType `validate:"required"`
	Location     string  `validate:"required"`
	Remote       bool
	Salary       *int
	Stipend      *int
	Description  string `validate:"required"`
	Requirements string
}

var draftValidator = validator.New()

// Validate checks the draft without touching any collaborator. The type tag
// decides which compensation field is required: fulltime postings carry an
// annual salary, internship and freelance postings carry a stipend.
func (d JobDraft) Validate() error {

	if err := draftValidator.Struct(d); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			field := validationErrors[0].Field()
			return &ValidationError{Field: field, Reason: "must not be empty"}
		}
		return err
	}

	switch d.Type {
	case Fulltime:
		if d.Salary == nil {
			return &ValidationError{Field: "Salary", Reason: "required for fulltime positions"}
		}
	case Internship, Freelance:
		if d.Stipend == nil {
			return &ValidationError{Field: "Stipend", Reason: "required for " + string(d.Type) + " positions"}
		}
	default:
		return &ValidationError{Field: "Type", Reason: "must be one of internship, freelance, fulltime"}
	}

	return nil
}

func (d JobDraft) RequirementLines() []string {
	return splitLines(d.Requirements)
}
