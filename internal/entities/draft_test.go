package entities

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func validFulltimeDraft() JobDraft {
	return JobDraft{
		Title:       "Junior Architect",
		Company:     "Design Studio Pro",
		Type:        Fulltime,
		Location:    "Mumbai",
		Salary:      lo.ToPtr(450000),
		Description: "Creative junior architect position.",
	}
}

func Test_DraftValidate_ValidDrafts(t *testing.T) {

	assert.NoError(t, validFulltimeDraft().Validate())

	internship := validFulltimeDraft()
	internship.Type = Internship
	internship.Salary = nil
	internship.Stipend = lo.ToPtr(15000)
	assert.NoError(t, internship.Validate())

	freelance := validFulltimeDraft()
	freelance.Type = Freelance
	freelance.Salary = nil
	freelance.Stipend = lo.ToPtr(25000)
	assert.NoError(t, freelance.Validate())
}

func Test_DraftValidate_MissingRequiredFields(t *testing.T) {

	for _, clear := range []struct {
		field string
		apply func(*JobDraft)
	}{
		{"Title", func(d *JobDraft) { d.Title = "" }},
		{"Company", func(d *JobDraft) { d.Company = "" }},
		{"Location", func(d *JobDraft) { d.Location = "" }},
		{"Description", func(d *JobDraft) { d.Description = "" }},
	} {
		draft := validFulltimeDraft()
		clear.apply(&draft)

		err := draft.Validate()
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, clear.field, validationErr.Field)
	}
}

func Test_DraftValidate_CompensationFollowsType(t *testing.T) {

	fulltime := validFulltimeDraft()
	fulltime.Salary = nil

	err := fulltime.Validate()
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Salary", validationErr.Field)

	internship := validFulltimeDraft()
	internship.Type = Internship
	internship.Salary = nil

	err = internship.Validate()
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Stipend", validationErr.Field)

	unknown := validFulltimeDraft()
	unknown.Type = "parttime"

	err = unknown.Validate()
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Type", validationErr.Field)
}

func Test_RequirementLines_DiscardsBlanks(t *testing.T) {

	draft := validFulltimeDraft()
	draft.Requirements = "AutoCAD\n\n  SketchUp  \n\n2+ years experience\n"

	assert.Equal(t, []string{"AutoCAD", "SketchUp", "2+ years experience"}, draft.RequirementLines())

	draft.Requirements = "\n  \n"
	assert.Equal(t, []string{}, draft.RequirementLines())
}

func Test_NewJob_JoinsRequirementsAndTrims(t *testing.T) {

	draft := validFulltimeDraft()
	draft.Title = "  Junior Architect "
	draft.Requirements = "AutoCAD\n\nSketchUp"

	job := NewJob(draft, "firm-1", true)

	assert.Equal(t, "Junior Architect", job.Title)
	assert.Equal(t, "firm-1", job.PostedBy)
	assert.True(t, job.Featured)
	assert.Equal(t, 0, job.Applications)
	assert.Equal(t, []string{"AutoCAD", "SketchUp"}, job.RequirementsAsArray())
}

func Test_ToJobType(t *testing.T) {

	for _, valid := range []string{"internship", "freelance", "fulltime"} {
		jobType, err := ToJobType(valid)
		assert.NoError(t, err)
		assert.Equal(t, valid, string(jobType))
	}

	_, err := ToJobType("parttime")
	assert.Error(t, err)
}

func Test_ToRole(t *testing.T) {

	for _, valid := range []string{"student", "professional", "firm"} {
		role, err := ToRole(valid)
		assert.NoError(t, err)
		assert.Equal(t, valid, string(role))
	}

	_, err := ToRole("admin")
	assert.Error(t, err)
}
