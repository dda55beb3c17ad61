package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/samber/lo"
)

type JobType string

const (
	Internship JobType = "internship"
	Freelance  JobType = "freelance"
	Fulltime   JobType = "fulltime"
)

func ToJobType(s string) (JobType, error) {
	switch s {
	case string(Internship):
		return Internship, nil
	case string(Freelance):
		return Freelance, nil
	case string(Fulltime):
		return Fulltime, nil
	default:
		return "", errors.New("invalid job type")
	}
}

// Job is the persisted posting record. ID, PostedBy and CreatedAt are set
// once on insert and never change; Applications only moves through the
// atomic increment on the repository.
type Job struct {
	ID           string `gorm:"primaryKey"`
	Title        string
	Company      string
	Type         JobType
	Location     string
	Remote       bool
	Salary       *int
	Stipend      *int
	Description  string
	Requirements string
	PostedBy     string
	Featured     bool
	Applications int
	CreatedAt    time.Time
}

func NewJob(draft JobDraft, postedBy string, featured bool) Job {
	return Job{
		Title:        strings.TrimSpace(draft.Title),
		Company:      strings.TrimSpace(draft.Company),
		Type:         draft.Type,
		Location:     strings.TrimSpace(draft.Location),
		Remote:       draft.Remote,
		Salary:       draft.Salary,
		Stipend:      draft.Stipend,
		Description:  strings.TrimSpace(draft.Description),
		Requirements: strings.Join(draft.RequirementLines(), "\n"),
		PostedBy:     postedBy,
		Featured:     featured,
	}
}

func (j *Job) RequirementsAsArray() []string {
	return splitLines(j.Requirements)
}

func splitLines(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	return lo.FilterMap(strings.Split(text, "\n"), func(line string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(line)
		return trimmed, trimmed != ""
	})
}
