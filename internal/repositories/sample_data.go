package repositories

import (
	"context"
	"fmt"

	"github.com/archilink/jobboard/internal/entities"
	"github.com/samber/lo"
)

// SeedSampleJobs inserts a small fixture set when the jobs table is empty.
// Meant for local development only.
func (repo *Jobs) SeedSampleJobs(ctx context.Context, postedBy string) error {

	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count jobs: %w", err)
	}
	if count > 0 {
		return nil
	}

	samples := []entities.JobDraft{
		{
			Title:        "Junior Architect",
			Company:      "Design Studio Pro",
			Type:         entities.Fulltime,
			Location:     "Mumbai",
			Remote:       false,
			Salary:       lo.ToPtr(450000),
			Description:  "Looking for a creative junior architect to join our team. Experience with AutoCAD, SketchUp, and Revit preferred.",
			Requirements: "AutoCAD\nSketchUp\n2+ years experience\nBachelor's in Architecture",
		},
		{
			Title:        "Freelance 3D Visualization Artist",
			Company:      "Urban Planners Inc",
			Type:         entities.Freelance,
			Location:     "Delhi",
			Remote:       true,
			Stipend:      lo.ToPtr(25000),
			Description:  "Need experienced 3D artist for residential project visualizations. Must be proficient in 3ds Max and V-Ray.",
			Requirements: "3ds Max\nV-Ray\nPortfolio required\nFreelancer",
		},
		{
			Title:        "Architecture Intern",
			Company:      "Green Building Solutions",
			Type:         entities.Internship,
			Location:     "Bangalore",
			Remote:       false,
			Stipend:      lo.ToPtr(15000),
			Description:  "Internship opportunity for architecture students. Learn sustainable design practices and green building certification.",
			Requirements: "Architecture student\nCAD knowledge\nEager to learn\n6-month commitment",
		},
	}

	featured := []bool{true, false, true}

	for i, draft := range samples {
		if _, err = repo.Add(ctx, entities.NewJob(draft, postedBy, featured[i])); err != nil {
			return fmt.Errorf("failed to seed sample job %q: %w", draft.Title, err)
		}
	}
	return nil
}
