package services

import (
	"strings"

	"github.com/archilink/jobboard/internal/entities"
	"github.com/samber/lo"
)

// ApplySecondaryFilters narrows an already store-filtered result set by the
// in-memory dimensions: free-text search over title/company/description and
// substring location match, both case-insensitive. The store query handles
// type, remote and ordering; keeping the two stages separate avoids needing
// full-text-search infrastructure for a small corpus.
func ApplySecondaryFilters(jobs []entities.Job, filters entities.JobFilters) []entities.Job {

	if !filters.HasSecondary() {
		return jobs
	}

	search := strings.ToLower(filters.Search)
	location := strings.ToLower(filters.Location)

	return lo.Filter(jobs, func(job entities.Job, _ int) bool {
		if search != "" && !matchesSearch(job, search) {
			return false
		}
		if location != "" && !strings.Contains(strings.ToLower(job.Location), location) {
			return false
		}
		return true
	})
}

func matchesSearch(job entities.Job, term string) bool {
	return strings.Contains(strings.ToLower(job.Title), term) ||
		strings.Contains(strings.ToLower(job.Company), term) ||
		strings.Contains(strings.ToLower(job.Description), term)
}
