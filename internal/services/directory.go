package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/archilink/jobboard/internal/entities"
	"github.com/archilink/jobboard/internal/events"
	"github.com/archilink/jobboard/internal/logger"
	"github.com/archilink/jobboard/internal/metrics"
	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
)

const DefaultFeaturedLimit = 5

type jobRepository interface {
	Add(ctx context.Context, job entities.Job) (string, error)
	GetByID(ctx context.Context, id string) (*entities.Job, error)
	Get(ctx context.Context, types []entities.JobType, remote *bool) ([]entities.Job, error)
	IncrementApplications(ctx context.Context, id string) error
}

type featuredReader interface {
	GetFeatured(ctx context.Context, limit int) ([]entities.Job, error)
	Invalidate()
}

type identityProvider interface {
	CurrentUser() (entities.Identity, bool)
}

// Directory owns every read and write against the job store. Writes demand
// an authenticated caller; browsing is open.
type Directory struct {
	jobs     jobRepository
	featured featuredReader
	session  identityProvider
	bus      EventBus.Bus
}

func NewDirectory(jobs jobRepository, featured featuredReader, session identityProvider,
	bus EventBus.Bus) *Directory {

	return &Directory{
		jobs:     jobs,
		featured: featured,
		session:  session,
		bus:      bus,
	}
}

// ListJobs runs the store-side query and layers the in-memory search and
// location filters on top. Store failures are surfaced, never collapsed
// into an empty result, so callers can tell "no matches" from "read failed".
func (d *Directory) ListJobs(ctx context.Context, filters entities.JobFilters) ([]entities.Job, error) {

	start := time.Now()
	jobs, err := d.jobs.Get(ctx, filters.Types, filters.Remote)
	metrics.ListingQueryDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to list jobs: %v", err)
		return nil, fmt.Errorf("%w: %v", entities.ErrStoreUnavailable, err)
	}

	return ApplySecondaryFilters(jobs, filters), nil
}

// ListFeatured is best-effort: the promotional strip must never block the
// rest of the page, so store failures degrade to an empty list.
func (d *Directory) ListFeatured(ctx context.Context, limit int) []entities.Job {

	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}

	jobs, err := d.featured.GetFeatured(ctx, limit)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to list featured jobs: %v", err)
		return []entities.Job{}
	}
	return jobs
}

func (d *Directory) GetJob(ctx context.Context, id string) (*entities.Job, error) {
	job, err := d.jobs.GetByID(ctx, id)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to get job %v: %v", id, err)
		return nil, fmt.Errorf("%w: %v", entities.ErrStoreUnavailable, err)
	}
	return job, nil
}

// CreateJob stamps the posting with the caller's identity and persists it.
// The store assigns the id and creation time; the applications counter
// starts at zero.
func (d *Directory) CreateJob(ctx context.Context, draft entities.JobDraft, featured bool) (string, error) {

	user, ok := d.session.CurrentUser()
	if !ok {
		return "", entities.ErrUnauthenticated
	}

	id, err := d.jobs.Add(ctx, entities.NewJob(draft, user.UserID, featured))
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to create job: %v", err)
		return "", fmt.Errorf("%w: %v", entities.ErrStoreUnavailable, err)
	}

	metrics.JobsCreatedCounter.Inc()
	if featured {
		d.featured.Invalidate()
	}

	d.bus.Publish(events.JobPostedTopic, events.JobPosted{
		JobID:    id,
		Title:    draft.Title,
		Company:  draft.Company,
		Featured: featured,
	})
	return id, nil
}

// RecordApplication bumps the applications counter through the store's
// atomic increment.
func (d *Directory) RecordApplication(ctx context.Context, id string) error {

	if _, ok := d.session.CurrentUser(); !ok {
		return entities.ErrUnauthenticated
	}

	if err := d.jobs.IncrementApplications(ctx, id); err != nil {
		if errors.Is(err, entities.ErrJobNotFound) {
			return err
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to record application for job %v: %v", id, err)
		return fmt.Errorf("%w: %v", entities.ErrStoreUnavailable, err)
	}

	metrics.ApplicationsCounter.Inc()
	return nil
}
