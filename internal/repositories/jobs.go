package repositories

import (
	"context"
	"time"

	"github.com/archilink/jobboard/internal/entities"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

// Add persists the posting and assigns its identifier and creation time.
// The applications counter always starts at zero regardless of the input.
func (repo *Jobs) Add(ctx context.Context, job entities.Job) (string, error) {
	job.ID = uuid.NewString()
	job.Applications = 0
	job.CreatedAt = time.Now().UTC()

	if err := repo.db.WithContext(ctx).Create(&job).Error; err != nil {
		return "", errors.Wrap(err, "failed to insert job")
	}
	return job.ID, nil
}

func (repo *Jobs) GetByID(ctx context.Context, id string) (*entities.Job, error) {
	var job entities.Job
	err := repo.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// Get returns postings most recent first. Type and remote constraints are
// pushed down to the store; search and location matching happen later in
// memory (services.ApplySecondaryFilters).
func (repo *Jobs) Get(ctx context.Context, types []entities.JobType, remote *bool) ([]entities.Job, error) {

	query := repo.db.WithContext(ctx).Order("created_at DESC")

	if len(types) > 0 {
		query = query.Where("type IN ?", types)
	}
	if remote != nil {
		query = query.Where("remote = ?", *remote)
	}

	var jobs []entities.Job
	if err := query.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (repo *Jobs) GetFeatured(ctx context.Context, limit int) ([]entities.Job, error) {

	var jobs []entities.Job
	err := repo.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// IncrementApplications applies the +1 as a single UPDATE so concurrent
// applicants never lose each other's increments.
func (repo *Jobs) IncrementApplications(ctx context.Context, id string) error {
	res := repo.db.WithContext(ctx).
		Model(&entities.Job{}).
		Where("id = ?", id).
		UpdateColumn("applications", gorm.Expr("applications + ?", 1))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrJobNotFound
	}
	return nil
}

func (repo *Jobs) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&entities.Job{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
