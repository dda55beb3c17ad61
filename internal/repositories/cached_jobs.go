package repositories

import (
	"context"
	"strconv"
	"time"

	"github.com/archilink/jobboard/internal/entities"
	gocache "github.com/patrickmn/go-cache"
)

type featuredRepository interface {
	GetFeatured(ctx context.Context, limit int) ([]entities.Job, error)
}

// CachedFeatured keeps the promotional strip warm for a short window. The
// featured list is not a correctness-sensitive read, so a slightly stale
// answer is fine.
type CachedFeatured struct {
	repo  featuredRepository
	cache *gocache.Cache
}

func NewCachedFeatured(repo featuredRepository) *CachedFeatured {
	return &CachedFeatured{repo: repo, cache: gocache.New(time.Minute, 5*time.Minute)}
}

func (c *CachedFeatured) GetFeatured(ctx context.Context, limit int) ([]entities.Job, error) {
	key := strconv.Itoa(limit)
	if value, found := c.cache.Get(key); found {
		return value.([]entities.Job), nil
	}

	jobs, err := c.repo.GetFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}

	if err = c.cache.Add(key, jobs, gocache.DefaultExpiration); err != nil {
		return jobs, err
	}
	return jobs, nil
}

// Invalidate drops every cached window, called after a new featured posting
// lands so it shows up without waiting for expiry.
func (c *CachedFeatured) Invalidate() {
	c.cache.Flush()
}
