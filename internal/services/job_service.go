package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"github.com/AbidMulla/off-compus-backend/domain"
)

// Default OpenGraph metadata applied when a posting omits it.
const (
	defaultOGImageWidth  = 1200
	defaultOGImageHeight = 630
	defaultOGLocale      = "en_US"
	defaultOGType        = "website"
	defaultCurrency      = "INR"
)

// JobServiceImpl implements domain.JobService
type JobServiceImpl struct {
	jobs  domain.JobRepository
	cache domain.JobCache
	log   *zap.Logger
}

// NewJobService creates a new job service
func NewJobService(jobs domain.JobRepository, cache domain.JobCache, log *zap.Logger) domain.JobService {
	return &JobServiceImpl{jobs: jobs, cache: cache, log: log}
}

// Create stores a new posting. A missing slug is derived from the
// title; a slug collision is rejected rather than deduplicated so the
// admin picks the public URL deliberately.
func (s *JobServiceImpl) Create(ctx context.Context, job *domain.Job, postedBy *uint) (*domain.Job, error) {
	if job.Slug == "" {
		job.Slug = slug.Make(job.JobTitle)
	}

	if _, err := s.jobs.FindBySlug(ctx, job.Slug); err == nil {
		return nil, domain.ErrSlugTaken
	} else if !errors.Is(err, domain.ErrJobNotFound) {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}

	applyJobDefaults(job)
	job.PostedBy = postedBy
	job.LastModifiedBy = postedBy

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	s.log.Info("audit event",
		zap.String("event_type", string(domain.JobCreatedEvent)),
		zap.Uint("job_id", job.ID),
		zap.String("slug", job.Slug))
	return job, nil
}

// List returns one page of postings with pagination metadata.
func (s *JobServiceImpl) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, domain.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	jobs, total, err := s.jobs.List(ctx, filter)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("failed to list jobs: %w", err)
	}

	pages := int(total) / filter.Limit
	if int(total)%filter.Limit != 0 {
		pages++
	}
	return jobs, domain.Pagination{
		Current: filter.Page,
		Pages:   pages,
		Total:   total,
	}, nil
}

// Get fetches a posting, serving from cache when possible.
func (s *JobServiceImpl) Get(ctx context.Context, id uint) (*domain.Job, error) {
	if cached, err := s.cache.Get(ctx, id); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		s.log.Warn("job cache read failed", zap.Uint("job_id", id), zap.Error(err))
	}

	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, job); err != nil {
		s.log.Warn("job cache write failed", zap.Uint("job_id", id), zap.Error(err))
	}
	return job, nil
}

// View returns a posting and records the view. The cached copy is
// invalidated so the next read reflects the counter.
func (s *JobServiceImpl) View(ctx context.Context, id uint) (*domain.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.jobs.IncrementViews(ctx, id); err != nil {
		s.log.Warn("failed to record job view", zap.Uint("job_id", id), zap.Error(err))
	} else {
		job.ViewCount++
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn("job cache invalidation failed", zap.Uint("job_id", id), zap.Error(err))
	}
	return job, nil
}

// Update applies non-empty fields of changes onto the stored posting.
// A changed slug is checked against existing postings first.
func (s *JobServiceImpl) Update(ctx context.Context, id uint, changes *domain.Job, modifiedBy *uint) (*domain.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if changes.Slug != "" && changes.Slug != job.Slug {
		if existing, err := s.jobs.FindBySlug(ctx, changes.Slug); err == nil && existing.ID != id {
			return nil, domain.ErrSlugTaken
		} else if err != nil && !errors.Is(err, domain.ErrJobNotFound) {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
	}

	mergeJob(job, changes)
	job.LastModifiedBy = modifiedBy

	// An active posting whose expiry has passed flips to Expired.
	if job.Status == domain.JobStatusActive && job.JobExpireDate != nil && job.JobExpireDate.Before(time.Now()) {
		job.Status = domain.JobStatusExpired
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn("job cache invalidation failed", zap.Uint("job_id", id), zap.Error(err))
	}

	s.log.Info("audit event",
		zap.String("event_type", string(domain.JobUpdatedEvent)),
		zap.Uint("job_id", job.ID))
	return job, nil
}

// Delete soft-deletes a posting and drops it from the cache.
func (s *JobServiceImpl) Delete(ctx context.Context, id uint, modifiedBy *uint) error {
	if err := s.jobs.SoftDelete(ctx, id, modifiedBy); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn("job cache invalidation failed", zap.Uint("job_id", id), zap.Error(err))
	}

	s.log.Info("audit event",
		zap.String("event_type", string(domain.JobDeletedEvent)),
		zap.Uint("job_id", id))
	return nil
}

func applyJobDefaults(job *domain.Job) {
	if job.Status == "" {
		job.Status = domain.JobStatusDraft
	}
	if job.Currency == "" {
		job.Currency = defaultCurrency
	}
	if job.OGTitle == "" {
		job.OGTitle = job.JobTitle
	}
	if job.OGDescription == "" {
		job.OGDescription = job.MetaDescription
	}
	if job.OGImageWidth == 0 {
		job.OGImageWidth = defaultOGImageWidth
	}
	if job.OGImageHeight == 0 {
		job.OGImageHeight = defaultOGImageHeight
	}
	if job.OGLocale == "" {
		job.OGLocale = defaultOGLocale
	}
	if job.OGType == "" {
		job.OGType = defaultOGType
	}
	if job.JobPostDate == nil {
		now := time.Now()
		job.JobPostDate = &now
	}
	if job.IsFeatured == nil {
		job.IsFeatured = new(bool)
	}
	if job.IsUrgent == nil {
		job.IsUrgent = new(bool)
	}
}

func mergeJob(dst, src *domain.Job) {
	if src.JobTitle != "" {
		dst.JobTitle = src.JobTitle
	}
	if src.Slug != "" {
		dst.Slug = src.Slug
	}
	if src.JobDescription != "" {
		dst.JobDescription = src.JobDescription
	}
	if src.JobProfile != "" {
		dst.JobProfile = src.JobProfile
	}
	if src.Company != "" {
		dst.Company = src.Company
	}
	if src.Location != "" {
		dst.Location = src.Location
	}
	if src.Batch != nil {
		dst.Batch = src.Batch
	}
	if src.Degrees != nil {
		dst.Degrees = src.Degrees
	}
	if src.MinSalary != nil {
		dst.MinSalary = src.MinSalary
	}
	if src.MaxSalary != nil {
		dst.MaxSalary = src.MaxSalary
	}
	if src.Currency != "" {
		dst.Currency = src.Currency
	}
	if src.SalaryType != "" {
		dst.SalaryType = src.SalaryType
	}
	if src.JobType != "" {
		dst.JobType = src.JobType
	}
	if src.EmploymentType != "" {
		dst.EmploymentType = src.EmploymentType
	}
	if src.ExperienceType != "" {
		dst.ExperienceType = src.ExperienceType
	}
	if src.JobPostDate != nil {
		dst.JobPostDate = src.JobPostDate
	}
	if src.JobPostTime != "" {
		dst.JobPostTime = src.JobPostTime
	}
	if src.JobExpireDate != nil {
		dst.JobExpireDate = src.JobExpireDate
	}
	if src.JobExpireTime != "" {
		dst.JobExpireTime = src.JobExpireTime
	}
	if src.Status != "" {
		dst.Status = src.Status
	}
	if src.Sections != nil {
		dst.Sections = src.Sections
	}
	if src.ApplyLink != "" {
		dst.ApplyLink = src.ApplyLink
	}
	if src.IsFeatured != nil {
		dst.IsFeatured = src.IsFeatured
	}
	if src.IsUrgent != nil {
		dst.IsUrgent = src.IsUrgent
	}
	if src.MetaTitle != "" {
		dst.MetaTitle = src.MetaTitle
	}
	if src.MetaDescription != "" {
		dst.MetaDescription = src.MetaDescription
	}
	if src.MetaKeywords != nil {
		dst.MetaKeywords = src.MetaKeywords
	}
	if src.SEOTitle != "" {
		dst.SEOTitle = src.SEOTitle
	}
	if src.SEODescription != "" {
		dst.SEODescription = src.SEODescription
	}
	if src.SEOKeywords != "" {
		dst.SEOKeywords = src.SEOKeywords
	}
	if src.OGTitle != "" {
		dst.OGTitle = src.OGTitle
	}
	if src.OGDescription != "" {
		dst.OGDescription = src.OGDescription
	}
	if src.OGImage != "" {
		dst.OGImage = src.OGImage
	}
	if src.OGImageWidth != 0 {
		dst.OGImageWidth = src.OGImageWidth
	}
	if src.OGImageHeight != 0 {
		dst.OGImageHeight = src.OGImageHeight
	}
	if src.OGImageAlt != "" {
		dst.OGImageAlt = src.OGImageAlt
	}
	if src.OGURL != "" {
		dst.OGURL = src.OGURL
	}
	if src.OGSiteName != "" {
		dst.OGSiteName = src.OGSiteName
	}
	if src.OGLocale != "" {
		dst.OGLocale = src.OGLocale
	}
	if src.OGType != "" {
		dst.OGType = src.OGType
	}
}
