package repositories

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/AbidMulla/off-compus-backend/domain"
)

// JobRepositoryImpl implements domain.JobRepository using GORM
type JobRepositoryImpl struct {
	db *gorm.DB
}

// DBJob represents the database model for a job posting. List-valued
// fields (batch, degrees, keywords, sections) are stored as JSON text.
type DBJob struct {
	ID             uint   `gorm:"primaryKey"`
	JobTitle       string `gorm:"size:255;index"`
	Slug           string `gorm:"uniqueIndex;size:255"`
	JobDescription string `gorm:"size:5000"`
	JobProfile     string `gorm:"size:1000"`
	Company        string `gorm:"size:255;index"`
	Location       string `gorm:"size:255;index"`

	Batch      string `gorm:"size:1000"`
	Degrees    string `gorm:"size:1000"`
	MinSalary  *int
	MaxSalary  *int
	Currency   string `gorm:"size:10"`
	SalaryType string `gorm:"size:50"`

	JobType        string `gorm:"size:50;index"`
	EmploymentType string `gorm:"size:50;index"`
	ExperienceType string `gorm:"size:50"`

	JobPostDate   *time.Time
	JobPostTime   string `gorm:"size:10"`
	JobExpireDate *time.Time `gorm:"index"`
	JobExpireTime string `gorm:"size:10"`
	Status        string `gorm:"size:50;index"`

	Sections  string `gorm:"type:text"`
	ApplyLink string `gorm:"size:500"`

	ViewCount       int
	ApplyClickCount int

	IsDeleted  bool `gorm:"index"`
	IsFeatured bool `gorm:"index"`
	IsUrgent   bool

	PostedBy       *uint `gorm:"index"`
	LastModifiedBy *uint

	MetaTitle       string `gorm:"size:500"`
	MetaDescription string `gorm:"size:500"`
	MetaKeywords    string `gorm:"size:1000"`

	SEOTitle       string `gorm:"size:255;index"`
	SEODescription string `gorm:"size:500"`
	SEOKeywords    string `gorm:"size:1000"`

	OGTitle       string `gorm:"size:255"`
	OGDescription string `gorm:"size:500"`
	OGImage       string `gorm:"size:500"`
	OGImageWidth  int
	OGImageHeight int
	OGImageAlt    string `gorm:"size:255"`
	OGURL         string `gorm:"size:500"`
	OGSiteName    string `gorm:"size:255"`
	OGLocale      string `gorm:"size:10"`
	OGType        string `gorm:"size:50"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (DBJob) TableName() string { return "jobs" }

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB) domain.JobRepository {
	return &JobRepositoryImpl{db: db}
}

// Create implements domain.JobRepository
func (r *JobRepositoryImpl) Create(ctx context.Context, job *domain.Job) error {
	dbJob := jobToDB(job)
	if err := r.db.WithContext(ctx).Create(dbJob).Error; err != nil {
		return err
	}
	job.ID = dbJob.ID
	job.CreatedAt = dbJob.CreatedAt
	job.UpdatedAt = dbJob.UpdatedAt
	return nil
}

// FindByID implements domain.JobRepository
func (r *JobRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Job, error) {
	var dbJob DBJob
	err := r.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&dbJob).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	return jobToDomain(&dbJob), nil
}

// FindBySlug implements domain.JobRepository
func (r *JobRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.Job, error) {
	var dbJob DBJob
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&dbJob).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	return jobToDomain(&dbJob), nil
}

// Update implements domain.JobRepository
func (r *JobRepositoryImpl) Update(ctx context.Context, job *domain.Job) error {
	dbJob := jobToDB(job)
	return r.db.WithContext(ctx).Save(dbJob).Error
}

// SoftDelete implements domain.JobRepository
func (r *JobRepositoryImpl) SoftDelete(ctx context.Context, id uint, modifiedBy *uint) error {
	result := r.db.WithContext(ctx).Model(&DBJob{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted":       true,
			"last_modified_by": modifiedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// List implements domain.JobRepository. Returns the page of jobs plus
// the total count matching the filter.
func (r *JobRepositoryImpl) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, int64, error) {
	query := r.db.WithContext(ctx).Model(&DBJob{}).Where("is_deleted = ?", false)

	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.JobType != "" && filter.JobType != "all" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if filter.Location != "" && filter.Location != "all" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.EmploymentType != "" && filter.EmploymentType != "all" {
		query = query.Where("employment_type = ?", filter.EmploymentType)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"job_title LIKE ? OR company LIKE ? OR location LIKE ? OR job_description LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	var dbJobs []DBJob
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&dbJobs).Error
	if err != nil {
		return nil, 0, err
	}

	jobs := make([]domain.Job, 0, len(dbJobs))
	for i := range dbJobs {
		jobs = append(jobs, *jobToDomain(&dbJobs[i]))
	}
	return jobs, total, nil
}

// IncrementViews implements domain.JobRepository
func (r *JobRepositoryImpl) IncrementViews(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&DBJob{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func marshalList(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func unmarshalStrings(data string) []string {
	if data == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return nil
	}
	return out
}

func unmarshalSections(data string) []domain.JobSection {
	if data == "" {
		return nil
	}
	var out []domain.JobSection
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return nil
	}
	return out
}

func boolValue(b *bool) bool { return b != nil && *b }

func boolPtr(b bool) *bool { return &b }

func jobToDB(job *domain.Job) *DBJob {
	return &DBJob{
		ID:             job.ID,
		JobTitle:       job.JobTitle,
		Slug:           job.Slug,
		JobDescription: job.JobDescription,
		JobProfile:     job.JobProfile,
		Company:        job.Company,
		Location:       job.Location,

		Batch:      marshalList(job.Batch),
		Degrees:    marshalList(job.Degrees),
		MinSalary:  job.MinSalary,
		MaxSalary:  job.MaxSalary,
		Currency:   job.Currency,
		SalaryType: job.SalaryType,

		JobType:        job.JobType,
		EmploymentType: job.EmploymentType,
		ExperienceType: job.ExperienceType,

		JobPostDate:   job.JobPostDate,
		JobPostTime:   job.JobPostTime,
		JobExpireDate: job.JobExpireDate,
		JobExpireTime: job.JobExpireTime,
		Status:        job.Status,

		Sections:  marshalList(job.Sections),
		ApplyLink: job.ApplyLink,

		ViewCount:       job.ViewCount,
		ApplyClickCount: job.ApplyClickCount,

		IsDeleted:  job.IsDeleted,
		IsFeatured: boolValue(job.IsFeatured),
		IsUrgent:   boolValue(job.IsUrgent),

		PostedBy:       job.PostedBy,
		LastModifiedBy: job.LastModifiedBy,

		MetaTitle:       job.MetaTitle,
		MetaDescription: job.MetaDescription,
		MetaKeywords:    marshalList(job.MetaKeywords),

		SEOTitle:       job.SEOTitle,
		SEODescription: job.SEODescription,
		SEOKeywords:    job.SEOKeywords,

		OGTitle:       job.OGTitle,
		OGDescription: job.OGDescription,
		OGImage:       job.OGImage,
		OGImageWidth:  job.OGImageWidth,
		OGImageHeight: job.OGImageHeight,
		OGImageAlt:    job.OGImageAlt,
		OGURL:         job.OGURL,
		OGSiteName:    job.OGSiteName,
		OGLocale:      job.OGLocale,
		OGType:        job.OGType,

		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}
}

func jobToDomain(dbJob *DBJob) *domain.Job {
	return &domain.Job{
		ID:             dbJob.ID,
		JobTitle:       dbJob.JobTitle,
		Slug:           dbJob.Slug,
		JobDescription: dbJob.JobDescription,
		JobProfile:     dbJob.JobProfile,
		Company:        dbJob.Company,
		Location:       dbJob.Location,

		Batch:      unmarshalStrings(dbJob.Batch),
		Degrees:    unmarshalStrings(dbJob.Degrees),
		MinSalary:  dbJob.MinSalary,
		MaxSalary:  dbJob.MaxSalary,
		Currency:   dbJob.Currency,
		SalaryType: dbJob.SalaryType,

		JobType:        dbJob.JobType,
		EmploymentType: dbJob.EmploymentType,
		ExperienceType: dbJob.ExperienceType,

		JobPostDate:   dbJob.JobPostDate,
		JobPostTime:   dbJob.JobPostTime,
		JobExpireDate: dbJob.JobExpireDate,
		JobExpireTime: dbJob.JobExpireTime,
		Status:        dbJob.Status,

		Sections:  unmarshalSections(dbJob.Sections),
		ApplyLink: dbJob.ApplyLink,

		ViewCount:       dbJob.ViewCount,
		ApplyClickCount: dbJob.ApplyClickCount,

		IsDeleted:  dbJob.IsDeleted,
		IsFeatured: boolPtr(dbJob.IsFeatured),
		IsUrgent:   boolPtr(dbJob.IsUrgent),

		PostedBy:       dbJob.PostedBy,
		LastModifiedBy: dbJob.LastModifiedBy,

		MetaTitle:       dbJob.MetaTitle,
		MetaDescription: dbJob.MetaDescription,
		MetaKeywords:    unmarshalStrings(dbJob.MetaKeywords),

		SEOTitle:       dbJob.SEOTitle,
		SEODescription: dbJob.SEODescription,
		SEOKeywords:    dbJob.SEOKeywords,

		OGTitle:       dbJob.OGTitle,
		OGDescription: dbJob.OGDescription,
		OGImage:       dbJob.OGImage,
		OGImageWidth:  dbJob.OGImageWidth,
		OGImageHeight: dbJob.OGImageHeight,
		OGImageAlt:    dbJob.OGImageAlt,
		OGURL:         dbJob.OGURL,
		OGSiteName:    dbJob.OGSiteName,
		OGLocale:      dbJob.OGLocale,
		OGType:        dbJob.OGType,

		CreatedAt: dbJob.CreatedAt,
		UpdatedAt: dbJob.UpdatedAt,
	}
}
