package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AbidMulla/off-compus-backend/domain"
	"github.com/AbidMulla/off-compus-backend/internal/http/response"
)

// JobHandlers handles admin job management HTTP requests
type JobHandlers struct {
	jobSvc domain.JobService
}

// NewJobHandlers creates new job handlers
func NewJobHandlers(jobSvc domain.JobService) *JobHandlers {
	return &JobHandlers{jobSvc: jobSvc}
}

// JobSectionRequest is one titled block of the posting body
type JobSectionRequest struct {
	Title       string   `json:"title"`
	Description []string `json:"description"`
	Type        string   `json:"type"`
	Order       int      `json:"order"`
}

// JobRequest carries a job posting create or update payload. Post and
// expire timestamps arrive as separate date and time strings and are
// combined server-side. Updates may send any subset of fields, so
// required-field checks happen in AddJob rather than via binding tags.
type JobRequest struct {
	JobTitle       string   `json:"job_title"`
	JobSlug        string   `json:"job_slug"`
	JobDescription string   `json:"job_description"`
	JobProfile     string   `json:"job_profile"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Batch          []string `json:"batch"`
	Degrees        []string `json:"degrees"`
	MinSalary      *int     `json:"min_salary"`
	MaxSalary      *int     `json:"max_salary"`
	Currency       string   `json:"currency"`
	SalaryType     string   `json:"salary_type"`
	JobType        string   `json:"job_type"`
	EmploymentType string   `json:"employment_type"`
	ExperienceType string   `json:"experience_type"`
	JobPostDate    string   `json:"job_post_date"`
	JobPostTime    string   `json:"job_post_time"`
	JobExpireDate  string   `json:"job_expire_date"`
	JobExpireTime  string   `json:"job_expire_time"`
	Status         string   `json:"status"`
	ApplyLink      string   `json:"apply_link"`
	IsFeatured     *bool    `json:"is_featured"`
	IsUrgent       *bool    `json:"is_urgent"`

	Sections []JobSectionRequest `json:"title_and_description_json"`

	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	MetaKeywords    []string `json:"meta_keywords"`

	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
	SEOKeywords    string `json:"seo_keywords"`

	OGTitle       string `json:"og_title"`
	OGDescription string `json:"og_description"`
	OGImage       string `json:"og_image"`
	OGImageWidth  int    `json:"og_image_width"`
	OGImageHeight int    `json:"og_image_height"`
	OGImageAlt    string `json:"og_image_alt"`
	OGURL         string `json:"og_url"`
	OGSiteName    string `json:"og_site_name"`
	OGLocale      string `json:"og_locale"`
	OGType        string `json:"og_type"`
}

// combineDateTime merges "2006-01-02" and "15:04" inputs into one
// timestamp; the time part is optional.
func combineDateTime(date, clock string) *time.Time {
	if date == "" {
		return nil
	}
	if clock != "" {
		if t, err := time.Parse("2006-01-02T15:04", date+"T"+clock); err == nil {
			return &t
		}
	}
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return &t
	}
	return nil
}

// missingFields lists the fields a new posting cannot do without.
func (r *JobRequest) missingFields() []string {
	var errs []string
	if r.JobTitle == "" {
		errs = append(errs, "job_title is required")
	}
	if r.Company == "" {
		errs = append(errs, "company is required")
	}
	return errs
}

func (r *JobRequest) toDomain() *domain.Job {
	sections := make([]domain.JobSection, 0, len(r.Sections))
	for _, s := range r.Sections {
		sections = append(sections, domain.JobSection{
			Title:       s.Title,
			Description: s.Description,
			Type:        s.Type,
			Order:       s.Order,
		})
	}

	return &domain.Job{
		JobTitle:       r.JobTitle,
		Slug:           r.JobSlug,
		JobDescription: r.JobDescription,
		JobProfile:     r.JobProfile,
		Company:        r.Company,
		Location:       r.Location,
		Batch:          r.Batch,
		Degrees:        r.Degrees,
		MinSalary:      r.MinSalary,
		MaxSalary:      r.MaxSalary,
		Currency:       r.Currency,
		SalaryType:     r.SalaryType,
		JobType:        r.JobType,
		EmploymentType: r.EmploymentType,
		ExperienceType: r.ExperienceType,
		JobPostDate:    combineDateTime(r.JobPostDate, r.JobPostTime),
		JobPostTime:    r.JobPostTime,
		JobExpireDate:  combineDateTime(r.JobExpireDate, r.JobExpireTime),
		JobExpireTime:  r.JobExpireTime,
		Status:         r.Status,
		Sections:       sections,
		ApplyLink:      r.ApplyLink,
		IsFeatured:     r.IsFeatured,
		IsUrgent:       r.IsUrgent,

		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		MetaKeywords:    r.MetaKeywords,

		SEOTitle:       r.SEOTitle,
		SEODescription: r.SEODescription,
		SEOKeywords:    r.SEOKeywords,

		OGTitle:       r.OGTitle,
		OGDescription: r.OGDescription,
		OGImage:       r.OGImage,
		OGImageWidth:  r.OGImageWidth,
		OGImageHeight: r.OGImageHeight,
		OGImageAlt:    r.OGImageAlt,
		OGURL:         r.OGURL,
		OGSiteName:    r.OGSiteName,
		OGLocale:      r.OGLocale,
		OGType:        r.OGType,
	}
}

// actorID returns the authenticated user's id from the request context.
func actorID(c *gin.Context) *uint {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}

// AddJob creates a new job posting
func (h *JobHandlers) AddJob(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, []string{err.Error()})
		return
	}
	if errs := req.missingFields(); len(errs) > 0 {
		response.ValidationError(c, errs)
		return
	}

	job, err := h.jobSvc.Create(c.Request.Context(), req.toDomain(), actorID(c))
	if err != nil {
		if errors.Is(err, domain.ErrSlugTaken) {
			response.Error(c, http.StatusBadRequest, "A job with this slug already exists. Please use a different slug.")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Created(c, "Job created successfully", job)
}

// GetJobs lists job postings with filters and pagination
func (h *JobHandlers) GetJobs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := domain.JobFilter{
		Page:           page,
		Limit:          limit,
		Status:         c.Query("status"),
		Search:         c.Query("search"),
		JobType:        c.Query("job_type"),
		Location:       c.Query("location"),
		EmploymentType: c.Query("employment_type"),
	}

	jobs, pagination, err := h.jobSvc.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.List(c, jobs, pagination)
}

// GetJob fetches one job posting by id
func (h *JobHandlers) GetJob(c *gin.Context) {
	id, ok := h.jobID(c)
	if !ok {
		return
	}

	job, err := h.jobSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeJobError(c, err)
		return
	}

	response.OK(c, "", job)
}

// ViewJob fetches one job posting and records the view
func (h *JobHandlers) ViewJob(c *gin.Context) {
	id, ok := h.jobID(c)
	if !ok {
		return
	}

	job, err := h.jobSvc.View(c.Request.Context(), id)
	if err != nil {
		h.writeJobError(c, err)
		return
	}

	response.OK(c, "", job)
}

// UpdateJob applies changes to an existing posting
func (h *JobHandlers) UpdateJob(c *gin.Context) {
	id, ok := h.jobID(c)
	if !ok {
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, []string{err.Error()})
		return
	}

	job, err := h.jobSvc.Update(c.Request.Context(), id, req.toDomain(), actorID(c))
	if err != nil {
		if errors.Is(err, domain.ErrSlugTaken) {
			response.Error(c, http.StatusBadRequest, "A job with this slug already exists. Please use a different slug.")
			return
		}
		h.writeJobError(c, err)
		return
	}

	response.OK(c, "Job updated successfully", job)
}

// DeleteJob soft-deletes a posting
func (h *JobHandlers) DeleteJob(c *gin.Context) {
	id, ok := h.jobID(c)
	if !ok {
		return
	}

	if err := h.jobSvc.Delete(c.Request.Context(), id, actorID(c)); err != nil {
		h.writeJobError(c, err)
		return
	}

	response.OK(c, "Job deleted successfully", nil)
}

func (h *JobHandlers) jobID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid job id")
		return 0, false
	}
	return uint(id), true
}

func (h *JobHandlers) writeJobError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrJobNotFound) {
		response.Error(c, http.StatusNotFound, "Job not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "Internal server error")
}
