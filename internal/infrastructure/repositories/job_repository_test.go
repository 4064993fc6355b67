package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbidMulla/off-compus-backend/domain"
)

func seedJob(t *testing.T, repo domain.JobRepository, job *domain.Job) *domain.Job {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), job))
	return job
}

func TestJobRepositoryRoundtrip(t *testing.T) {
	repo := NewJobRepository(setupTestDB(t))
	ctx := context.Background()

	min, max := 400000, 700000
	job := seedJob(t, repo, &domain.Job{
		JobTitle:  "Graduate Engineer",
		Slug:      "graduate-engineer",
		Company:   "Acme",
		Location:  "Pune",
		Batch:     []string{"2025", "2026"},
		Degrees:   []string{"B.Tech", "MCA"},
		MinSalary: &min,
		MaxSalary: &max,
		Status:    domain.JobStatusActive,
		Sections: []domain.JobSection{
			{Title: "About", Description: []string{"Great team"}, Type: "text", Order: 1},
		},
		MetaKeywords: []string{"jobs", "freshers"},
		IsFeatured:   boolPtr(true),
	})

	found, err := repo.FindByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025", "2026"}, found.Batch)
	assert.Equal(t, []string{"B.Tech", "MCA"}, found.Degrees)
	require.Len(t, found.Sections, 1)
	assert.Equal(t, "About", found.Sections[0].Title)
	assert.Equal(t, []string{"jobs", "freshers"}, found.MetaKeywords)
	require.NotNil(t, found.MinSalary)
	assert.Equal(t, 400000, *found.MinSalary)
	require.NotNil(t, found.IsFeatured)
	assert.True(t, *found.IsFeatured)
	require.NotNil(t, found.IsUrgent)
	assert.False(t, *found.IsUrgent)

	bySlug, err := repo.FindBySlug(ctx, "graduate-engineer")
	require.NoError(t, err)
	assert.Equal(t, job.ID, bySlug.ID)
}

func TestJobRepositorySoftDelete(t *testing.T) {
	repo := NewJobRepository(setupTestDB(t))
	ctx := context.Background()

	job := seedJob(t, repo, &domain.Job{JobTitle: "Gone", Slug: "gone", Company: "Acme"})
	admin := uint(3)

	require.NoError(t, repo.SoftDelete(ctx, job.ID, &admin))

	_, err := repo.FindByID(ctx, job.ID)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)

	// Repeating the delete reports not found.
	assert.ErrorIs(t, repo.SoftDelete(ctx, job.ID, &admin), domain.ErrJobNotFound)
}

func TestJobRepositoryListFilters(t *testing.T) {
	repo := NewJobRepository(setupTestDB(t))
	ctx := context.Background()

	seedJob(t, repo, &domain.Job{JobTitle: "Backend Intern", Slug: "backend-intern", Company: "Acme", Location: "Pune", JobType: "remote", EmploymentType: "internship", Status: domain.JobStatusActive})
	seedJob(t, repo, &domain.Job{JobTitle: "Frontend Engineer", Slug: "frontend-engineer", Company: "Globex", Location: "Mumbai", JobType: "onsite", EmploymentType: "full-time", Status: domain.JobStatusActive})
	seedJob(t, repo, &domain.Job{JobTitle: "Data Analyst", Slug: "data-analyst", Company: "Acme", Location: "Pune", JobType: "remote", EmploymentType: "full-time", Status: domain.JobStatusDraft})

	jobs, total, err := repo.List(ctx, domain.JobFilter{Page: 1, Limit: 10, Status: domain.JobStatusActive})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, jobs, 2)

	// "all" disables a filter.
	_, total, err = repo.List(ctx, domain.JobFilter{Page: 1, Limit: 10, Status: "all"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	jobs, total, err = repo.List(ctx, domain.JobFilter{Page: 1, Limit: 10, JobType: "remote", EmploymentType: "full-time"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Data Analyst", jobs[0].JobTitle)

	// Search matches across title, company, location and description.
	_, total, err = repo.List(ctx, domain.JobFilter{Page: 1, Limit: 10, Search: "Globex"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestJobRepositoryListExcludesDeleted(t *testing.T) {
	repo := NewJobRepository(setupTestDB(t))
	ctx := context.Background()

	job := seedJob(t, repo, &domain.Job{JobTitle: "Hidden", Slug: "hidden", Company: "Acme"})
	seedJob(t, repo, &domain.Job{JobTitle: "Visible", Slug: "visible", Company: "Acme"})

	require.NoError(t, repo.SoftDelete(ctx, job.ID, nil))

	jobs, total, err := repo.List(ctx, domain.JobFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Visible", jobs[0].JobTitle)
}

func TestJobRepositoryListPagination(t *testing.T) {
	repo := NewJobRepository(setupTestDB(t))

	for i := 0; i < 25; i++ {
		seedJob(t, repo, &domain.Job{
			JobTitle: "Role",
			Slug:     "role-" + string(rune('a'+i)),
			Company:  "Acme",
		})
	}

	jobs, total, err := repo.List(context.Background(), domain.JobFilter{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, jobs, 5)
}

func TestJobRepositoryIncrementViews(t *testing.T) {
	repo := NewJobRepository(setupTestDB(t))
	ctx := context.Background()

	job := seedJob(t, repo, &domain.Job{JobTitle: "Counted", Slug: "counted", Company: "Acme"})

	require.NoError(t, repo.IncrementViews(ctx, job.ID))
	require.NoError(t, repo.IncrementViews(ctx, job.ID))

	found, err := repo.FindByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.ViewCount)
}
