package memory_test

import (
	"context"
	"testing"
	"time"

	"study-planner-backend/internal/domain"
	"study-planner-backend/internal/repository/memory"
	"study-planner-backend/pkg/gpa"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newRepo(t *testing.T, latency memory.Latency) *memory.CatalogRepository {
	t.Helper()
	repo, err := memory.NewCatalogRepository(latency)
	require.NoError(t, err)
	return repo
}

func TestFetchUniversities(t *testing.T) {
	repo := newRepo(t, memory.Latency{})
	profile := domain.InitialProfile()

	unis, err := repo.FetchUniversities(context.Background(), &profile)
	require.NoError(t, err)
	require.Len(t, unis, 8)

	assert.Equal(t, "nyu", unis[0].ID)
	assert.Equal(t, 3.7, unis[0].MinGpaReq)
	assert.Equal(t, gpa.TierReach, unis[0].MatchProbability)
	assert.Equal(t, []string{"QS Top 50", "US News Top 30", "STEM Friendly"}, unis[0].Tags)

	t.Run("Profile does not filter the catalog", func(t *testing.T) {
		other := domain.StudentProfile{GPA: 1.0, Major: domain.MajorDataScience, TargetCountries: []string{"Australia"}}
		again, err := repo.FetchUniversities(context.Background(), &other)
		require.NoError(t, err)
		assert.Equal(t, unis, again)
	})

	t.Run("Callers cannot mutate the catalog", func(t *testing.T) {
		unis[0].Tags[0] = "changed"
		again, err := repo.FetchUniversities(context.Background(), &profile)
		require.NoError(t, err)
		assert.Equal(t, "QS Top 50", again[0].Tags[0])
	})
}

func TestFetchRoadmapCourses(t *testing.T) {
	repo := newRepo(t, memory.Latency{})
	profile := domain.InitialProfile()

	courses, err := repo.FetchRoadmapCourses(context.Background(), &profile, "nyu")
	require.NoError(t, err)
	require.Len(t, courses, 4)

	assert.Equal(t, "FIN4002", courses[0].Code)
	assert.Equal(t, 4, courses[0].Credits)
	assert.Equal(t, domain.DifficultyHard, courses[0].Difficulty)
	assert.Equal(t, gpa.LetterBPlus, courses[0].TargetGrade)
	assert.Equal(t, gpa.LetterCPlus, courses[0].BaselineGrade)

	for _, c := range courses {
		assert.True(t, c.Difficulty.IsValid(), c.Code)
		assert.True(t, c.TargetGrade.IsValid(), c.Code)
		assert.True(t, c.BaselineGrade.IsValid(), c.Code)
	}
}

func TestSaveProfileEchoes(t *testing.T) {
	repo := newRepo(t, memory.Latency{})
	profile := domain.InitialProfile()

	saved, err := repo.SaveProfile(context.Background(), &profile)
	require.NoError(t, err)
	assert.Equal(t, profile, *saved)

	saved.TargetCountries[0] = "Singapore"
	assert.Equal(t, "USA", profile.TargetCountries[0])
}

func TestSimulatedLatency(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := newRepo(t, memory.Latency{Universities: 30 * time.Millisecond})
	profile := domain.InitialProfile()

	t.Run("Waits before returning", func(t *testing.T) {
		start := time.Now()
		_, err := repo.FetchUniversities(context.Background(), &profile)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("Cancelled context aborts the wait", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := repo.FetchUniversities(ctx, &profile)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Deadline shorter than latency fails", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
		defer cancel()
		_, err := repo.FetchUniversities(ctx, &profile)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestDefaultLatency(t *testing.T) {
	l := memory.DefaultLatency()
	assert.Equal(t, time.Second, l.Universities)
	assert.Equal(t, 1200*time.Millisecond, l.Courses)
	assert.Equal(t, 800*time.Millisecond, l.SaveProfile)
}
