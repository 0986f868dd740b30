package postgres

import (
	"context"

	"study-planner-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

// Querier is the subset of *pgxpool.Pool the catalog needs. Tests pass a fake.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type catalogRepo struct {
	db Querier
}

// CatalogRepository reads the reference catalog. It never writes.
type CatalogRepository interface {
	domain.UniversityRepository
	domain.CourseRepository
}

func NewCatalogRepository(db Querier) CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) FetchUniversities(ctx context.Context, profile *domain.StudentProfile) ([]domain.University, error) {
	query := `SELECT id, name, location, COALESCE(logo_url, ''), min_gpa_req, tags, match_probability
              FROM universities ORDER BY sort_order, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	universities := []domain.University{}
	for rows.Next() {
		var u domain.University
		var tags []string
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Location, &u.LogoURL, &u.MinGpaReq,
			pq.Array(&tags), &u.MatchProbability,
		); err != nil {
			return nil, err
		}
		u.Tags = tags
		universities = append(universities, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return universities, nil
}

func (r *catalogRepo) FetchRoadmapCourses(ctx context.Context, profile *domain.StudentProfile, targetSchoolID string) ([]domain.Course, error) {
	query := `SELECT code, name, credits, difficulty, target_grade, baseline_grade
              FROM roadmap_courses ORDER BY sort_order, code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []domain.Course{}
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(
			&c.Code, &c.Name, &c.Credits, &c.Difficulty, &c.TargetGrade, &c.BaselineGrade,
		); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}
