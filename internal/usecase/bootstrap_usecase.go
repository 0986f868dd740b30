package usecase

import (
	"context"

	"study-planner-backend/internal/domain"
	"study-planner-backend/pkg/gpa"

	"golang.org/x/sync/errgroup"
)

type bootstrapUsecase struct {
	consultant domain.ConsultantUsecase
	planner    domain.PlannerUsecase
}

func NewBootstrapUsecase(consultant domain.ConsultantUsecase, planner domain.PlannerUsecase) domain.BootstrapUsecase {
	return &bootstrapUsecase{
		consultant: consultant,
		planner:    planner,
	}
}

// Load fetches the strategy map and the roadmap concurrently for the initial profile
func (u *bootstrapUsecase) Load(ctx context.Context) (*domain.Bootstrap, error) {
	profile := domain.InitialProfile()
	out := &domain.Bootstrap{
		Profile:    profile,
		Options:    u.consultant.Options(),
		GradeScale: gpa.Scale(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p := profile
		res, err := u.consultant.LoadUniversities(gctx, &p)
		if err != nil {
			return err
		}
		out.Universities = res.Universities
		return nil
	})
	g.Go(func() error {
		p := profile
		roadmap, err := u.planner.LoadRoadmap(gctx, &p, *profile.DreamSchoolID)
		if err != nil {
			return err
		}
		out.Roadmap = roadmap
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
