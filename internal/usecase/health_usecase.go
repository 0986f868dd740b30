package usecase

import (
	"context"
	"time"
)

// HealthProbe reports whether an optional backend is reachable
type HealthProbe func(ctx context.Context) error

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	probes map[string]HealthProbe
}

// NewHealthUsecase takes one probe per configured backend. Backends left out report "disabled".
func NewHealthUsecase(probes map[string]HealthProbe) HealthUsecase {
	return &healthUsecase{probes: probes}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":   "ok",
		"database": "disabled",
		"redis":    "disabled",
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	for name, probe := range u.probes {
		if probe == nil {
			continue
		}
		if err := probe(ctx); err != nil {
			status[name] = "unavailable"
			status["status"] = "degraded"
			continue
		}
		status[name] = "ok"
	}
	return status
}
