package services

import (
	"context"

	"github.com/yigit/schoolfm/internal/pkg/apperrors"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthService reports whether the store is reachable.
type HealthService interface {
	Check(ctx context.Context) error
}

type healthServiceImpl struct {
	db Pinger
}

// NewHealthService creates a new health service instance
func NewHealthService(db Pinger) HealthService {
	return &healthServiceImpl{db: db}
}

func (s *healthServiceImpl) Check(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return apperrors.NewStorageError("database unreachable", err)
	}
	return nil
}
