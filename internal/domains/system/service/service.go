package service

import (
	"campsite/infras/otel"
	"campsite/infras/postgres"
	"campsite/internal/domains/system/model/dto"
	"campsite/shared/constant"
	"campsite/shared/failure"
	"campsite/shared/timezone"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type System interface {
	Health(ctx context.Context) (dto.HealthResponse, error)
}

type serviceImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) System {
	return &serviceImpl{
		db:   db,
		otel: otel,
	}
}

// Health probes store liveness with a no-op query.
func (s *serviceImpl) Health(ctx context.Context) (res dto.HealthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Health")
	defer scope.End()
	defer scope.TraceIfError(err)

	var one int
	if err = s.db.Read.GetContext(ctx, &one, "SELECT 1"); err != nil {
		log.Error().Err(err).Msg("health check query failed")

		return res, failure.InternalError(fmt.Errorf("database connection failed: %w", err)) // nolint:wrapcheck
	}

	res = dto.HealthResponse{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: timezone.Format(timezone.Now(), time.RFC3339),
	}

	return res, nil
}
