package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tommeech/ecommerce-dashboard/internal/domain"
	"go.uber.org/zap"
)

// ErrNoOrderDates is returned when there are no orders to derive a date
// range from. The archive API rejects requests without dates, so no call
// is made.
var ErrNoOrderDates = errors.New("no order dates to derive a weather range from")

type DateRangeStore interface {
	OrderDateRange(ctx context.Context) (domain.OrderDateRange, error)
}

type WeatherArchive interface {
	DailyArchive(ctx context.Context, start, end string) (json.RawMessage, error)
}

type TemperatureService struct {
	store   DateRangeStore
	archive WeatherArchive
	logger  *zap.Logger
}

func NewTemperatureService(store DateRangeStore, archive WeatherArchive, logger *zap.Logger) *TemperatureService {
	return &TemperatureService{
		store:   store,
		archive: archive,
		logger:  logger,
	}
}

// TemperatureOverTime returns the archive response covering the first to
// the last order date.
func (s *TemperatureService) TemperatureOverTime(ctx context.Context) (json.RawMessage, error) {
	rng, err := s.store.OrderDateRange(ctx)
	if err != nil {
		return nil, err
	}
	if !rng.StartDate.Valid || !rng.EndDate.Valid {
		return nil, ErrNoOrderDates
	}

	data, err := s.archive.DailyArchive(ctx, rng.StartDate.String, rng.EndDate.String)
	if err != nil {
		return nil, fmt.Errorf("fetch temperatures %s..%s: %w", rng.StartDate.String, rng.EndDate.String, err)
	}

	s.logger.Debug("Temperature data fetched",
		zap.String("start_date", rng.StartDate.String),
		zap.String("end_date", rng.EndDate.String),
		zap.Int("bytes", len(data)))

	return data, nil
}
