package usecase

import (
	"context"

	"contact-analytics-service/internal/contacts/core/domain"
	"contact-analytics-service/internal/contacts/core/ports"
)

type GetDatabaseStatsUseCase struct {
	reader ports.ContactReaderPort
}

func NewGetDatabaseStatsUseCase(reader ports.ContactReaderPort) *GetDatabaseStatsUseCase {
	return &GetDatabaseStatsUseCase{reader: reader}
}

func (uc *GetDatabaseStatsUseCase) Execute(ctx context.Context) (*domain.DatabaseStats, error) {
	stats, err := uc.reader.DatabaseStats(ctx)
	if err != nil {
		return nil, domain.NewDataAccessError("database stats", err)
	}
	return stats, nil
}

// RefreshUseCase drops every cached read so the next pass hits the store.
type RefreshUseCase struct {
	cache ports.CacheInvalidator
}

func NewRefreshUseCase(cache ports.CacheInvalidator) *RefreshUseCase {
	return &RefreshUseCase{cache: cache}
}

func (uc *RefreshUseCase) Execute(_ context.Context) error {
	if uc.cache != nil {
		uc.cache.Invalidate()
	}
	return nil
}
