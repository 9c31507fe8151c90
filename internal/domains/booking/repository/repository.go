package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"wander/infras/otel"
	"wander/infras/postgres"
	"wander/internal/domains/booking/model"
	"wander/shared/constant"
	gDto "wander/shared/dto"
	"wander/shared/logger"
	gRepo "wander/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	// SumGuests returns the committed (pending+confirmed) guest total for one
	// experience and travel date. It always reads the write connection so the
	// admission decision never sees replica lag; excludeBookingID, when
	// non-empty, leaves that booking out of the sum (used when re-validating
	// an edit as a fresh admission).
	SumGuests(ctx context.Context, experienceID string, travelDate time.Time, excludeBookingID string) (int, error)

	// GuestTotalsByRange returns, per travel date in [from, to], the summed
	// non-cancelled guest count. Dates with no bookings are absent.
	GuestTotalsByRange(ctx context.Context, experienceID string, from, to time.Time) ([]model.DateGuests, error)

	// MaxDailyGuestsFrom returns the highest committed guest total over all
	// travel dates on or after from. Zero when there are none.
	MaxDailyGuestsFrom(ctx context.Context, experienceID string, from time.Time) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) SumGuests(ctx context.Context, experienceID string, travelDate time.Time, excludeBookingID string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.SumGuests")
	defer scope.End()

	query := `SELECT COALESCE(SUM(guests_count), 0)
		FROM bookings
		WHERE experience_id = :experience_id
		  AND travel_date = :travel_date
		  AND status IN ('pending', 'confirmed')`

	args := map[string]any{
		"experience_id": experienceID,
		"travel_date":   travelDate,
	}

	if excludeBookingID != "" {
		query += " AND id != :exclude_id"
		args["exclude_id"] = excludeBookingID
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var sum int

	prepare, err := repo.db.Write.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &sum, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum booked guests (%s): %w", model.EntityName, err)
	}

	return sum, nil
}

func (repo *repositoryImpl) GuestTotalsByRange(ctx context.Context, experienceID string, from, to time.Time) ([]model.DateGuests, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GuestTotalsByRange")
	defer scope.End()

	const query = `SELECT travel_date, SUM(guests_count) AS guests
		FROM bookings
		WHERE experience_id = :experience_id
		  AND travel_date BETWEEN :from AND :to
		  AND status IN ('pending', 'confirmed')
		GROUP BY travel_date
		ORDER BY travel_date`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"experience_id": experienceID,
		"from":          from,
		"to":            to,
	}

	var totals []model.DateGuests

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &totals, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get guest totals (%s): %w", model.EntityName, err)
	}

	return totals, nil
}

func (repo *repositoryImpl) MaxDailyGuestsFrom(ctx context.Context, experienceID string, from time.Time) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.MaxDailyGuestsFrom")
	defer scope.End()

	const query = `SELECT COALESCE(MAX(daily.guests), 0) FROM (
			SELECT SUM(guests_count) AS guests
			FROM bookings
			WHERE experience_id = :experience_id
			  AND travel_date >= :from
			  AND status IN ('pending', 'confirmed')
			GROUP BY travel_date
		) AS daily`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"experience_id": experienceID,
		"from":          from,
	}

	var maxGuests int

	prepare, err := repo.db.Write.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &maxGuests, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to get max daily guests (%s): %w", model.EntityName, err)
	}

	return maxGuests, nil
}
