package service

import (
	"context"
	"fmt"
	"time"
	"wander/config"
	"wander/infras/kafka"
	"wander/infras/otel"
	"wander/internal/domains/booking/model"
	"wander/internal/domains/booking/model/dto"
	"wander/internal/domains/booking/repository"
	expModel "wander/internal/domains/experience/model"
	expRepo "wander/internal/domains/experience/repository"
	"wander/shared"
	"wander/shared/cache"
	"wander/shared/constant"
	gDto "wander/shared/dto"
	"wander/shared/failure"
	"wander/shared/lockmap"
	"wander/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheAvailability  = "booking:availability"

	// A requested window wider than this is almost certainly a client bug.
	maxAvailabilityWindowDays = 366
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingUpdated   = "booking.updated"
	EventBookingCancelled = "booking.cancelled"
	EventBookingDeleted   = "booking.deleted"
)

// BookingEvent is the payload published to the booking lifecycle topic after
// a mutation commits.
type BookingEvent struct {
	Event        string `json:"event"`
	BookingID    string `json:"booking_id"`
	ExperienceID string `json:"experience_id"`
	TravelDate   string `json:"travel_date"`
	GuestsCount  int    `json:"guests_count"`
	Status       string `json:"status"`
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Availability(ctx context.Context, experienceID, from, to string) (dto.AvailabilityResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.Booking
	expRepo expRepo.Experience
	cfg     *config.Config
	cache   cache.RedisCache
	kafka   kafka.Client
	locks   *lockmap.LockMap
	otel    otel.Otel
}

func New(repo repository.Booking, expRepo expRepo.Experience, cfg *config.Config, cache cache.RedisCache, kafkaClient kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:    repo,
		expRepo: expRepo,
		cfg:     cfg,
		cache:   cache,
		kafka:   kafkaClient,
		locks:   lockmap.New(),
		otel:    otel,
	}
}

// lockKey serializes admission per experience and travel date. Bookings for
// other dates or experiences never contend.
func lockKey(experienceID string, travelDate time.Time) string {
	return experienceID + "|" + travelDate.Format(constant.DateOnlyFormat)
}

func startOfToday() time.Time {
	now := timezone.Now()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *serviceImpl) getExperience(ctx context.Context, id string) (expModel.Experience, error) {
	exp, err := s.expRepo.Get(ctx, shared.FilterByID(id, expModel.FieldID, expModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get experience")

		return exp, failure.Unavailable("experience store is unavailable") // nolint:wrapcheck
	}

	if exp.ID == constant.Empty || !exp.Active {
		return exp, failure.NotFound("experience not found") // nolint:wrapcheck
	}

	return exp, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := req.ToModel(user, s.cfg.Booking.DefaultStatus)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid travel date: %v", err)) // nolint:wrapcheck
	}

	if booking.TravelDate.Before(startOfToday()) {
		return res, failure.BadRequestFromString("travel date is in the past") // nolint:wrapcheck
	}

	if booking.GuestsCount < 1 {
		return res, failure.BadRequestFromString("guests count must be at least 1") // nolint:wrapcheck
	}

	exp, err := s.getExperience(ctx, booking.ExperienceID)
	if err != nil {
		return res, err
	}

	booking.TotalAmount = exp.PriceAmount * int64(booking.GuestsCount)
	booking.Currency = exp.Currency

	// The committed total is re-read under the lock so two admissions for the
	// same experience and date can never both observe the pre-insert sum.
	unlock := s.locks.Lock(lockKey(booking.ExperienceID, booking.TravelDate))
	defer unlock()

	booked, err := s.repo.SumGuests(ctx, booking.ExperienceID, booking.TravelDate, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum booked guests")

		return res, failure.Unavailable("booking store is unavailable") // nolint:wrapcheck
	}

	if booked+booking.GuestsCount > exp.MaxCapacity {
		return res, failure.Conflict(fmt.Sprintf("capacity exceeded: %d of %d seats already booked", booked, exp.MaxCapacity)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, failure.Unavailable("booking store is unavailable") // nolint:wrapcheck
	}

	s.afterMutation(ctx, EventBookingCreated, booking)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Availability(ctx context.Context, experienceID, from, to string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	fromDate := startOfToday()
	if from != constant.Empty {
		if fromDate, err = time.Parse(constant.DateOnlyFormat, from); err != nil {
			return res, failure.BadRequestFromString(fmt.Sprintf("invalid from date: %v", err)) // nolint:wrapcheck
		}
	}

	toDate := fromDate.AddDate(0, 0, constant.DefaultAvailabilityWindowDays-1)
	if to != constant.Empty {
		if toDate, err = time.Parse(constant.DateOnlyFormat, to); err != nil {
			return res, failure.BadRequestFromString(fmt.Sprintf("invalid to date: %v", err)) // nolint:wrapcheck
		}
	}

	if toDate.Before(fromDate) {
		return res, failure.BadRequestFromString("to date must not be before from date") // nolint:wrapcheck
	}

	if toDate.Sub(fromDate) > maxAvailabilityWindowDays*24*time.Hour {
		return res, failure.BadRequestFromString("date range is too wide") // nolint:wrapcheck
	}

	exp, err := s.getExperience(ctx, experienceID)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheAvailability, experienceID, fromDate.Format(constant.DateOnlyFormat), toDate.Format(constant.DateOnlyFormat))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return res, nil
	}

	totals, err := s.repo.GuestTotalsByRange(ctx, experienceID, fromDate, toDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest totals")

		return res, failure.Unavailable("booking store is unavailable") // nolint:wrapcheck
	}

	bookedByDate := make(map[string]int, len(totals))
	for _, t := range totals {
		bookedByDate[t.TravelDate.Format(constant.DateOnlyFormat)] = t.Guests
	}

	res.ExperienceID = experienceID
	res.From = fromDate.Format(constant.DateOnlyFormat)
	res.To = toDate.Format(constant.DateOnlyFormat)

	for d := fromDate; !d.After(toDate); d = d.AddDate(0, 0, 1) {
		date := d.Format(constant.DateOnlyFormat)
		booked := bookedByDate[date]

		res.Days = append(res.Days, dto.DayAvailability{
			Date:      date,
			Capacity:  exp.MaxCapacity,
			Booked:    booked,
			Remaining: exp.MaxCapacity - booked,
		})
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.AvailabilityTTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	existing, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if existing.ID == constant.Empty {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	// A cancelled booking is terminal. Repeating the cancellation is an
	// idempotent no-op; anything else is a conflict.
	if existing.Status == model.StatusCancelled {
		if req.Status == model.StatusCancelled {
			return nil
		}

		return failure.Conflict("booking is cancelled") // nolint:wrapcheck
	}

	newStatus := existing.Status
	if req.Status != constant.Empty {
		newStatus = req.Status
	}

	newDate := existing.TravelDate
	if req.TravelDate != constant.Empty {
		if newDate, err = time.Parse(constant.DateOnlyFormat, req.TravelDate); err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid travel date: %v", err)) // nolint:wrapcheck
		}
	}

	newGuests := existing.GuestsCount
	if req.GuestsCount != nil {
		newGuests = *req.GuestsCount
	}

	updatedFields := shared.TransformFields(req, user)

	dateChanged := !newDate.Equal(existing.TravelDate)
	guestsChanged := newGuests != existing.GuestsCount

	if dateChanged {
		updatedFields[model.FieldTravelDate] = newDate
	}

	if guestsChanged {
		updatedFields[model.FieldGuestsCount] = newGuests
	}

	// Moving or resizing a live booking is re-admitted from scratch: both the
	// old and new date keys are held so the self-excluded sum cannot race a
	// concurrent create on either date.
	if model.ConsumesCapacity(newStatus) && (dateChanged || guestsChanged) {
		if newDate.Before(startOfToday()) {
			return failure.BadRequestFromString("travel date is in the past") // nolint:wrapcheck
		}

		exp, err := s.getExperience(ctx, existing.ExperienceID)
		if err != nil {
			return err
		}

		unlock := s.locks.LockAll(lockKey(existing.ExperienceID, existing.TravelDate), lockKey(existing.ExperienceID, newDate))
		defer unlock()

		booked, err := s.repo.SumGuests(ctx, existing.ExperienceID, newDate, existing.ID)
		if err != nil {
			log.Error().Err(err).Msg("failed to sum booked guests")

			return failure.Unavailable("booking store is unavailable") // nolint:wrapcheck
		}

		if booked+newGuests > exp.MaxCapacity {
			return failure.Conflict(fmt.Sprintf("capacity exceeded: %d of %d seats already booked", booked, exp.MaxCapacity)) // nolint:wrapcheck
		}
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return failure.Unavailable("booking store is unavailable") // nolint:wrapcheck
	}

	updated := existing
	updated.TravelDate = newDate
	updated.GuestsCount = newGuests
	updated.Status = newStatus

	event := EventBookingUpdated
	if newStatus == model.StatusCancelled {
		event = EventBookingCancelled
	}

	s.afterMutation(ctx, event, updated)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	existing, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if existing.ID == constant.Empty {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return failure.Unavailable("booking store is unavailable") // nolint:wrapcheck
	}

	s.afterMutation(ctx, EventBookingDeleted, existing)

	return nil
}

// afterMutation invalidates every cached view a committed mutation may have
// staled and publishes the lifecycle event. Both run off the request path.
func (s *serviceImpl) afterMutation(ctx context.Context, event string, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheAvailability, booking.ExperienceID))

		payload := BookingEvent{
			Event:        event,
			BookingID:    booking.ID,
			ExperienceID: booking.ExperienceID,
			TravelDate:   booking.TravelDate.Format(constant.DateOnlyFormat),
			GuestsCount:  booking.GuestsCount,
			Status:       booking.Status,
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.BookingTopic, kafka.Message{Key: booking.ID, Value: payload}); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
		}
	}()
}
