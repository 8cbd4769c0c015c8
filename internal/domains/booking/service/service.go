package service

import (
	"context"
	"fmt"
	"strings"

	"lux/config"
	"lux/infras/otel"
	"lux/infras/s3"
	"lux/internal/domains/booking/model"
	"lux/internal/domains/booking/model/dto"
	"lux/internal/domains/booking/repository"
	roomModel "lux/internal/domains/room/model"
	roomRepository "lux/internal/domains/room/repository"
	"lux/shared"
	"lux/shared/cache"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	"lux/shared/failure"
	"lux/shared/reference"
	"lux/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheRoomPrefix    = "room"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetByReference(ctx context.Context, ref string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
	UploadPaymentProof(ctx context.Context, req dto.PaymentProofRequest, ref string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepository.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	s3       s3.S3
}

func New(repo repository.Booking, roomRepo roomRepository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		s3:       s3,
	}
}

// Create books a room. The booking row and the room availability flip commit
// in one transaction so a crash cannot leave a booked room still marked free.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if !room.IsAvailable {
		return res, failure.Conflict("room is not available") // nolint:wrapcheck
	}

	booking, err := req.ToModel(user, reference.Generate())
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !booking.CheckOutDate.After(booking.CheckInDate) {
		return res, failure.BadRequestFromString("check_out_date must be after check_in_date") // nolint:wrapcheck
	}

	sqltx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return res, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = sqltx.Rollback()
		}
	}()

	if err = s.repo.InsertTx(ctx, sqltx, booking); err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		return res, fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = s.occupyRoomTx(ctx, sqltx, booking.RoomID, false, user); err != nil {
		return res, err
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit booking")

		return res, fmt.Errorf("failed to commit booking: %w", err)
	}

	s.invalidateLists(ctx)

	res = dto.CreateBookingResponse{
		ID:              booking.ID,
		ReferenceNumber: booking.ReferenceNumber,
		BookingStatus:   booking.BookingStatus,
		PaymentStatus:   booking.PaymentStatus,
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
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
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
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
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
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

// GetByReference resolves a booking by its public reference number. The match
// is case insensitive so guests can type the reference however they like.
func (s *serviceImpl) GetByReference(ctx context.Context, ref string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByReference")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, strings.ToUpper(ref))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, filterByReference(ref))
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
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if model.IsTerminal(booking.BookingStatus) {
		return failure.Conflict("booking is already closed") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidate(ctx, booking)

	return nil
}

// UpdateStatus moves a booking through its lifecycle. Closing transitions
// release the room in the same transaction as the status write.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !model.CanTransition(booking.BookingStatus, req.BookingStatus) {
		return failure.BadRequestFromString(fmt.Sprintf("booking cannot move from %s to %s", booking.BookingStatus, req.BookingStatus)) // nolint:wrapcheck
	}

	if req.PaymentStatus == constant.PaymentStatusPending && booking.PaymentStatus == constant.PaymentStatusConfirmed {
		return failure.BadRequestFromString("payment confirmation cannot be reverted") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldBookingStatus: req.BookingStatus,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if req.PaymentStatus != constant.Empty {
		updatedFields[model.FieldPaymentStatus] = req.PaymentStatus
	}

	closing := model.IsTerminal(req.BookingStatus) && !model.IsTerminal(booking.BookingStatus)

	if !closing {
		if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to update booking status")

			return fmt.Errorf("failed to update booking status: %w", err)
		}

		s.invalidate(ctx, booking)

		return nil
	}

	sqltx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = sqltx.Rollback()
		}
	}()

	if err = s.repo.UpdateTx(ctx, sqltx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if err = s.occupyRoomTx(ctx, sqltx, booking.RoomID, true, user); err != nil {
		return err
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit status update")

		return fmt.Errorf("failed to commit status update: %w", err)
	}

	s.invalidate(ctx, booking)

	return nil
}

// UploadPaymentProof attaches a transfer receipt to a booking, looked up by
// reference so guests can submit proof without an account.
func (s *serviceImpl) UploadPaymentProof(ctx context.Context, req dto.PaymentProofRequest, ref string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadPaymentProof")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, filterByReference(ref))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if model.IsTerminal(booking.BookingStatus) {
		return failure.Conflict("booking is already closed") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName
	filename := uuid.NewString()

	parts := strings.Split(req.Proof.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ProofFile, req.Proof, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload payment proof to S3")

		return fmt.Errorf("failed to upload payment proof: %w", err)
	}

	updatedFields := map[string]any{
		model.FieldPaymentProofURL: url,
		constant.FieldModifiedAt:   timezone.Now(),
		constant.FieldModifiedBy:   booking.ReferenceNumber,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to save payment proof url")

		if delErr := s.s3.DeleteFile(ctx, bucketName, model.EntityName, filename); delErr != nil {
			log.Error().Err(delErr).Msg("failed to clean up payment proof from S3")
		}

		return fmt.Errorf("failed to save payment proof url: %w", err)
	}

	s.invalidate(ctx, booking)

	return nil
}

// Delete removes a booking record. An open booking still holds its room, so
// the delete releases the room in the same transaction.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	sqltx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = sqltx.Rollback()
		}
	}()

	if err = s.repo.DeleteTx(ctx, sqltx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if !model.IsTerminal(booking.BookingStatus) {
		if err = s.occupyRoomTx(ctx, sqltx, booking.RoomID, true, user); err != nil {
			return err
		}
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit booking delete")

		return fmt.Errorf("failed to commit booking delete: %w", err)
	}

	s.invalidate(ctx, booking)

	return nil
}

func (s *serviceImpl) occupyRoomTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, available bool, user string) error {
	updatedFields := map[string]any{
		roomModel.FieldIsAvailable: available,
		constant.FieldModifiedAt:   timezone.Now(),
		constant.FieldModifiedBy:   user,
	}

	err := s.roomRepo.UpdateTx(ctx, sqltx, updatedFields, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update room availability")

		return fmt.Errorf("failed to update room availability: %w", err)
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, strings.ToUpper(booking.ReferenceNumber))); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheRoomPrefix)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheRoomPrefix)
	}()
}

func filterByReference(ref string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldReferenceNumber,
				Value:    ref,
				Operator: gDto.FilterOperatorIEq,
				Table:    model.TableName,
			},
		},
	}
}
