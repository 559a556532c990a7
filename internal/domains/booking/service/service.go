package service

import (
	"context"
	"fmt"
	"time"

	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/internal/domains/booking/billing"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/repository"
	cashflowModel "hotelier/internal/domains/cashflow/model"
	"hotelier/shared"
	"hotelier/shared/clock"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CheckoutEvent is published after a stay is closed and paid.
type CheckoutEvent struct {
	BookingID    string `json:"booking_id"`
	Code         string `json:"code"`
	BranchID     string `json:"branch_id"`
	Total        int64  `json:"total"`
	CheckedOutAt string `json:"checked_out_at"`
}

type Booking interface {
	CheckIn(ctx context.Context, req dto.CheckInRequest) (dto.BookingResponse, error)
	Reserve(ctx context.Context, req dto.ReserveRequest) (dto.BookingResponse, error)
	ConfirmCheckIn(ctx context.Context, id string, req dto.ConfirmCheckInRequest) (dto.BookingResponse, error)
	AddService(ctx context.Context, id string, req dto.AddServiceRequest) (dto.ServiceOrderResponse, error)
	AddServiceByRoom(ctx context.Context, roomID string, req dto.AddServiceRequest) (dto.ServiceOrderResponse, error)
	CheckOut(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckOutByRoom(ctx context.Context, roomID string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo  repository.Booking
	cfg   *config.Config
	clk   clock.Clock
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, clk clock.Clock, kafkaClient kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		clk:   clk,
		kafka: kafkaClient,
		otel:  otel,
	}
}

// CheckIn opens a walk-in stay: the guest is registered, the rooms go
// occupied and the rate snapshots are frozen, all in one transaction.
func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := s.clk.Now()

	booking := model.Booking{
		ID:            uuid.NewString(),
		Code:          constant.BookingCodePrefixWalkIn + now.Format(constant.CodeTimeFormat),
		BranchID:      req.BranchID,
		BookingType:   billing.ResolveType(req.BookingType),
		Status:        constant.BookingStatusCheckedIn,
		CheckInActual: &now,
		Notes:         req.Notes,
		Metadata:      newMetadata(now, user),
	}

	booking, err = s.repo.CreateStay(ctx, booking, req.RoomIDs, companionModels(req.Companions, user), req.Guest.ToModel(user), true)
	if err != nil {
		log.Error().Err(err).Msg("failed to check in")

		return res, err //nolint:wrapcheck
	}

	scope.AddEvent("Stay opened with code " + booking.Code)

	return s.Get(ctx, booking.ID)
}

// Reserve books rooms for a future arrival. The rooms remain available until
// the reservation is confirmed.
func (s *serviceImpl) Reserve(ctx context.Context, req dto.ReserveRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := s.clk.Now()

	checkInExpected, err := timezoneParse(req.CheckInExpected)
	if err != nil {
		return res, failure.BadRequestFromString("invalid check_in_expected, use RFC3339") // nolint:wrapcheck
	}

	var checkOutExpected *time.Time

	if req.CheckOutExpected != "" {
		parsed, err := timezoneParse(req.CheckOutExpected)
		if err != nil {
			return res, failure.BadRequestFromString("invalid check_out_expected, use RFC3339") // nolint:wrapcheck
		}

		checkOutExpected = parsed
	}

	booking := model.Booking{
		ID:               uuid.NewString(),
		Code:             constant.BookingCodePrefixReservation + now.Format(constant.CodeTimeFormat),
		BranchID:         req.BranchID,
		BookingType:      billing.ResolveType(req.BookingType),
		Status:           constant.BookingStatusReserved,
		CheckInExpected:  checkInExpected,
		CheckOutExpected: checkOutExpected,
		Notes:            req.Notes,
		Metadata:         newMetadata(now, user),
	}

	booking, err = s.repo.CreateStay(ctx, booking, req.RoomIDs, companionModels(req.Companions, user), req.Guest.ToModel(user), false)
	if err != nil {
		log.Error().Err(err).Msg("failed to reserve")

		return res, err //nolint:wrapcheck
	}

	scope.AddEvent("Reservation created with code " + booking.Code)

	return s.Get(ctx, booking.ID)
}

// ConfirmCheckIn turns a reservation into an open stay, stamping the actual
// arrival time. Guest fields sent along are merged onto the registered
// customer; a new booking type reprices the stay from the current rate card.
func (s *serviceImpl) ConfirmCheckIn(ctx context.Context, id string, req dto.ConfirmCheckInRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmCheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := s.clk.Now()

	fields := map[string]any{
		model.FieldStatus:        constant.BookingStatusCheckedIn,
		model.FieldCheckInActual: now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	bookingType := ""
	if req.BookingType != "" {
		bookingType = billing.ResolveType(req.BookingType)
		fields[model.FieldBookingType] = bookingType
	}

	if req.Notes != "" {
		fields[model.FieldNotes] = req.Notes
	}

	guestFields := map[string]any{}
	if req.Guest != nil {
		guestFields = shared.TransformFields(guestMerge{
			FullName:     req.Guest.FullName,
			BirthDate:    req.Guest.BirthDate,
			IdentityCard: req.Guest.IdentityCard,
			Phone:        req.Guest.Phone,
			Email:        req.Guest.Email,
			Address:      req.Guest.Address,
			LicensePlate: req.Guest.LicensePlate,
		}, user)
	}

	if err = s.repo.ConfirmCheckIn(ctx, id, fields, guestFields, companionModels(req.Companions, user), bookingType); err != nil {
		log.Error().Err(err).Msg("failed to confirm check-in")

		return res, err //nolint:wrapcheck
	}

	scope.AddEvent("Reservation confirmed by user " + user)

	return s.Get(ctx, id)
}

// AddService charges a product onto an open stay at the current product price.
func (s *serviceImpl) AddService(ctx context.Context, id string, req dto.AddServiceRequest) (res dto.ServiceOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddService")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := s.clk.Now()

	order := model.ServiceOrder{
		ID:        uuid.NewString(),
		BookingID: id,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Metadata:  newMetadata(now, user),
	}

	order, err = s.repo.AddServiceOrder(ctx, order)
	if err != nil {
		log.Error().Err(err).Msg("failed to add service order")

		return res, err //nolint:wrapcheck
	}

	res.FromModel(order)

	return res, nil
}

// AddServiceByRoom charges a product onto whichever stay currently holds the
// room. The room must be occupied with an open booking.
func (s *serviceImpl) AddServiceByRoom(ctx context.Context, roomID string, req dto.AddServiceRequest) (res dto.ServiceOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddServiceByRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookingID, err := s.repo.GetOpenStay(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Str("room", roomID).Msg("failed to resolve open stay")

		return res, err //nolint:wrapcheck
	}

	return s.AddService(ctx, bookingID, req)
}

// CheckOut closes an open stay: every room is priced from its frozen snapshot,
// service orders are added on top, the rooms are released and the receipt is
// written to the cash ledger.
func (s *serviceImpl) CheckOut(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := s.clk.Now()

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status != constant.BookingStatusCheckedIn || booking.CheckInActual == nil {
		return res, failure.InvalidState("booking is not checked in") // nolint:wrapcheck
	}

	stayRooms, err := s.repo.GetRooms(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stay rooms")

		return res, fmt.Errorf("failed to get stay rooms: %w", err)
	}

	charges := make([]repository.RoomCharge, len(stayRooms))

	var roomsTotal int64

	for i, stayRoom := range stayRooms {
		charge, err := billing.Calculate(booking.BookingType, *booking.CheckInActual, now, stayRoom.RateSnapshot)
		if err != nil {
			log.Error().Err(err).Str("booking", booking.Code).Msg("failed to price stay room")

			return res, failure.BadRequestFromString("check-out is before check-in") // nolint:wrapcheck
		}

		charges[i] = repository.RoomCharge{BookingRoomID: stayRoom.ID, Charge: charge.Amount, Hours: charge.Hours}
		roomsTotal += charge.Amount
	}

	fields := map[string]any{
		model.FieldStatus:         constant.BookingStatusCompleted,
		model.FieldCheckOutActual: now,
		constant.FieldModifiedAt:  now,
		constant.FieldModifiedBy:  user,
	}

	cashFlow := cashflowModel.CashFlow{
		ID:            uuid.NewString(),
		BranchID:      booking.BranchID,
		FlowType:      constant.FlowTypeReceipt,
		Category:      constant.CashCategoryRoomRevenue,
		Description:   "room revenue for booking " + booking.Code,
		ReferenceCode: booking.Code,
		OccurredAt:    now,
		Metadata:      newMetadata(now, user),
	}

	total, err := s.repo.CompleteCheckout(ctx, id, fields, charges, roomsTotal, cashFlow)
	if err != nil {
		log.Error().Err(err).Msg("failed to complete checkout")

		return res, err //nolint:wrapcheck
	}

	scope.AddEvent(fmt.Sprintf("Stay %s checked out with total %d", booking.Code, total))

	s.publishCheckout(ctx, booking, total, now)

	return s.Get(ctx, id)
}

// CheckOutByRoom closes the stay currently holding the room. The room must be
// occupied with an open booking.
func (s *serviceImpl) CheckOutByRoom(ctx context.Context, roomID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOutByRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookingID, err := s.repo.GetOpenStay(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Str("room", roomID).Msg("failed to resolve open stay")

		return res, err //nolint:wrapcheck
	}

	return s.CheckOut(ctx, bookingID)
}

// Cancel voids a reservation. Any other state is a conflict.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := s.clk.Now()

	fields := map[string]any{
		model.FieldStatus:        constant.BookingStatusCancelled,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Cancel(ctx, id, fields); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return err //nolint:wrapcheck
	}

	scope.AddEvent("Reservation cancelled by user " + user)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	stayRooms, err := s.repo.GetRooms(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stay rooms")

		return res, fmt.Errorf("failed to get stay rooms: %w", err)
	}

	companions, err := s.repo.GetCompanions(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get companions")

		return res, fmt.Errorf("failed to get companions: %w", err)
	}

	orders, err := s.repo.GetOrders(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service orders")

		return res, fmt.Errorf("failed to get service orders: %w", err)
	}

	res.FromModel(booking)
	res.AttachDetail(stayRooms, companions, orders)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
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

	return res, nil
}

func (s *serviceImpl) publishCheckout(ctx context.Context, booking model.Booking, total int64, checkedOutAt time.Time) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event := CheckoutEvent{
		BookingID:    booking.ID,
		Code:         booking.Code,
		BranchID:     booking.BranchID,
		Total:        total,
		CheckedOutAt: checkedOutAt.Format(constant.DateFormat),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafka.SendMessages(c, constant.KafkaTopicCheckout, kafka.Message{Key: booking.Code, Value: event}); err != nil {
			log.Error().Err(err).Str("booking", booking.Code).Msg("failed to publish checkout event")
		}
	}()
}

type guestMerge struct {
	FullName     string `db:"full_name"`
	BirthDate    string `db:"birth_date"`
	IdentityCard string `db:"identity_card"`
	Phone        string `db:"phone"`
	Email        string `db:"email"`
	Address      string `db:"address"`
	LicensePlate string `db:"license_plate"`
}

func companionModels(reqs []dto.CompanionRequest, user string) []model.Companion {
	companions := make([]model.Companion, len(reqs))
	for i, req := range reqs {
		companions[i] = req.ToModel("", user)
	}

	return companions
}

func newMetadata(now time.Time, user string) gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

func timezoneParse(value string) (*time.Time, error) {
	parsed, err := timezone.Parse(constant.DateFormat, value)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &parsed, nil
}
