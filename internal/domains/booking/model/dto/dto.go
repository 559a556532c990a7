package dto

import (
	"time"

	"hotelier/internal/domains/booking/model"
	customerModel "hotelier/internal/domains/customer/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type GuestRequest struct {
	FullName     string `json:"full_name"     validate:"required,max=255"`
	BirthDate    string `json:"birth_date"    validate:"omitempty,datetime=2006-01-02"`
	IdentityType string `json:"identity_type" validate:"omitempty,oneof=CCCD PASSPORT DRIVER_LICENSE"`
	IdentityCard string `json:"identity_card" validate:"omitempty,max=50"`
	Phone        string `json:"phone"         validate:"omitempty,max=20"`
	Email        string `json:"email"         validate:"omitempty,email,max=255"`
	Address      string `json:"address"       validate:"omitempty,max=500"`
	LicensePlate string `json:"license_plate" validate:"omitempty,max=50"`
}

func (g *GuestRequest) ToModel(user string) customerModel.Customer {
	var identityCard *string
	if g.IdentityCard != "" {
		identityCard = &g.IdentityCard
	}

	identityType := g.IdentityType
	if identityType == "" {
		identityType = constant.IdentityTypeNationalID
	}

	return customerModel.Customer{
		ID:           uuid.NewString(),
		FullName:     g.FullName,
		BirthDate:    parseBirthDate(g.BirthDate),
		IdentityType: identityType,
		IdentityCard: identityCard,
		Phone:        g.Phone,
		Email:        g.Email,
		Address:      g.Address,
		LicensePlate: g.LicensePlate,
		Type:         constant.CustomerTypeIndividual,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CompanionRequest struct {
	FullName     string `json:"full_name"     validate:"required,max=255"`
	IdentityCard string `json:"identity_card" validate:"omitempty,max=50"`
}

func (c *CompanionRequest) ToModel(bookingID, user string) model.Companion {
	var identityCard *string
	if c.IdentityCard != "" {
		identityCard = &c.IdentityCard
	}

	return model.Companion{
		ID:           uuid.NewString(),
		BookingID:    bookingID,
		FullName:     c.FullName,
		IdentityCard: identityCard,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// CheckInRequest opens a walk-in stay: the guest is at the desk and the rooms
// go occupied immediately.
type CheckInRequest struct {
	BranchID    string             `json:"branch_id"    validate:"required"`
	RoomIDs     []string           `json:"room_ids"     validate:"required,min=1,dive,required"`
	BookingType string             `json:"booking_type" validate:"omitempty,max=50"`
	Guest       GuestRequest       `json:"guest"        validate:"required"`
	Companions  []CompanionRequest `json:"companions"   validate:"omitempty,dive"`
	Notes       string             `json:"notes"        validate:"omitempty,max=500"`
}

// ReserveRequest books ahead of arrival. Rooms are optional: a reservation
// can hold only the guest and expected times, with rooms assigned at
// confirmation. Reserved rooms stay available until then.
type ReserveRequest struct {
	BranchID         string             `json:"branch_id"          validate:"required"`
	RoomIDs          []string           `json:"room_ids"           validate:"omitempty,dive,required"`
	BookingType      string             `json:"booking_type"       validate:"omitempty,max=50"`
	Guest            GuestRequest       `json:"guest"              validate:"required"`
	Companions       []CompanionRequest `json:"companions"         validate:"omitempty,dive"`
	CheckInExpected  string             `json:"check_in_expected"  validate:"required"`
	CheckOutExpected string             `json:"check_out_expected" validate:"omitempty"`
	Notes            string             `json:"notes"              validate:"omitempty,max=500"`
}

// ConfirmCheckInRequest turns a reservation into an open stay. Guest fields
// are merged onto the registered customer when present, companions are
// registered as the party arrives, and an empty booking type keeps the
// reserved one.
type ConfirmCheckInRequest struct {
	Guest       *GuestRequest      `json:"guest"        validate:"omitempty"`
	Companions  []CompanionRequest `json:"companions"   validate:"omitempty,dive"`
	BookingType string             `json:"booking_type" validate:"omitempty,max=50"`
	Notes       string             `json:"notes"        validate:"omitempty,max=500"`
}

type AddServiceRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,gte=1"`
}

type BookingRoomResponse struct {
	ID           string `json:"id"`
	RoomID       string `json:"room_id"`
	RoomName     string `json:"room_name"`
	ClassName    string `json:"class_name"`
	RateSnapshot int64  `json:"rate_snapshot"`
	Charge       int64  `json:"charge"`
	Hours        int    `json:"hours"`
}

func (r *BookingRoomResponse) FromModel(mod model.BookingRoom) {
	r.ID = mod.ID
	r.RoomID = mod.RoomID
	r.RoomName = mod.RoomName
	r.ClassName = mod.ClassName
	r.RateSnapshot = mod.RateSnapshot
	r.Charge = mod.Charge
	r.Hours = mod.Hours
}

type CompanionResponse struct {
	ID           string  `json:"id"`
	FullName     string  `json:"full_name"`
	IdentityCard *string `json:"identity_card,omitempty"`
}

func (r *CompanionResponse) FromModel(mod model.Companion) {
	r.ID = mod.ID
	r.FullName = mod.FullName
	r.IdentityCard = mod.IdentityCard
}

type ServiceOrderResponse struct {
	ID            string `json:"id"`
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	Quantity      int    `json:"quantity"`
	PriceSnapshot int64  `json:"price_snapshot"`
	Total         int64  `json:"total"`
	OrderedAt     string `json:"ordered_at"`
}

func (r *ServiceOrderResponse) FromModel(mod model.ServiceOrder) {
	r.ID = mod.ID
	r.ProductID = mod.ProductID
	r.ProductName = mod.ProductName
	r.Quantity = mod.Quantity
	r.PriceSnapshot = mod.PriceSnapshot
	r.Total = mod.Total
	r.OrderedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
}

type BookingResponse struct {
	ID               string                 `json:"id"`
	Code             string                 `json:"code"`
	BranchID         string                 `json:"branch_id"`
	BranchName       string                 `json:"branch_name"`
	CustomerID       string                 `json:"customer_id"`
	CustomerName     string                 `json:"customer_name"`
	BookingType      string                 `json:"booking_type"`
	Status           string                 `json:"status"`
	CheckInExpected  *string                `json:"check_in_expected,omitempty"`
	CheckOutExpected *string                `json:"check_out_expected,omitempty"`
	CheckInActual    *string                `json:"check_in_actual,omitempty"`
	CheckOutActual   *string                `json:"check_out_actual,omitempty"`
	Notes            string                 `json:"notes,omitempty"`
	Total            int64                  `json:"total"`
	Rooms            []BookingRoomResponse  `json:"rooms,omitempty"`
	Companions       []CompanionResponse    `json:"companions,omitempty"`
	Orders           []ServiceOrderResponse `json:"orders,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.Code = mod.Code
	r.BranchID = mod.BranchID
	r.BranchName = mod.BranchName
	r.CustomerID = mod.CustomerID
	r.CustomerName = mod.CustomerName
	r.BookingType = mod.BookingType
	r.Status = mod.Status
	r.CheckInExpected = formatTime(mod.CheckInExpected)
	r.CheckOutExpected = formatTime(mod.CheckOutExpected)
	r.CheckInActual = formatTime(mod.CheckInActual)
	r.CheckOutActual = formatTime(mod.CheckOutActual)
	r.Notes = mod.Notes
	r.Total = mod.Total
	r.Metadata.FromModel(mod.Metadata)
}

func (r *BookingResponse) AttachDetail(rooms []model.BookingRoom, companions []model.Companion, orders []model.ServiceOrder) {
	r.Rooms = make([]BookingRoomResponse, len(rooms))
	for i, room := range rooms {
		r.Rooms[i].FromModel(room)
	}

	r.Companions = make([]CompanionResponse, len(companions))
	for i, companion := range companions {
		r.Companions[i].FromModel(companion)
	}

	r.Orders = make([]ServiceOrderResponse, len(orders))
	for i, order := range orders {
		r.Orders[i].FromModel(order)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

func formatTime(value *time.Time) *string {
	if value == nil {
		return nil
	}

	formatted := timezone.Format(*value, constant.DateFormat)

	return &formatted
}

func parseBirthDate(value string) *time.Time {
	if value == "" {
		return nil
	}

	parsed, err := timezone.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return nil
	}

	return &parsed
}
