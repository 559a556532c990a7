package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	kafkaMocks "hotelier/infras/kafka/mocks"
	"hotelier/infras/otel/mocks"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/repository"
	"hotelier/internal/domains/booking/service"
	cashflowModel "hotelier/internal/domains/cashflow/model"
	customerModel "hotelier/internal/domains/customer/model"
	"hotelier/shared/clock"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
)

var testNow = time.Date(2025, 3, 11, 16, 0, 0, 0, time.UTC)

func newBookingService(t *testing.T) (service.Booking, *bookingMocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, clock.NewFixed(testNow), mockKafka, mockOtel)

	return svc, mockRepo
}

func expectGetDetail(mockRepo *bookingMocks.MockBooking, booking model.Booking) {
	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(booking, nil)

	mockRepo.EXPECT().
		GetRooms(gomock.Any(), booking.ID).
		Return([]model.BookingRoom{}, nil)

	mockRepo.EXPECT().
		GetCompanions(gomock.Any(), booking.ID).
		Return([]model.Companion{}, nil)

	mockRepo.EXPECT().
		GetOrders(gomock.Any(), booking.ID).
		Return([]model.ServiceOrder{}, nil)
}

func TestBookingService_CheckIn(t *testing.T) {
	req := dto.CheckInRequest{
		BranchID:    "branch-1",
		RoomIDs:     []string{"room-1", "room-2"},
		BookingType: constant.BookingTypeHourly,
		Guest:       dto.GuestRequest{FullName: "Jane Guest"},
		Companions:  []dto.CompanionRequest{{FullName: "John Companion"}},
	}

	t.Run("successful walk-in", func(t *testing.T) {
		svc, mockRepo := newBookingService(t)

		mockRepo.EXPECT().
			CreateStay(gomock.Any(), gomock.Any(), req.RoomIDs, gomock.Any(), gomock.Any(), true).
			DoAndReturn(func(_ context.Context, booking model.Booking, _ []string, companions []model.Companion, guest customerModel.Customer, _ bool) (model.Booking, error) {
				assert.True(t, strings.HasPrefix(booking.Code, constant.BookingCodePrefixWalkIn))
				assert.Equal(t, constant.BookingStatusCheckedIn, booking.Status)
				assert.Equal(t, constant.BookingTypeHourly, booking.BookingType)
				assert.Equal(t, testNow, *booking.CheckInActual)
				assert.Equal(t, "Jane Guest", guest.FullName)
				assert.Len(t, companions, 1)

				return booking, nil
			})

		expectGetDetail(mockRepo, model.Booking{ID: "booking-1", Status: constant.BookingStatusCheckedIn})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := svc.CheckIn(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, constant.BookingStatusCheckedIn, res.Status)
	})

	t.Run("room not available", func(t *testing.T) {
		svc, mockRepo := newBookingService(t)

		mockRepo.EXPECT().
			CreateStay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), true).
			Return(model.Booking{}, failure.RoomNotAvailable("101"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := svc.CheckIn(ctx, req)

		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestBookingService_Reserve(t *testing.T) {
	req := dto.ReserveRequest{
		BranchID:        "branch-1",
		RoomIDs:         []string{"room-1"},
		Guest:           dto.GuestRequest{FullName: "Jane Guest"},
		CheckInExpected: "2025-03-20T14:00:00Z",
	}

	t.Run("successful reservation keeps rooms available", func(t *testing.T) {
		svc, mockRepo := newBookingService(t)

		mockRepo.EXPECT().
			CreateStay(gomock.Any(), gomock.Any(), req.RoomIDs, gomock.Any(), gomock.Any(), false).
			DoAndReturn(func(_ context.Context, booking model.Booking, _ []string, _ []model.Companion, _ customerModel.Customer, _ bool) (model.Booking, error) {
				assert.True(t, strings.HasPrefix(booking.Code, constant.BookingCodePrefixReservation))
				assert.Equal(t, constant.BookingStatusReserved, booking.Status)
				assert.Equal(t, constant.BookingTypeDaily, booking.BookingType)
				assert.Nil(t, booking.CheckInActual)
				require.NotNil(t, booking.CheckInExpected)

				return booking, nil
			})

		expectGetDetail(mockRepo, model.Booking{ID: "booking-1", Status: constant.BookingStatusReserved})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := svc.Reserve(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, constant.BookingStatusReserved, res.Status)
	})

	t.Run("roomless reservation holds only the guest", func(t *testing.T) {
		svc, mockRepo := newBookingService(t)

		roomless := req
		roomless.RoomIDs = nil

		mockRepo.EXPECT().
			CreateStay(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any(), false).
			DoAndReturn(func(_ context.Context, booking model.Booking, roomIDs []string, _ []model.Companion, guest customerModel.Customer, _ bool) (model.Booking, error) {
				assert.Empty(t, roomIDs)
				assert.Equal(t, constant.BookingStatusReserved, booking.Status)
				assert.Equal(t, "Jane Guest", guest.FullName)

				return booking, nil
			})

		expectGetDetail(mockRepo, model.Booking{ID: "booking-2", Status: constant.BookingStatusReserved})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := svc.Reserve(ctx, roomless)

		require.NoError(t, err)
		assert.Equal(t, constant.BookingStatusReserved, res.Status)
	})

	t.Run("invalid expected check-in time", func(t *testing.T) {
		svc, _ := newBookingService(t)

		badReq := req
		badReq.CheckInExpected = "tomorrow afternoon"

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := svc.Reserve(ctx, badReq)

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_ConfirmCheckIn(t *testing.T) {
	t.Run("successful confirmation", func(t *testing.T) {
		svc, mockRepo := newBookingService(t)

		mockRepo.EXPECT().
			ConfirmCheckIn(gomock.Any(), "booking-1", gomock.Any(), gomock.Any(), gomock.Any(), constant.BookingTypeOvernight).
			DoAndReturn(func(_ context.Context, _ string, fields map[string]any, guestFields map[string]any, companions []model.Companion, _ string) error {
				assert.Equal(t, constant.BookingStatusCheckedIn, fields[model.FieldStatus])
				assert.Equal(t, testNow, fields[model.FieldCheckInActual])
				assert.Empty(t, guestFields)
				assert.Empty(t, companions)

				return nil
			})

		expectGetDetail(mockRepo, model.Booking{ID: "booking-1", Status: constant.BookingStatusCheckedIn})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := svc.ConfirmCheckIn(ctx, "booking-1", dto.ConfirmCheckInRequest{BookingType: constant.BookingTypeOvernight})

		assert.NoError(t, err)
	})

	t.Run("registers companions and merges guest identity", func(t *testing.T) {
		svc, mockRepo := newBookingService(t)

		req := dto.ConfirmCheckInRequest{
			Guest: &dto.GuestRequest{
				FullName:     "Jane Guest",
				IdentityCard: "079123456789",
				Phone:        "0901234567",
			},
			Companions: []dto.CompanionRequest{
				{FullName: "John Companion", IdentityCard: "079987654321"},
				{FullName: "Kid Companion"},
			},
		}

		mockRepo.EXPECT().
			ConfirmCheckIn(gomock.Any(), "booking-1", gomock.Any(), gomock.Any(), gomock.Any(), "").
			DoAndReturn(func(_ context.Context, _ string, _ map[string]any, guestFields map[string]any, companions []model.Companion, _ string) error {
				assert.Equal(t, "079123456789", guestFields[customerModel.FieldIdentityCard])
				assert.Equal(t, "0901234567", guestFields[customerModel.FieldPhone])

				require.Len(t, companions, 2)
				assert.Equal(t, "John Companion", companions[0].FullName)
				require.NotNil(t, companions[0].IdentityCard)
				assert.Equal(t, "079987654321", *companions[0].IdentityCard)
				assert.Nil(t, companions[1].IdentityCard)

				return nil
			})

		expectGetDetail(mockRepo, model.Booking{ID: "booking-1", Status: constant.BookingStatusCheckedIn})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := svc.ConfirmCheckIn(ctx, "booking-1", req)

		assert.NoError(t, err)
	})

	t.Run("repository rejects non-reserved booking", func(t *testing.T) {
		svc, mockRepo := newBookingService(t)

		mockRepo.EXPECT().
			ConfirmCheckIn(gomock.Any(), "booking-1", gomock.Any(), gomock.Any(), gomock.Any(), "").
			Return(failure.InvalidState("booking is not reserved"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := svc.ConfirmCheckIn(ctx, "booking-1", dto.ConfirmCheckInRequest{})

		assert.Error(t, err)
	})
}

func TestBookingService_AddService(t *testing.T) {
	t.Run("successful order", func(t *testing.T) {
		svc, mockRepo := newBookingService(t)

		mockRepo.EXPECT().
			AddServiceOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order model.ServiceOrder) (model.ServiceOrder, error) {
				assert.Equal(t, "booking-1", order.BookingID)
				assert.Equal(t, 2, order.Quantity)

				order.ProductName = "Laundry"
				order.PriceSnapshot = 25000
				order.Total = 50000

				return order, nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := svc.AddService(ctx, "booking-1", dto.AddServiceRequest{ProductID: "product-1", Quantity: 2})

		require.NoError(t, err)
		assert.Equal(t, int64(50000), res.Total)
		assert.Equal(t, "Laundry", res.ProductName)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo := newBookingService(t)

		mockRepo.EXPECT().
			AddServiceOrder(gomock.Any(), gomock.Any()).
			Return(model.ServiceOrder{}, errors.New("database error"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := svc.AddService(ctx, "booking-1", dto.AddServiceRequest{ProductID: "product-1", Quantity: 1})

		assert.Error(t, err)
	})
}

func TestBookingService_AddServiceByRoom(t *testing.T) {
	t.Run("resolves the open stay for the room", func(t *testing.T) {
		svc, mockRepo := newBookingService(t)

		mockRepo.EXPECT().
			GetOpenStay(gomock.Any(), "room-1").
			Return("booking-1", nil)

		mockRepo.EXPECT().
			AddServiceOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order model.ServiceOrder) (model.ServiceOrder, error) {
				assert.Equal(t, "booking-1", order.BookingID)

				return order, nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := svc.AddServiceByRoom(ctx, "room-1", dto.AddServiceRequest{ProductID: "product-1", Quantity: 1})

		assert.NoError(t, err)
	})

	t.Run("vacant room rejects orders", func(t *testing.T) {
		svc, mockRepo := newBookingService(t)

		mockRepo.EXPECT().
			GetOpenStay(gomock.Any(), "room-1").
			Return("", failure.RoomNotOccupied("101"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := svc.AddServiceByRoom(ctx, "room-1", dto.AddServiceRequest{ProductID: "product-1", Quantity: 1})

		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestBookingService_CheckOut(t *testing.T) {
	checkIn := testNow.Add(-26 * time.Hour)

	openStay := model.Booking{
		ID:            "booking-1",
		Code:          "DP20250310140000",
		BranchID:      "branch-1",
		BookingType:   constant.BookingTypeDaily,
		Status:        constant.BookingStatusCheckedIn,
		CheckInActual: &checkIn,
	}

	t.Run("daily stay priced per room and receipted", func(t *testing.T) {
		svc, mockRepo := newBookingService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(openStay, nil)

		stayRooms := []model.BookingRoom{
			{ID: "stay-room-1", RateSnapshot: 500000},
			{ID: "stay-room-2", RateSnapshot: 300000},
		}

		mockRepo.EXPECT().
			GetRooms(gomock.Any(), "booking-1").
			Return(stayRooms, nil)

		mockRepo.EXPECT().
			CompleteCheckout(gomock.Any(), "booking-1", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, fields map[string]any, charges []repository.RoomCharge, roomsTotal int64, cashFlow cashflowModel.CashFlow) (int64, error) {
				// 26h on a daily stay rounds up to 2 days
				require.Len(t, charges, 2)
				assert.Equal(t, int64(1000000), charges[0].Charge)
				assert.Equal(t, int64(600000), charges[1].Charge)
				assert.Equal(t, int64(1600000), roomsTotal)

				assert.Equal(t, constant.BookingStatusCompleted, fields[model.FieldStatus])
				assert.Equal(t, testNow, fields[model.FieldCheckOutActual])

				assert.Equal(t, constant.FlowTypeReceipt, cashFlow.FlowType)
				assert.Equal(t, constant.CashCategoryRoomRevenue, cashFlow.Category)
				assert.Equal(t, openStay.Code, cashFlow.ReferenceCode)
				assert.Equal(t, openStay.BranchID, cashFlow.BranchID)

				return roomsTotal + 50000, nil
			})

		closedStay := openStay
		closedStay.Status = constant.BookingStatusCompleted
		closedStay.Total = 1650000
		expectGetDetail(mockRepo, closedStay)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := svc.CheckOut(ctx, "booking-1")

		require.NoError(t, err)
		assert.Equal(t, constant.BookingStatusCompleted, res.Status)
		assert.Equal(t, int64(1650000), res.Total)
	})

	t.Run("booking not found", func(t *testing.T) {
		svc, mockRepo := newBookingService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := svc.CheckOut(ctx, "booking-1")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("reservation cannot be checked out", func(t *testing.T) {
		svc, mockRepo := newBookingService(t)

		reserved := openStay
		reserved.Status = constant.BookingStatusReserved
		reserved.CheckInActual = nil

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(reserved, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := svc.CheckOut(ctx, "booking-1")

		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("check-in recorded after now", func(t *testing.T) {
		svc, mockRepo := newBookingService(t)

		future := testNow.Add(time.Hour)
		skewed := openStay
		skewed.CheckInActual = &future

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(skewed, nil)

		mockRepo.EXPECT().
			GetRooms(gomock.Any(), "booking-1").
			Return([]model.BookingRoom{{ID: "stay-room-1", RateSnapshot: 500000}}, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := svc.CheckOut(ctx, "booking-1")

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_CheckOutByRoom(t *testing.T) {
	t.Run("vacant room rejects checkout", func(t *testing.T) {
		svc, mockRepo := newBookingService(t)

		mockRepo.EXPECT().
			GetOpenStay(gomock.Any(), "room-1").
			Return("", failure.RoomNotOccupied("101"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := svc.CheckOutByRoom(ctx, "room-1")

		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("unknown room", func(t *testing.T) {
		svc, mockRepo := newBookingService(t)

		mockRepo.EXPECT().
			GetOpenStay(gomock.Any(), "room-9").
			Return("", failure.NotFound("room not found"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := svc.CheckOutByRoom(ctx, "room-9")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mockRepo *bookingMocks.MockBooking)
		wantErr   bool
	}{
		{
			name: "successful cancellation",
			setupMock: func(mockRepo *bookingMocks.MockBooking) {
				mockRepo.EXPECT().
					Cancel(gomock.Any(), "booking-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, fields map[string]any) error {
						assert.Equal(t, constant.BookingStatusCancelled, fields[model.FieldStatus])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "only reservations can be cancelled",
			setupMock: func(mockRepo *bookingMocks.MockBooking) {
				mockRepo.EXPECT().
					Cancel(gomock.Any(), "booking-1", gomock.Any()).
					Return(failure.InvalidState("only reserved bookings can be cancelled"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newBookingService(t)
			tt.setupMock(mockRepo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Cancel(ctx, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
