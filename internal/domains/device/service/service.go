package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	cashflowModel "hotelier/internal/domains/cashflow/model"
	"hotelier/internal/domains/device/model"
	"hotelier/internal/domains/device/model/dto"
	"hotelier/internal/domains/device/repository"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// MaintenanceEvent is emitted after a maintenance log is recorded.
type MaintenanceEvent struct {
	DeviceID    string `json:"device_id"`
	LogID       string `json:"log_id"`
	Cost        int64  `json:"cost"`
	PerformedAt string `json:"performed_at"`
}

type Device interface {
	Create(ctx context.Context, req dto.CreateDeviceRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDevicesResponse, error)
	Get(ctx context.Context, id string) (dto.DeviceResponse, error)
	Update(ctx context.Context, req dto.UpdateDeviceRequest, id string) error
	Delete(ctx context.Context, id string) error

	LogMaintenance(ctx context.Context, req dto.LogMaintenanceRequest, id string) error
	GetLogs(ctx context.Context, id string) (dto.GetMaintenanceLogsResponse, error)
}

type serviceImpl struct {
	repo  repository.Device
	cfg   *config.Config
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Device, cfg *config.Config, kafkaClient kafka.Client, otel otel.Otel) Device {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		kafka: kafkaClient,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDeviceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return failure.BadRequestFromString("branch or room does not exist") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create device")

		return fmt.Errorf("failed to create device: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDevicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count devices")

		return res, fmt.Errorf("failed to count devices: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get devices")

		return res, fmt.Errorf("failed to get devices: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DeviceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	device, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get device")

		return res, fmt.Errorf("failed to get device: %w", err)
	}

	if device.ID == constant.Empty {
		return res, failure.NotFound("device not found") // nolint:wrapcheck
	}

	res.FromModel(device)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateDeviceRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if device exists")

		return fmt.Errorf("failed to check if device exists: %w", err)
	}

	if !exist {
		return failure.NotFound("device not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update device")

		return fmt.Errorf("failed to update device: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if device exists")

		return fmt.Errorf("failed to check if device exists: %w", err)
	}

	if !exist {
		return failure.NotFound("device not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return failure.Conflict("device still has maintenance history") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete device")

		return fmt.Errorf("failed to delete device: %w", err)
	}

	return nil
}

// LogMaintenance records a service visit. The device is set back to GOOD and,
// when the visit cost money, a payment is appended to the cash ledger.
func (s *serviceImpl) LogMaintenance(ctx context.Context, req dto.LogMaintenanceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LogMaintenance")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	maintenanceLog := model.MaintenanceLog{
		ID:          uuid.NewString(),
		DeviceID:    id,
		Description: req.Description,
		Cost:        req.Cost,
		PerformedAt: now,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	deviceFields := map[string]any{
		model.FieldStatus:              constant.DeviceStatusGood,
		model.FieldLastMaintenanceDate: now,
		"modified_at":                  now,
		"modified_by":                  user,
	}

	var cashFlow *cashflowModel.CashFlow
	if req.Cost > 0 {
		cashFlow = &cashflowModel.CashFlow{
			ID:            uuid.NewString(),
			FlowType:      constant.FlowTypePayment,
			Category:      constant.CashCategoryMaintenance,
			Amount:        req.Cost,
			ReferenceCode: maintenanceLog.ID,
			OccurredAt:    now,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	if err = s.repo.LogMaintenance(ctx, maintenanceLog, deviceFields, cashFlow); err != nil {
		log.Error().Err(err).Msg("failed to log maintenance")

		return err // nolint:wrapcheck
	}

	s.publishMaintenance(ctx, maintenanceLog)

	return nil
}

func (s *serviceImpl) GetLogs(ctx context.Context, id string) (res dto.GetMaintenanceLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetLogs")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if device exists")

		return res, fmt.Errorf("failed to check if device exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("device not found") // nolint:wrapcheck
	}

	models, err := s.repo.GetLogs(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance logs")

		return res, fmt.Errorf("failed to get maintenance logs: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) publishMaintenance(ctx context.Context, maintenanceLog model.MaintenanceLog) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event := MaintenanceEvent{
		DeviceID:    maintenanceLog.DeviceID,
		LogID:       maintenanceLog.ID,
		Cost:        maintenanceLog.Cost,
		PerformedAt: maintenanceLog.PerformedAt.Format(constant.DateFormat),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafka.SendMessages(c, constant.KafkaTopicMaintenance, kafka.Message{Key: maintenanceLog.DeviceID, Value: event}); err != nil {
			log.Error().Err(err).Str("device", maintenanceLog.DeviceID).Msg("failed to publish maintenance event")
		}
	}()
}
