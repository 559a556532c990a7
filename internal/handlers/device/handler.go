package device

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/device/model"
	"hotelier/internal/domains/device/model/dto"
	"hotelier/internal/domains/device/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Device
	otel    otel.Otel
}

func New(service service.Device, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/devices", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDevice)
		routerGroup.Get("/", handler.GetDevices)
		routerGroup.Get("/{id}", handler.GetDeviceByID)
		routerGroup.Patch("/{id}", handler.UpdateDevice)
		routerGroup.Delete("/{id}", handler.DeleteDevice)
		routerGroup.Post("/{id}/maintenance", handler.LogMaintenance)
		routerGroup.Get("/{id}/maintenance", handler.GetMaintenanceLogs)
	})
}

func (handler *Handler) CreateDevice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDevice")
	defer scope.End()

	req, err := validator.Validate[dto.CreateDeviceRequest](r.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create device")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Device created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Device created successfully")
}

func (handler *Handler) GetDevices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDevices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if branch := r.URL.Query().Get(constant.RequestParamBranch); branch != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBranchID,
			Operator: gDto.FilterOperatorEq,
			Value:    branch,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(constant.RequestParamStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if room := r.URL.Query().Get(model.FieldRoomID); room != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    room,
			Table:    model.TableName,
		})
	}

	devices, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get devices")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Devices retrieved successfully")

	response.WithJSON(w, http.StatusOK, devices)
}

func (handler *Handler) GetDeviceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDeviceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	device, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get device by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Device retrieved successfully")

	response.WithJSON(w, http.StatusOK, device)
}

func (handler *Handler) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDevice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req, err := validator.Validate[dto.UpdateDeviceRequest](r.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update device")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Device updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Device updated successfully")
}

func (handler *Handler) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDevice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete device")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Device deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Device deleted successfully")
}

func (handler *Handler) LogMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LogMaintenance")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req, err := validator.Validate[dto.LogMaintenanceRequest](r.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.LogMaintenance(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log maintenance")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Maintenance logged successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Maintenance logged successfully")
}

func (handler *Handler) GetMaintenanceLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMaintenanceLogs")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	logs, err := handler.service.GetLogs(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, logs)
}
