package branch

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/branch/model"
	"hotelier/internal/domains/branch/model/dto"
	"hotelier/internal/domains/branch/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Branch
	otel    otel.Otel
}

func New(service service.Branch, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/branches", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBranch)
		routerGroup.Get("/", handler.GetBranches)
		routerGroup.Get("/{id}", handler.GetBranchByID)
		routerGroup.Patch("/{id}", handler.UpdateBranch)
		routerGroup.Delete("/{id}", handler.DeleteBranch)

		routerGroup.Post("/areas", handler.CreateArea)
		routerGroup.Get("/areas", handler.GetAreas)
		routerGroup.Delete("/areas/{id}", handler.DeleteArea)
	})
}

func (handler *Handler) CreateBranch(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBranch")
	defer scope.End()

	req, err := validator.Validate[dto.CreateBranchRequest](r.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create branch")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Branch created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Branch created successfully")
}

func (handler *Handler) GetBranches(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBranches")
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

	branches, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get branches")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Branches retrieved successfully")

	response.WithJSON(w, http.StatusOK, branches)
}

func (handler *Handler) GetBranchByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBranchByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	branch, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get branch by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Branch retrieved successfully")

	response.WithJSON(w, http.StatusOK, branch)
}

func (handler *Handler) UpdateBranch(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBranch")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req, err := validator.Validate[dto.UpdateBranchRequest](r.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update branch")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Branch updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Branch updated successfully")
}

func (handler *Handler) DeleteBranch(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBranch")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete branch")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Branch deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Branch deleted successfully")
}

func (handler *Handler) CreateArea(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateArea")
	defer scope.End()

	req, err := validator.Validate[dto.CreateAreaRequest](r.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateArea(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create area")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Area created successfully")
}

func (handler *Handler) GetAreas(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAreas")
	defer scope.End()

	branchID := r.URL.Query().Get(constant.RequestParamBranch)

	areas, err := handler.service.GetAreas(ctx, branchID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get areas")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, areas)
}

func (handler *Handler) DeleteArea(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteArea")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteArea(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete area")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Area deleted successfully")
}
