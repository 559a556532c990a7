package cashflow

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/cashflow/model"
	"hotelier/internal/domains/cashflow/model/dto"
	"hotelier/internal/domains/cashflow/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.CashFlow
	otel    otel.Otel
}

func New(service service.CashFlow, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cash-flows", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCashFlow)
		routerGroup.Get("/", handler.GetCashFlows)
		routerGroup.Get("/{id}", handler.GetCashFlowByID)
	})
}

func (handler *Handler) CreateCashFlow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCashFlow")
	defer scope.End()

	req, err := validator.Validate[dto.CreateCashFlowRequest](r.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create cash flow")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Cash flow created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Cash flow created successfully")
}

func (handler *Handler) GetCashFlows(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCashFlows")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if branch := r.URL.Query().Get(constant.RequestParamBranch); branch != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBranchID,
			Operator: gDto.FilterOperatorEq,
			Value:    branch,
			Table:    model.TableName,
		})
	}

	if flowType := r.URL.Query().Get(model.FieldFlowType); flowType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFlowType,
			Operator: gDto.FilterOperatorEq,
			Value:    flowType,
			Table:    model.TableName,
		})
	}

	if category := r.URL.Query().Get(model.FieldCategory); category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	cashFlows, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cash flows")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cash flows retrieved successfully")

	response.WithJSON(w, http.StatusOK, cashFlows)
}

func (handler *Handler) GetCashFlowByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCashFlowByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	cashFlow, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cash flow by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cash flow retrieved successfully")

	response.WithJSON(w, http.StatusOK, cashFlow)
}
