package report

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/report/service"
	"hotelier/shared/constant"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/revenue", handler.GetRevenueReport)
		routerGroup.Get("/finance", handler.GetFinanceReport)
		routerGroup.Get("/goods", handler.GetGoodsReport)
		routerGroup.Get("/room-performance", handler.GetRoomPerformanceReport)
	})
}

func (handler *Handler) GetRevenueReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenueReport")
	defer scope.End()

	report, err := handler.service.GetRevenue(ctx, r.URL.Query().Get(constant.RequestParamFilter))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get revenue report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Revenue report retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}

func (handler *Handler) GetFinanceReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFinanceReport")
	defer scope.End()

	report, err := handler.service.GetFinance(ctx, r.URL.Query().Get(constant.RequestParamFilter))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get finance report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Finance report retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}

func (handler *Handler) GetGoodsReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGoodsReport")
	defer scope.End()

	report, err := handler.service.GetGoods(ctx, r.URL.Query().Get(constant.RequestParamFilter))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get goods report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Goods report retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}

func (handler *Handler) GetRoomPerformanceReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomPerformanceReport")
	defer scope.End()

	report, err := handler.service.GetRoomPerformance(ctx, r.URL.Query().Get(constant.RequestParamFilter))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room performance report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room performance report retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}
