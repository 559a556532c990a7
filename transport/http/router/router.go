package router

import (
	"hotelier/internal/handlers/auth"
	"hotelier/internal/handlers/booking"
	"hotelier/internal/handlers/branch"
	"hotelier/internal/handlers/cashflow"
	"hotelier/internal/handlers/customer"
	"hotelier/internal/handlers/device"
	"hotelier/internal/handlers/product"
	"hotelier/internal/handlers/report"
	"hotelier/internal/handlers/room"
	"hotelier/internal/handlers/roomclass"
	"hotelier/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	User      user.Handler
	Branch    branch.Handler
	RoomClass roomclass.Handler
	Room      room.Handler
	Customer  customer.Handler
	Booking   booking.Handler
	Product   product.Handler
	CashFlow  cashflow.Handler
	Device    device.Handler
	Report    report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Branch.Router(routerGroup)
		r.DomainHandlers.RoomClass.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Product.Router(routerGroup)
		r.DomainHandlers.CashFlow.Router(routerGroup)
		r.DomainHandlers.Device.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
