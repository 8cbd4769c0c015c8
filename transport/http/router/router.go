package router

import (
	"lux/internal/handlers/announcement"
	"lux/internal/handlers/auth"
	"lux/internal/handlers/booking"
	"lux/internal/handlers/checkin"
	"lux/internal/handlers/guest"
	"lux/internal/handlers/housekeeping"
	"lux/internal/handlers/module"
	"lux/internal/handlers/payment"
	"lux/internal/handlers/report"
	"lux/internal/handlers/room"
	"lux/internal/handlers/staff"
	"lux/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Room         room.Handler
	Booking      booking.Handler
	CheckIn      checkin.Handler
	Housekeeping housekeeping.Handler
	Staff        staff.Handler
	Guest        guest.Handler
	Announcement announcement.Handler
	Payment      payment.Handler
	Report       report.Handler
	Module       module.Handler
	User         user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts the public surface under /v1 and the staff ERP surface
// under /v1/erp. Authorization per endpoint comes from the permissions table.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Announcement.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)

		routerGroup.Route("/erp", func(erpGroup chi.Router) {
			r.DomainHandlers.Room.ErpRouter(erpGroup)
			r.DomainHandlers.Booking.ErpRouter(erpGroup)
			r.DomainHandlers.CheckIn.Router(erpGroup)
			r.DomainHandlers.Housekeeping.Router(erpGroup)
			r.DomainHandlers.Staff.Router(erpGroup)
			r.DomainHandlers.Guest.Router(erpGroup)
			r.DomainHandlers.Announcement.ErpRouter(erpGroup)
			r.DomainHandlers.Payment.ErpRouter(erpGroup)
			r.DomainHandlers.Report.Router(erpGroup)
			r.DomainHandlers.Module.Router(erpGroup)
			r.DomainHandlers.User.Router(erpGroup)
		})
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
