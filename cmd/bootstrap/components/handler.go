package components

import (
	"fieldservice/internal/handler"
	"fieldservice/internal/handler/api"
	"fieldservice/internal/handler/middleware"
	"fieldservice/internal/pkg/jwt"

	"go.uber.org/fx"
)

type handlerParams struct {
	fx.In

	Booking        *api.BookingHandler
	Earnings       *api.EarningsHandler
	ProductRequest *api.ProductRequestHandler
	Referral       *api.ReferralHandler
	Admin          *api.AdminHandler
}

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewEarningsHandler,
		api.NewProductRequestHandler,
		api.NewReferralHandler,
		api.NewAdminHandler,
		func(p handlerParams) handler.Handlers {
			return handler.Handlers{
				Booking:        p.Booking,
				Earnings:       p.Earnings,
				ProductRequest: p.ProductRequest,
				Referral:       p.Referral,
				Admin:          p.Admin,
			}
		},
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
