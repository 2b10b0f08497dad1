package customer

import (
	"github.com/networkasro-maker/asro/internal/customer/repository"
	"github.com/networkasro-maker/asro/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
