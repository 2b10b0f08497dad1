package identity

import (
	"github.com/networkasro-maker/asro/internal/identity/repository"
	"github.com/networkasro-maker/asro/internal/identity/service"
	"go.uber.org/fx"
)

var Module = fx.Module("identity.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
