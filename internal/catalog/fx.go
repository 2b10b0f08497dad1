package catalog

import (
	"github.com/networkasro-maker/asro/internal/catalog/repository"
	"github.com/networkasro-maker/asro/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
