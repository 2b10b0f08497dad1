package audit

import (
	"github.com/networkasro-maker/asro/internal/audit/repository"
	"github.com/networkasro-maker/asro/internal/audit/service"
	"go.uber.org/fx"
)

var Module = fx.Module("audit.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
