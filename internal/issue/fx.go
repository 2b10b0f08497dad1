package issue

import (
	"github.com/networkasro-maker/asro/internal/issue/repository"
	"github.com/networkasro-maker/asro/internal/issue/service"
	"go.uber.org/fx"
)

var Module = fx.Module("issue.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
