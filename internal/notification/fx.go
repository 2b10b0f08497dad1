package notification

import (
	"github.com/networkasro-maker/asro/internal/notification/draft"
	"github.com/networkasro-maker/asro/internal/notification/repository"
	"github.com/networkasro-maker/asro/internal/notification/service"
	"go.uber.org/fx"
)

var Module = fx.Module("notification.service",
	fx.Provide(repository.Provide),
	fx.Provide(draft.NewDrafter),
	fx.Provide(service.NewService),
)
