package ispprofile

import (
	"github.com/networkasro-maker/asro/internal/ispprofile/repository"
	"github.com/networkasro-maker/asro/internal/ispprofile/service"
	"go.uber.org/fx"
)

var Module = fx.Module("ispprofile.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
