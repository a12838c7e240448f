package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/tanzeemhub/reports-go/internal/api/handlers"
	"github.com/tanzeemhub/reports-go/internal/api/routes"
	"github.com/tanzeemhub/reports-go/internal/application"
	"github.com/tanzeemhub/reports-go/internal/notify"
	"github.com/tanzeemhub/reports-go/internal/repository"
)

func SetupRouter(svc *application.Services, repos *repository.Repos, hub *notify.Hub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.New(svc, repos, hub, r)
	routes.RegisterRoutes(h)
	return r
}
