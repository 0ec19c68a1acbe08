package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pmajay/portal/internal/api/controller"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/pkg/constants"
	"github.com/pmajay/portal/internal/pkg/logger"
	"github.com/pmajay/portal/internal/pkg/store"
	"github.com/pmajay/portal/internal/service/admins"
	"github.com/pmajay/portal/internal/service/auth"
	"github.com/pmajay/portal/internal/service/certificates"
	"github.com/pmajay/portal/internal/service/dashboard"
	"github.com/pmajay/portal/internal/service/funds"
	"github.com/pmajay/portal/internal/service/geo"
	"github.com/pmajay/portal/internal/service/lgd"
	"github.com/pmajay/portal/internal/service/notify"
	"github.com/pmajay/portal/internal/service/proposals"
	"github.com/pmajay/portal/internal/service/reports"
	"github.com/spf13/viper"
)

type APIService struct {
	router      *echo.Echo
	authService *auth.Service
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(store store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{viper.GetString(constants.ViperCORSOrigin)},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.PATCH, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	svc.authService = auth.NewService(store)
	fundsService := funds.NewService(store)

	cntrl := controller.NewController(controller.Services{
		Auth:         svc.authService,
		Dashboard:    dashboard.NewService(store),
		Funds:        fundsService,
		Proposals:    proposals.NewService(store),
		Certificates: certificates.NewService(store),
		Admins:       admins.NewService(store),
		Notify:       notify.NewService(store),
		Geo:          geo.NewService(http.DefaultClient),
		LGD:          lgd.NewService(store),
		Reports:      reports.NewService(store, fundsService),
		Store:        store,
	})

	api := svc.router.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", cntrl.SignupUser)
	authGroup.POST("/login", cntrl.LoginUser)
	authGroup.DELETE("/logout", cntrl.LogoutUser, svc.AuthMiddleware)
	authGroup.GET("/session", cntrl.GetSession)

	dash := api.Group("/dashboard", svc.AuthMiddleware)
	dash.GET("/shell", cntrl.GetShell)
	dash.GET("/stats", cntrl.GetStats)

	fundsGroup := api.Group("/funds", svc.AuthMiddleware)
	fundsGroup.POST("/allocations", cntrl.CreateAllocation, svc.RoleMiddleware(domain.RoleMinistryAdmin))
	fundsGroup.GET("/allocations", cntrl.ListAllocations, svc.RoleMiddleware(domain.RoleMinistryAdmin, domain.RoleStateAdmin))
	fundsGroup.POST("/releases", cntrl.CreateRelease, svc.RoleMiddleware(domain.RoleStateAdmin))
	fundsGroup.GET("/releases", cntrl.ListReleases)
	fundsGroup.GET("/releases/export", cntrl.ExportReleases)

	proposalsGroup := api.Group("/proposals", svc.AuthMiddleware)
	proposalsGroup.POST("", cntrl.CreateProposal, svc.RoleMiddleware(domain.RoleDistrictAdmin))
	proposalsGroup.GET("", cntrl.ListProposals)
	proposalsGroup.POST("/:id/approve", cntrl.ApproveProposal, svc.RoleMiddleware(domain.RoleStateAdmin, domain.RoleMinistryAdmin))
	proposalsGroup.POST("/:id/reject", cntrl.RejectProposal, svc.RoleMiddleware(domain.RoleStateAdmin, domain.RoleMinistryAdmin))
	proposalsGroup.GET("/export", cntrl.ExportProposals)

	certsGroup := api.Group("/certificates", svc.AuthMiddleware)
	certsGroup.POST("", cntrl.CreateCertificate, svc.RoleMiddleware(domain.RoleDistrictAdmin))
	certsGroup.GET("", cntrl.ListCertificates)
	certsGroup.POST("/:id/verify", cntrl.VerifyCertificate, svc.RoleMiddleware(domain.RoleStateAdmin))
	certsGroup.POST("/:id/reject", cntrl.RejectCertificate, svc.RoleMiddleware(domain.RoleStateAdmin))

	adminsGroup := api.Group("/admins", svc.AuthMiddleware, svc.RoleMiddleware(domain.RoleStateAdmin, domain.RoleMinistryAdmin))
	adminsGroup.POST("", cntrl.CreateDistrictAdmin)
	adminsGroup.GET("", cntrl.ListDistrictAdmins)
	adminsGroup.PATCH("/:id", cntrl.UpdateDistrictAdmin)

	notificationsGroup := api.Group("/notifications", svc.AuthMiddleware)
	notificationsGroup.POST("", cntrl.CreateNotification, svc.RoleMiddleware(domain.RoleMinistryAdmin, domain.RoleStateAdmin))
	notificationsGroup.GET("", cntrl.ListNotifications)
	notificationsGroup.POST("/:id/deactivate", cntrl.DeactivateNotification, svc.RoleMiddleware(domain.RoleMinistryAdmin, domain.RoleStateAdmin))

	geoGroup := api.Group("/geo")
	geoGroup.GET("/states", cntrl.ListStates)
	geoGroup.GET("/districts", cntrl.ListDistricts)
	geoGroup.GET("/boundaries", cntrl.GetBoundaries)
	geoGroup.POST("/overlay", cntrl.GetOverlay)
	geoGroup.POST("/lgd/backfill", cntrl.BackfillGeography, svc.AuthMiddleware, svc.RoleMiddleware(domain.RoleMinistryAdmin))

	return svc, nil
}
