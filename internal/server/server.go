package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/ecosnap/ecosnap-backend/internal/ai"
	"github.com/ecosnap/ecosnap-backend/internal/handler"
	appmw "github.com/ecosnap/ecosnap-backend/internal/middleware"
	"github.com/ecosnap/ecosnap-backend/internal/repository"
	"github.com/ecosnap/ecosnap-backend/internal/service"
	"github.com/ecosnap/ecosnap-backend/internal/token"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps carries the storage backends and collaborators the server wires
// into its services.
type Deps struct {
	Users    repository.UserRepository
	Sessions repository.SessionRepository
	Ledger   repository.LedgerRepository
	Analyzer ai.TrashAnalyzer
	JWT      *token.JWT
	Growth   *service.GrowthScheduler
}

type Server struct {
	e *echo.Echo
}

func New(deps Deps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false, nil
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return false, nil
			}
			if strings.HasSuffix(u.Hostname(), "vercel.app") {
				return true, nil
			}
			return false, nil
		},
	}))

	userSvc := service.NewUserService(deps.Users, deps.Sessions, deps.Growth)
	userHandler := handler.NewUserHandler(userSvc, deps.JWT)

	trashSvc := service.NewTrashService(deps.Users, deps.Ledger, deps.Analyzer)
	trashHandler := handler.NewTrashHandler(trashSvc)

	treeSvc := service.NewTreeService(deps.Users, deps.Growth)
	treeHandler := handler.NewTreeHandler(treeSvc, deps.Growth)

	statsHandler := handler.NewStatsHandler(userSvc)

	authMw := appmw.NewAuthMiddleware(deps.JWT)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.POST("/login", userHandler.Login)
	api.GET("/session", userHandler.Session)
	api.POST("/logout", userHandler.Logout, authMw.RequireAuth)
	api.GET("/me", userHandler.Me, authMw.RequireAuth)

	api.POST("/trash/analyze", trashHandler.Analyze, authMw.RequireAuth)
	api.POST("/trash/confirm", trashHandler.Confirm, authMw.RequireAuth)

	api.GET("/trees", treeHandler.List, authMw.RequireAuth)
	api.POST("/trees", treeHandler.Plant, authMw.RequireAuth)
	api.POST("/trees/:id/water", treeHandler.Water, authMw.RequireAuth)
	api.GET("/progress", treeHandler.Progress, authMw.RequireAuth)

	api.GET("/stats", statsHandler.Get, authMw.RequireAuth)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// Echo exposes the router for handler tests.
func (s *Server) Echo() *echo.Echo {
	return s.e
}
