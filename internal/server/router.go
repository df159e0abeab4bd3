package server

import (
	"log/slog"
	"net/http"

	"dealership/internal/auth"
	"dealership/internal/config"
	"dealership/internal/handlers"
	"dealership/internal/metrics"
	"dealership/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const sessionName = "dealership_session"

type Deps struct {
	Handler *handlers.Handler
	Users   *auth.Service
	Metrics *metrics.Metrics
	Log     *slog.Logger
}

func NewRouter(cfg *config.Config, d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.Metrics(d.Metrics))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 14,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))
	r.Use(middleware.InjectUser(d.Users))

	h := d.Handler

	// AUTH
	r.POST("/registration", h.Register)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.POST("/logout", h.Logout)
	r.GET("/me", h.Me)

	// КАТАЛОГ
	r.GET("/get_cars", h.GetCars)
	r.GET("/car_makes", h.ListMakes)

	admin := r.Group("/")
	admin.Use(middleware.RequireAuth())
	admin.POST("/car_makes", h.CreateMake)
	admin.DELETE("/car_makes/:id", h.DeleteMake)
	admin.POST("/car_models", h.CreateModel)

	// ДИЛЕРЫ И ОТЗЫВЫ
	r.GET("/get_dealers", h.GetDealers)
	r.GET("/get_dealers/:state", h.GetDealers)
	r.GET("/dealer/:id", h.GetDealer)
	r.GET("/reviews/dealer/:id", h.GetDealerReviews)

	// метод проверяется в самой ручке, чтобы отдать {status:405}
	r.Any("/add_review", middleware.RequireAuth(), h.AddReview)

	// ЖУРНАЛ
	r.GET("/activity", middleware.RequireAuth(), h.ListActivity)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Metrics.Registry, promhttp.HandlerOpts{})))

	return r
}
