package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"studiobook/internal/auth"
	"studiobook/internal/booking"
	"studiobook/internal/calendar"
	"studiobook/internal/clock"
	"studiobook/internal/config"
	"studiobook/internal/studio"
	"studiobook/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(database *sqlx.DB, cfg *config.Config, calendarService *calendar.Service, clk clock.Clock) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	userRepo := user.NewRepository(database)
	studioRepo := studio.NewRepository(database)
	bookingRepo := booking.NewRepository(database)

	userService := user.NewService(userRepo, cfg.JWTSecret)
	studioService := studio.NewService(studioRepo, clk)
	bookingService := booking.NewService(bookingRepo, studioRepo, userRepo, calendarService, clk)

	userHandler := user.NewHandler(userService)
	studioHandler := studio.NewHandler(studioService)
	bookingHandler := booking.NewHandler(bookingService)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.GET("/studios", studioHandler.ListStudios)
		protected.GET("/studios/:studioID/schedule", studioHandler.GetDaySchedule)
		protected.POST("/bookings", bookingHandler.RequestBooking)
		protected.POST("/bookings/:bookingID/cancel", bookingHandler.RequestCancellation)
		protected.GET("/bookings", bookingHandler.ListMyBookings)
		protected.GET("/allocation", bookingHandler.GetAllocation)
	}

	adminMiddleware := auth.RequireRole("admin")
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/studios", studioHandler.CreateStudio)
		admin.GET("/studios/:studioID/bookings", bookingHandler.ListBookingsByStudio)
		admin.GET("/analytics/bookings", bookingHandler.GetBookingAnalytics)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     database,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
