package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/cache"
	"github.com/BruksfildServices01/barbershop-api/internal/config"
	"github.com/BruksfildServices01/barbershop-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barbershop-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-api/internal/middleware"
	"github.com/BruksfildServices01/barbershop-api/internal/storage"
	ucAppointment "github.com/BruksfildServices01/barbershop-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	listCache := cache.New(cfg)
	imageStore := storage.NewS3(cfg)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListByClient(appointmentRepo)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	clientHandler := handlers.NewClientHandler(db, auditDispatcher)
	barberHandler := handlers.NewBarberHandler(db, listCache, auditDispatcher)
	barberImageHandler := handlers.NewBarberImageHandler(db, imageStore, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, listCache, auditDispatcher)
	reviewHandler := handlers.NewReviewHandler(db, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		getAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
	)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "okay"})
	})

	r.POST("/login", authHandler.Login)

	r.GET("/clients", clientHandler.List)
	r.POST("/clients", clientHandler.Create)

	r.GET("/barbers", barberHandler.List)
	r.POST("/barbers", barberHandler.Create)
	r.POST("/barbers/:id/image", barberImageHandler.Upload)

	r.GET("/services", serviceHandler.List)
	r.POST("/services", serviceHandler.Create)

	r.GET("/reviews", reviewHandler.List)
	r.POST("/reviews", reviewHandler.Create)

	r.GET("/appointments", appointmentHandler.ListByClient)
	r.POST("/appointments", appointmentHandler.Create)
	r.GET("/appointments/:id", appointmentHandler.Get)
	r.PATCH("/appointments/:id", appointmentHandler.Update)
	r.DELETE("/appointments/:id", appointmentHandler.Delete)

	// ------------------------------
	// AUTHENTICATED
	// ------------------------------
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/me", meHandler.GetMe)
	}
}
