package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/technikait/bokser-dashboard-backend/internal/api/handlers"
	"github.com/technikait/bokser-dashboard-backend/internal/config"
	"github.com/technikait/bokser-dashboard-backend/internal/middleware"
	"github.com/technikait/bokser-dashboard-backend/internal/repository"
	"github.com/technikait/bokser-dashboard-backend/internal/service"
)

func main() {

	// LOAD ENV
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed load config:", err)
	}

	// INIT DB
	repo, err := repository.NewPostgresRepo(cfg)
	if err != nil {
		log.Fatal("db connect error:", err)
	}
	defer repo.Close()

	// MIGRATIONS (admins table only; the reporting schema is external)
	if err := repo.RunMigrations(context.Background()); err != nil {
		log.Fatal("migration error:", err)
	}

	// ADMIN SEED
	hashed, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err := repo.UpsertAdmin(context.Background(), cfg.AdminUsername, string(hashed)); err != nil {
		log.Println("failed seeding admin:", err)
	} else {
		log.Println("admin seeded OK")
	}

	// SERVICES
	authService := service.NewAuthService(repo, cfg.JWTSecret)

	// HANDLERS
	authHandler := handlers.NewAuthHandler(authService)
	caseHandler := handlers.NewCaseHandler(repo)
	contractorHandler := handlers.NewContractorHandler(repo)
	statsHandler := handlers.NewStatsHandler(repo)

	// ROUTER
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	if cfg.AuthRequired {
		api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	}

	// AUTH ROUTES
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	api.GET("/departments", caseHandler.ListDepartments)

	// CASE ROUTES
	cases := api.Group("/cases")
	{
		cases.GET("", caseHandler.ListCases)
		cases.GET("/overdue-count", caseHandler.OverdueCount)
		cases.GET("/:id/tasks", caseHandler.ListCaseTasks)
		cases.GET("/:id/details", caseHandler.GetCaseDetails)
		cases.GET("/:id/history", caseHandler.ListCaseHistory)
	}

	// CONTRACTOR ROUTES
	contractors := api.Group("/contractors")
	{
		contractors.GET("/:acronym", contractorHandler.GetContractor)
		contractors.GET("/:acronym/contacts", contractorHandler.ListContacts)
	}

	// STATS ROUTES
	stats := api.Group("/stats")
	{
		stats.GET("/status-distribution", statsHandler.StatusDistribution)
		stats.GET("/servicer-workload", statsHandler.ServicerWorkload)
		stats.GET("/top-subjects", statsHandler.TopSubjects)
		stats.GET("/yearly-review", statsHandler.YearlyReview)
		stats.GET("/competencies", statsHandler.Competencies)
		stats.GET("/program-servicer", statsHandler.ProgramServicer)
		stats.GET("/case-workload", statsHandler.CaseWorkload)
		stats.GET("/current-versions", statsHandler.CurrentVersions)
		stats.GET("/version-breakdown", statsHandler.VersionBreakdown)
		stats.GET("/contractors-by-version", statsHandler.ContractorsByVersion)
	}

	// START SERVER
	log.Println("Server running on port:", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server error:", err)
	}
}
