package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lanhoang/perfreview/config"
	"github.com/lanhoang/perfreview/database"
	_ "github.com/lanhoang/perfreview/docs" // Swagger docs - auto-generated
	authctrl "github.com/lanhoang/perfreview/internal/controller/auth"
	studentctrl "github.com/lanhoang/perfreview/internal/controller/student"
	teacherctrl "github.com/lanhoang/perfreview/internal/controller/teacher"
	"github.com/lanhoang/perfreview/internal/logger"
	"github.com/lanhoang/perfreview/internal/model"
	"github.com/lanhoang/perfreview/internal/repository"
	"github.com/lanhoang/perfreview/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Performance Review Package API
// @version 1.0
// @description Exam script analysis: students submit scanned scripts gated by a staff access code, an AI pipeline segments and scores them into topic folders, and staff review aggregated performance per subject.
// @contact.name API Support
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewKVRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAnalysisStore,
			service.NewAccessCodeService,
			service.NewGeminiAnalyzerService,
			service.NewSubmissionService,
			service.NewReviewService,
		),

		// API Controllers Layer
		fx.Provide(
			authctrl.NewAuthController,
			studentctrl.NewStudentController,
			teacherctrl.NewTeacherController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	// Request ID + zerolog request logging.
	r.Use(func(c *gin.Context) {
		c.Set("request_id", uuid.NewString())
		c.Next()
	})
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *authctrl.AuthController,
	studentCtrl *studentctrl.StudentController,
	teacherCtrl *teacherctrl.TeacherController,
) {
	api := router.Group("/api/v1")
	{
		api.POST("/auth/login", authCtrl.Login)

		// Student surface
		api.POST("/submissions", studentCtrl.SubmitExam)
		api.GET("/students/:student_id/analyses", studentCtrl.GetStudentAnalyses)

		// Staff surface
		teacherGroup := api.Group("/teacher")
		teacherGroup.POST("/access-code", teacherCtrl.IssueAccessCode)
		teacherGroup.GET("/access-code", teacherCtrl.GetAccessCode)
		teacherGroup.GET("/subjects", teacherCtrl.GetSubjects)
		teacherGroup.GET("/subjects/:subject/stats", teacherCtrl.GetSubjectStats)
		teacherGroup.GET("/subjects/:subject/analyses", teacherCtrl.GetSubjectAnalyses)
		teacherGroup.GET("/subjects/:subject/topics/:topic/segments", teacherCtrl.GetTopicFolder)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Performance Review API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(&model.KVEntry{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
