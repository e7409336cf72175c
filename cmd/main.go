package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kennywonda/EMS-sub000/config"
	"github.com/kennywonda/EMS-sub000/database"
	adminctrl "github.com/kennywonda/EMS-sub000/internal/controller/admin"
	studentctrl "github.com/kennywonda/EMS-sub000/internal/controller/student"
	"github.com/kennywonda/EMS-sub000/internal/logger"
	"github.com/kennywonda/EMS-sub000/internal/model"
	"github.com/kennywonda/EMS-sub000/internal/repository"
	"github.com/kennywonda/EMS-sub000/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Examination Platform API
// @version 1.0
// @description Institutional examination platform: exam authoring, timed student submissions with automatic objective grading, and manual grading of subjective answers.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewExamRepository,
			repository.NewStudentRepository,
			repository.NewSubmissionRepository,
		),

		// Services
		fx.Provide(
			service.NewGraderService,
			service.NewScoreAggregatorService,
			service.NewAdminExamService,
			service.NewStudentExamService,
			service.NewStudentService,
			service.NewSubmissionService,
			service.NewGradingService,
		),

		// Controllers
		fx.Provide(
			adminctrl.NewExamController,
			adminctrl.NewStudentController,
			adminctrl.NewGradingController,
			studentctrl.NewExamController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Request logging through the global zerolog instance.
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
		AllowOrigins:     []string{"*"}, // Be more specific in production
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
	adminExamCtrl *adminctrl.ExamController,
	adminStudentCtrl *adminctrl.StudentController,
	gradingCtrl *adminctrl.GradingController,
	studentExamCtrl *studentctrl.ExamController,
) {
	// Admin & teacher routes
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/exams", adminExamCtrl.CreateExam)
		adminAPIGroup.GET("/exams/:exam_id", adminExamCtrl.GetExamDetails)

		adminAPIGroup.POST("/students", adminStudentCtrl.RegisterStudent)
		adminAPIGroup.GET("/students", adminStudentCtrl.ListStudents)

		adminAPIGroup.GET("/exams/:exam_id/submissions", gradingCtrl.ListSubmissions)
		adminAPIGroup.GET("/exams/:exam_id/submissions/pending", gradingCtrl.ListPendingSubmissions)
		adminAPIGroup.POST("/submissions/:submission_id/grade", gradingCtrl.GradeSubmission)
	}

	// Student routes
	studentAPIGroup := router.Group("/api/v1")
	{
		studentAPIGroup.GET("/exams", studentExamCtrl.GetAllExams)
		studentAPIGroup.GET("/exams/:exam_id", studentExamCtrl.GetExamDetails)

		studentAPIGroup.POST("/exams/:exam_id/submissions", studentExamCtrl.SubmitExam)
		studentAPIGroup.GET("/exams/:exam_id/my-submissions", studentExamCtrl.GetMySubmissions)
		studentAPIGroup.GET("/submissions/:submission_id", studentExamCtrl.GetSubmissionDetails)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Examination platform API starting on port %s", cfg.Server.Port)
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
	err := db.AutoMigrate(
		&model.Exam{},
		&model.Question{},
		&model.Student{},
		&model.Submission{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
