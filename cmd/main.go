package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/examdesk/config"
	"github.com/lshigami/examdesk/database"
	_ "github.com/lshigami/examdesk/docs"
	"github.com/lshigami/examdesk/internal/controller"
	adminctrl "github.com/lshigami/examdesk/internal/controller/admin"
	userctrl "github.com/lshigami/examdesk/internal/controller/user"
	"github.com/lshigami/examdesk/internal/idgen"
	"github.com/lshigami/examdesk/internal/repository"
	"github.com/lshigami/examdesk/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title ExamDesk API
// @version 1.0
// @description Exam administration: departments, subjects and their sets, question banks, exam assignment and scoring.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newApp(cfg *config.Config) *fx.App {
	return fx.New(appOptions(cfg))
}

func appOptions(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			database.NewDatabase,
			NewGinEngine,
			func() idgen.Generator { return idgen.New() },
		),

		fx.Provide(
			repository.NewDepartmentRepository,
			repository.NewSubjectRepository,
			repository.NewQuestionBankRepository,
			repository.NewStudentRepository,
		),

		fx.Provide(
			service.NewDepartmentService,
			service.NewSubjectService,
			service.NewQuestionBankService,
			service.NewStudentService,
			func(subjectRepo repository.SubjectRepository, studentRepo repository.StudentRepository, cfg *config.Config) service.ExamAssignmentService {
				return service.NewExamAssignmentService(subjectRepo, studentRepo, cfg.Exam.BatchConcurrency)
			},
			func(studentRepo repository.StudentRepository, bankRepo repository.QuestionBankRepository, cfg *config.Config) service.ExamSubmissionService {
				return service.NewExamSubmissionService(studentRepo, bankRepo, cfg.Exam.UnscopedFallback)
			},
		),

		fx.Provide(
			adminctrl.NewDepartmentController,
			adminctrl.NewSubjectController,
			adminctrl.NewQuestionBankController,
			adminctrl.NewStudentController,
			adminctrl.NewExamAssignmentController,
			userctrl.NewExamController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.Use(controller.RequestID())
	r.Use(controller.RequestLogger())
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", controller.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", controller.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer mounts every controller and ties the HTTP server to the app lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	departmentCtrl *adminctrl.DepartmentController,
	subjectCtrl *adminctrl.SubjectController,
	questionBankCtrl *adminctrl.QuestionBankController,
	studentCtrl *adminctrl.StudentController,
	assignmentCtrl *adminctrl.ExamAssignmentController,
	examCtrl *userctrl.ExamController,
) {
	adminAPIGroup := router.Group("/api/v1/admin")
	departmentCtrl.RegisterRoutes(adminAPIGroup)
	subjectCtrl.RegisterRoutes(adminAPIGroup)
	questionBankCtrl.RegisterRoutes(adminAPIGroup)
	studentCtrl.RegisterRoutes(adminAPIGroup)
	assignmentCtrl.RegisterRoutes(adminAPIGroup)

	examCtrl.RegisterRoutes(router.Group("/api/v1"))

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("ExamDesk API server starting on port %s", cfg.Server.Port)
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
	if err := database.Migrate(db); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
