package routes

import (
	"allocation-engine-backend/internal/allocation"
	"allocation-engine-backend/internal/api/handlers"
	"allocation-engine-backend/internal/api/middleware"
	"allocation-engine-backend/internal/config"
	"allocation-engine-backend/internal/events"
	"allocation-engine-backend/internal/logger"
	"allocation-engine-backend/internal/metrics"
	"allocation-engine-backend/internal/repository"
	"allocation-engine-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the infrastructure pieces built by main
type Dependencies struct {
	// Backend is the allocation service. nil selects the local backend.
	Backend allocation.Service
	// Publisher receives allocation events. nil drops them.
	Publisher events.Publisher
	// Metrics records engine activity. nil disables metrics.
	Metrics metrics.Collector
	// Gatherer is served on /metrics when set
	Gatherer prometheus.Gatherer
	// Checks are reported by the health endpoints next to the database
	Checks map[string]handlers.Checker
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	if deps.Publisher == nil {
		deps.Publisher = events.NopPublisher{}
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewNop()
	}

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(db)
	moduleRepo := repository.NewModuleRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	releaseRepo := repository.NewReleaseRepository(db)
	testCaseRepo := repository.NewTestCaseRepository(db)
	recordRepo := repository.NewAllocationRecordRepository(db)
	qaRepo := repository.NewQAAssignmentRepository(db)

	backend := deps.Backend
	if backend == nil {
		backend = service.NewLocalAllocationBackend(recordRepo)
	}

	// Initialize the allocation engine
	tracker := service.NewReleaseTracker(recordRepo, qaRepo)
	executor := allocation.NewExecutor(backend,
		allocation.WithRecorder(tracker),
		allocation.WithTimeout(cfg.RequestTimeout()),
		allocation.WithMaxFailureMessages(cfg.AllocationMaxFailureMsgs),
		allocation.WithMetrics(deps.Metrics),
		allocation.WithLogger(logger.New()),
	)
	sessions := allocation.NewSessionStore(
		allocation.WithSessionTTL(cfg.SessionTTL()),
		allocation.WithStrictSelection(cfg.StrictSelection()),
	)

	// Initialize services
	releaseAllocationService := service.NewReleaseAllocationService(testCaseRepo, releaseRepo, recordRepo, tracker, executor, deps.Publisher, validator)
	qaAllocationService := service.NewQAAllocationService(releaseRepo, employeeRepo, qaRepo, tracker, deps.Publisher, deps.Metrics, validator)
	moduleAssignmentService := service.NewModuleAssignmentService(projectRepo, moduleRepo, employeeRepo, validator)
	selectionService := service.NewSelectionService(sessions, moduleRepo, releaseAllocationService, qaAllocationService, validator)
	directoryService := service.NewDirectoryService(projectRepo, moduleRepo, employeeRepo, releaseRepo, testCaseRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, deps.Checks)
	allocationHandler := handlers.NewAllocationHandler(releaseAllocationService)
	qaAllocationHandler := handlers.NewQAAllocationHandler(qaAllocationService)
	moduleHandler := handlers.NewModuleHandler(moduleAssignmentService)
	selectionHandler := handlers.NewSelectionHandler(selectionService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		allocations := v1.Group("/allocations")
		{
			allocations.POST("", allocationHandler.Allocate)
			allocations.POST("/preview", allocationHandler.Preview)
		}

		releases := v1.Group("/releases")
		{
			releases.GET("", directoryHandler.ListReleases) // Optional project_id parameter
			releases.GET("/:id/allocations", allocationHandler.GetReleaseAllocations)
			releases.GET("/:id/qa-allocations", qaAllocationHandler.GetStatus)
			releases.POST("/:id/qa-allocations", qaAllocationHandler.Allocate)
			releases.DELETE("/:id/qa-allocations/:qaId/test-cases/:testCaseId", qaAllocationHandler.Remove)
		}

		v1.GET("/projects", directoryHandler.ListProjects)
		v1.GET("/projects/:id/modules", moduleHandler.GetProjectModules)

		modules := v1.Group("/modules")
		{
			modules.PUT("/:id/developers", moduleHandler.AssignModule)
			modules.PUT("/:id/submodules/:submoduleId/developers", moduleHandler.AssignSubmodule)
			modules.GET("/:id/team", moduleHandler.GetTeam)
			modules.GET("/:id/submodules", directoryHandler.ListSubmodules)
		}

		selections := v1.Group("/selections")
		{
			selections.POST("", selectionHandler.Create)
			selections.GET("/:id", selectionHandler.Get)
			selections.DELETE("/:id", selectionHandler.Delete)
			selections.POST("/:id/sources/toggle", selectionHandler.ToggleSource)
			selections.POST("/:id/targets/toggle", selectionHandler.ToggleTarget)
			selections.POST("/:id/sources/select-all", selectionHandler.SelectAllSources)
			selections.POST("/:id/targets/select-all", selectionHandler.SelectAllTargets)
			selections.PUT("/:id/mode", selectionHandler.SetMode)
			selections.PUT("/:id/target", selectionHandler.SetTarget)
			selections.DELETE("/:id/items", selectionHandler.Clear)
			selections.POST("/:id/modules/:moduleId/toggle", selectionHandler.ToggleModule)
			selections.POST("/:id/modules/:moduleId/submodules/:submoduleId/toggle", selectionHandler.ToggleSubmodule)
			selections.POST("/:id/submit", selectionHandler.Submit)
			selections.POST("/:id/qa-submit", selectionHandler.SubmitQA)
		}

		v1.GET("/employees", directoryHandler.ListEmployees) // Optional designation, limit and offset parameters
		v1.GET("/test-cases", directoryHandler.ListTestCases) // Optional module_id parameter
	}

	return router
}
