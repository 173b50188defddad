package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/taskgate/internal/services"
)

type Handler interface {
	HandleRequestLogger(c *gin.Context)
	HandleRecovery(c *gin.Context, recovered any)
	HandleCORS(c *gin.Context)

	HandleHealth(c *gin.Context)

	HandleListTasks(c *gin.Context)
	HandleGetTask(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)

	HandleNoRoute(c *gin.Context)
	HandleNoMethod(c *gin.Context)
}

type handlerImpl struct {
	logger     zerolog.Logger
	tasks      services.TaskService
	staticRoot string
}

func New(
	logger zerolog.Logger,
	taskService services.TaskService,
	staticRoot string,
) Handler {
	return &handlerImpl{
		logger:     logger,
		tasks:      taskService,
		staticRoot: staticRoot,
	}
}

// NewRouter wires h into a gin engine. Unmatched verbs on API routes get
// 405, unmatched API paths get 404, everything else is a static lookup.
func NewRouter(h Handler) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.RedirectTrailingSlash = false

	router.Use(h.HandleRequestLogger)
	router.Use(gin.CustomRecovery(h.HandleRecovery))
	router.Use(h.HandleCORS)

	api := router.Group("/api")
	api.GET("/health", h.HandleHealth)

	tasks := api.Group("/tasks")
	tasks.GET("", h.HandleListTasks)
	tasks.POST("", h.HandleCreateTask)
	tasks.GET("/:id", h.HandleGetTask)
	tasks.PUT("/:id", h.HandleUpdateTask)
	tasks.DELETE("/:id", h.HandleDeleteTask)

	router.NoRoute(h.HandleNoRoute)
	router.NoMethod(h.HandleNoMethod)
	return router
}
