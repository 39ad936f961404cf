package server

import (
	"net/http"

	"github.com/avolkov/cardbase/app_setting"
	"github.com/avolkov/cardbase/server/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Server holds the shared store handle used by every handler. Each request
// runs its statements on the underlying connection pool; the store's own
// transactional isolation is the only consistency guarantee.
type Server struct {
	db *gorm.DB
}

// NewRouter assembles the gin engine: CORS, request logging, the health
// check, one resource group per entity, the composite card routes, the mock
// chat endpoint and the static frontend mount.
func NewRouter(db *gorm.DB, setting app_setting.ServerAppSetting) *gin.Engine {
	s := &Server{db: db}

	router := gin.Default()
	router.Use(cors.Default())
	router.Use(middlewares.RequestLog())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := router.Group("/users")
	{
		users.GET("", s.listUsers)
		users.GET("/:id", s.getUser)
		users.POST("", s.createUser)
		users.PUT("/:id", s.updateUser)
		users.DELETE("/:id", s.deleteUser)
	}

	domains := router.Group("/domains")
	{
		domains.GET("", s.listDomains)
		domains.GET("/:id", s.getDomain)
		domains.POST("", s.createDomain)
		domains.PUT("/:id", s.updateDomain)
		domains.DELETE("/:id", s.deleteDomain)
	}

	sources := router.Group("/sources")
	{
		sources.GET("", s.listSources)
		sources.GET("/:id", s.getSource)
		sources.POST("", s.createSource)
		sources.PUT("/:id", s.updateSource)
		sources.DELETE("/:id", s.deleteSource)
	}

	cards := router.Group("/cards")
	{
		cards.GET("", s.listCards)
		cards.GET("/feed", s.cardFeed)
		cards.GET("/:id", s.getCard)
		cards.GET("/:id/full", s.getCardFull)
		cards.POST("", s.createCard)
		cards.PUT("/:id", s.updateCard)
		cards.DELETE("/:id", s.deleteCard)
		cards.POST("/:id/sources/:sourceID", s.linkCardSource)
		cards.DELETE("/:id/sources/:sourceID", s.unlinkCardSource)
	}

	experts := router.Group("/experts")
	{
		experts.GET("", s.listExperts)
		experts.GET("/:id", s.getExpert)
		experts.POST("", s.createExpert)
		experts.PUT("/:id", s.updateExpert)
		experts.DELETE("/:id", s.deleteExpert)
	}

	events := router.Group("/events")
	{
		events.GET("", s.listEvents)
		events.GET("/:id", s.getEvent)
		events.POST("", s.createEvent)
		events.PUT("/:id", s.updateEvent)
		events.DELETE("/:id", s.deleteEvent)
	}

	router.POST("/chat/mock", s.mockChat)

	// The frontend bundle is an external collaborator, only the mount lives
	// here.
	if setting.STATIC_DIR != "" {
		router.Static(setting.STATIC_MOUNT_PATH, setting.STATIC_DIR)
	}

	return router
}
