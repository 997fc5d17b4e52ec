package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-finder/config"
	"github.com/yeremiapane/cafe-finder/controllers"
	"github.com/yeremiapane/cafe-finder/live"
	"github.com/yeremiapane/cafe-finder/middlewares"
	"github.com/yeremiapane/cafe-finder/services"
	"github.com/yeremiapane/cafe-finder/utils"
	"github.com/yeremiapane/cafe-finder/views"
	"gorm.io/gorm"
)

// SetupRouter wires the store, the access guard and the controllers into a
// gin engine.
func SetupRouter(db *gorm.DB, cfg config.Config) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())

	tmpl, err := views.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	rateLimiter := middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigins))
	r.Use(rateLimiter.RateLimit())

	catalog := services.NewCatalogService(db)
	guard := services.NewAccessGuard(cfg.AdminSecretKey)
	flash := utils.NewFlashStore(cfg.SessionSecret)
	hub := live.NewHub()

	cafeCtrl := controllers.NewCafeController(catalog, flash, hub)
	adminCtrl := controllers.NewAdminController(catalog, flash, hub)
	liveCtrl := controllers.NewLiveController(hub)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		utils.RespondJSON(c, http.StatusOK, "pong", nil)
	})

	r.GET("/", cafeCtrl.Homepage)
	r.GET("/cafe/:cafe_id/", cafeCtrl.CafeDetail)
	r.POST("/cafe/:cafe_id/", cafeCtrl.SubmitReview)
	r.GET("/review/:review_id/vote/:vote_type/", cafeCtrl.VoteReview)
	r.POST("/review/:review_id/vote/:vote_type/", cafeCtrl.VoteReview)

	r.GET("/ws", liveCtrl.Subscribe)

	// ----------------------------------------------------------------
	//                  EDIT ROUTES (access key)
	// ----------------------------------------------------------------
	edit := r.Group("/edit")
	edit.Use(middlewares.RequireAccessKey(guard, flash))
	{
		edit.GET("/", adminCtrl.EditPage)
		edit.GET("/add/", adminCtrl.AddCafe)
		edit.POST("/add/", adminCtrl.AddCafe)
		edit.GET("/cafe/:cafe_id/", adminCtrl.EditCafe)
		edit.POST("/cafe/:cafe_id/", adminCtrl.EditCafe)
		edit.GET("/cafe/:cafe_id/delete/", adminCtrl.DeleteCafe)
		edit.POST("/cafe/:cafe_id/delete/", adminCtrl.DeleteCafe)
	}

	return r, nil
}
