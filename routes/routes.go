package routes

import (
	"net/http"
	"time"

	"unityplates-backend/config"
	"unityplates-backend/controllers"
	"unityplates-backend/middlewares"
	"unityplates-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// route is one entry of the authoritative route table. authRequired gates
// the handler behind a valid session cookie; ownerParam names the path
// parameter that must additionally match the authenticated email.
type route struct {
	method       string
	path         string
	handler      gin.HandlerFunc
	authRequired bool
	ownerParam   string
}

// SetupRouter wires services, controllers and middleware over the given
// database handle and returns the ready-to-serve engine.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	tokens := services.NewTokenService(cfg.JWTSecret)
	foods := services.NewFoodService(db)
	requests := services.NewRequestService(db)

	auth := controllers.NewAuthController(tokens, cfg.Production())
	food := controllers.NewFoodController(foods)
	request := controllers.NewRequestController(requests)

	table := []route{
		{method: http.MethodPost, path: "/jwt", handler: auth.IssueToken},
		{method: http.MethodGet, path: "/logout", handler: auth.Logout},
		{method: http.MethodPost, path: "/postedfoods", handler: food.CreateFood},
		{method: http.MethodPost, path: "/requestedfoods", handler: request.CreateRequest},
		{method: http.MethodGet, path: "/getMyFoods/:email", handler: request.MyRequests, authRequired: true, ownerParam: "email"},
		{method: http.MethodGet, path: "/foods", handler: food.TopFoods},
		{method: http.MethodGet, path: "/availabefoods", handler: food.AvailableFoods},
		{method: http.MethodGet, path: "/availabefoodsorted", handler: food.AvailableFoodsSorted},
		{method: http.MethodGet, path: "/manageAllFoods/:email", handler: food.ManageFoods, authRequired: true, ownerParam: "email"},
		{method: http.MethodGet, path: "/searchfoods/:search", handler: food.SearchFoods},
		{method: http.MethodGet, path: "/fooddetails/:id", handler: food.FoodDetails},
		{method: http.MethodPut, path: "/updatesFoodData/:id", handler: food.UpdateFood, authRequired: true},
		{method: http.MethodDelete, path: "/deletefood/:id", handler: food.DeleteFood},
	}

	r := gin.New()
	r.Use(middlewares.RequestLogger(log.Logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "unityplates server is running")
	})

	for _, rt := range table {
		handlers := make([]gin.HandlerFunc, 0, 3)
		if rt.authRequired {
			handlers = append(handlers, middlewares.RequireAuth(tokens))
		}
		if rt.ownerParam != "" {
			handlers = append(handlers, middlewares.RequireOwnership(rt.ownerParam))
		}
		handlers = append(handlers, rt.handler)
		r.Handle(rt.method, rt.path, handlers...)
	}

	return r
}
