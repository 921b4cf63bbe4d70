package router

import (
	"time"

	"github.com/bugstack-dev/bugstack/internal/handlers"
	"github.com/bugstack-dev/bugstack/internal/middleware"
	"github.com/bugstack-dev/bugstack/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/createuser", handlers.CreateUser)
			auth.POST("/login", handlers.LoginUser)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
			auth.POST("/logout", middleware.AuthMiddleware(), handlers.LogoutUser)
		}

		projects := api.Group("/projects")
		{
			projects.POST("/createproject", handlers.CreateProject)
			projects.POST("/addusers", handlers.AddUsers)
			projects.GET("/fetchallprojects/:user_id", handlers.ListProjects)
			projects.GET("/getprojectdata/:project_id", handlers.GetProjectData)
			projects.GET("/fetchallusers/:project_id", handlers.ListProjectUsers)
		}

		tickets := api.Group("/tickets")
		{
			tickets.POST("/createticket", handlers.CreateTicket)
			tickets.GET("/fetchalltickets/:user_id", handlers.ListTickets)
			tickets.GET("/getticket/:ticket_id", handlers.GetTicket)
		}
	}

	return r
}
