package router

import (
	"campconnect/internal/handlers"
	"campconnect/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	profileHandler := handlers.NewProfileHandler()
	projectHandler := handlers.NewProjectHandler()
	eventHandler := handlers.NewEventHandler()
	voteHandler := handlers.NewVoteHandler()
	commentHandler := handlers.NewCommentHandler()
	friendHandler := handlers.NewFriendHandler()
	chatHandler := handlers.NewChatHandler()
	dashboardHandler := handlers.NewDashboardHandler()
	discoverHandler := handlers.NewDiscoverHandler()

	// Public Routes
	r.POST("/signup", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.GET("/me", authHandler.Me)

	r.GET("/users/:id", profileHandler.Show)
	r.GET("/projects", projectHandler.List)
	r.GET("/projects/:id", projectHandler.Detail)
	r.GET("/events", eventHandler.List)
	r.GET("/events/:id", eventHandler.Detail)
	r.GET("/votes/:type/:id", voteHandler.Summary)
	r.GET("/comments/:type/:id", commentHandler.List)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.PUT("/profile", profileHandler.Update)
		authorized.POST("/profile/skills", profileHandler.AddSkill)
		authorized.DELETE("/profile/skills", profileHandler.RemoveSkill)
		authorized.POST("/profile/interests", profileHandler.AddInterest)
		authorized.DELETE("/profile/interests", profileHandler.RemoveInterest)
		authorized.POST("/profile/avatar", profileHandler.UploadAvatar)

		authorized.POST("/projects", projectHandler.Create)
		authorized.POST("/projects/:id/join", projectHandler.Join)
		authorized.DELETE("/projects/:id/leave", projectHandler.Leave)

		authorized.POST("/events", eventHandler.Create)

		authorized.POST("/votes/:type/:id", voteHandler.Cast)
		authorized.POST("/comments/:type/:id", commentHandler.Create)

		authorized.GET("/friends", friendHandler.List)
		authorized.GET("/friends/search", friendHandler.Search)
		authorized.GET("/friends/requests", friendHandler.Requests)
		authorized.GET("/friends/requests/sent", friendHandler.Sent)
		authorized.POST("/friends/requests", friendHandler.Send)
		authorized.POST("/friends/requests/:id/accept", friendHandler.Accept)
		authorized.POST("/friends/requests/:id/reject", friendHandler.Reject)

		authorized.GET("/chat/:friendID/messages", chatHandler.History)
		authorized.POST("/chat/:friendID/messages", chatHandler.Send)
		authorized.GET("/ws/chat/:friendID", chatHandler.Subscribe)

		authorized.GET("/dashboard", dashboardHandler.Overview)
		authorized.GET("/discover", discoverHandler.Index)
	}
}
