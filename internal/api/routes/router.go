package routes

import (
	"github.com/tanzeemhub/reports-go/internal/api/handlers"
	"github.com/tanzeemhub/reports-go/internal/api/middleware"
)

// RegisterRoutes wires every HTTP endpoint onto the engine. Everything except
// register/login sits behind JWT auth; admin and reviewer routes add a role
// gate on top, and scope narrowing happens inside the services.
func RegisterRoutes(h *handlers.Handlers) {
	r := h.Router

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.GET("/auth/status", middleware.JWTAuthMiddleware(), h.User.AuthStatus)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/events", h.Events.Stream)

		zones := auth.Group("/zones")
		{
			zones.GET("", h.Org.ListZones)
			zones.POST("", middleware.Admin(), h.Org.CreateZone)
		}
		dilas := auth.Group("/dilas")
		{
			dilas.GET("", h.Org.ListDilas)
			dilas.POST("", middleware.Admin(), h.Org.CreateDila)
		}
		muqams := auth.Group("/muqams")
		{
			muqams.GET("", h.Org.ListMuqams)
			muqams.POST("", middleware.Admin(), h.Org.CreateMuqam)
		}
		jamaats := auth.Group("/jamaats")
		{
			jamaats.GET("", h.Org.ListJamaats)
			jamaats.POST("", middleware.Admin(), h.Org.CreateJamaat)
		}

		templates := auth.Group("/templates")
		{
			templates.GET("", h.Template.ListTemplates)
			templates.GET("/:id", h.Template.GetTemplate)
			templates.POST("", middleware.Admin(), h.Template.CreateTemplate)
			templates.PUT("/:id", middleware.Admin(), h.Template.UpdateTemplate)
			templates.PUT("/:id/activate", middleware.Admin(), h.Template.ActivateTemplate)
			templates.PUT("/:id/deactivate", middleware.Admin(), h.Template.DeactivateTemplate)
			templates.POST("/:id/windows", middleware.Admin(), h.Window.OpenWindow)
		}

		windows := auth.Group("/windows")
		{
			windows.GET("", h.Window.ListWindows)
			windows.GET("/overdue", middleware.Reviewer(), h.Window.ListOverdue)
			windows.GET("/:id", h.Window.GetWindow)
			windows.PUT("/:id", middleware.Admin(), h.Window.UpdateWindow)
			windows.PUT("/:id/deactivate", middleware.Admin(), h.Window.DeactivateWindow)
		}

		submissions := auth.Group("/submissions")
		{
			submissions.POST("/draft", h.Submission.SaveDraft)
			submissions.POST("/submit", h.Submission.Submit)
			submissions.GET("", h.Submission.List)
			submissions.GET("/:id", h.Submission.Get)
			submissions.GET("/:id/ledger", h.Submission.Ledger)
			submissions.PUT("/:id/approve", middleware.Reviewer(), h.Submission.Approve)
			submissions.PUT("/:id/reject", middleware.Reviewer(), h.Submission.Reject)
			submissions.PUT("/:id/return", h.Submission.ReturnToDraft)
			submissions.POST("/bulk-approve", middleware.Reviewer(), h.Submission.BulkApprove)
			submissions.POST("/bulk-reject", middleware.Reviewer(), h.Submission.BulkReject)

			submissions.POST("/:id/flags", middleware.Reviewer(), h.Flag.RaiseFlag)
			submissions.GET("/:id/flags", middleware.Reviewer(), h.Flag.ListFlags)

			submissions.POST("/:id/comments", h.Comment.AddComment)
			submissions.GET("/:id/comments", h.Comment.ListComments)

			submissions.POST("/:id/attachments", h.Attachment.Upload)
			submissions.GET("/:id/attachments", h.Attachment.ListBySubmission)
		}

		flags := auth.Group("/flags")
		{
			flags.PUT("/:id/resolve", middleware.Reviewer(), h.Flag.ResolveFlag)
		}

		comments := auth.Group("/comments")
		{
			comments.PUT("/:id", h.Comment.UpdateComment)
			comments.DELETE("/:id", h.Comment.DeleteComment)
		}

		attachments := auth.Group("/attachments")
		{
			attachments.GET("/:id/download", h.Attachment.Download)
			attachments.DELETE("/:id", h.Attachment.Delete)
		}

		users := auth.Group("/users")
		{
			users.GET("", middleware.Admin(), h.User.ListUsers)
			users.GET("/:id", h.User.GetUser)
			users.PUT("/:id", middleware.UserOrAdmin(), h.User.UpdateUser)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", middleware.Admin(), h.Audit.GetAuditLogs)
		}
	}
}
