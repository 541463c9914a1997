package routes

import (
	"time"

	"unovation-backend/config"
	"unovation-backend/controllers"
	"unovation-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRouter(cfg *config.Config, logger *zap.Logger, ctl *controllers.Controller) *gin.Engine {
	utils.RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(config.RequestLogger(logger, cfg.SlowRequestThreshold))

	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", config.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", config.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORSAllowOrigins) == 0 {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))

	r.GET("/health", ctl.Health)

	// Website forms are public
	forms := r.Group("/api/forms")
	{
		forms.POST("/quote", ctl.SubmitQuote)
		forms.POST("/service-inquiry", ctl.SubmitServiceInquiry)
		forms.POST("/contact", ctl.SubmitContact)
		forms.POST("/newsletter-footer", ctl.SubmitNewsletterFooter)
		forms.POST("/job-application", ctl.SubmitJobApplication)
		forms.POST("/project-interest", ctl.SubmitProjectInterest)
		forms.POST("/feedback", ctl.SubmitFeedback)
		forms.POST("/lead-tracking", ctl.TrackLead)
	}

	r.POST("/api/admin/login", ctl.Login)

	requireAdmin := utils.AuthMiddleware(ctl.Sessions.Secret(), ctl.Sessions)

	admin := r.Group("/api/admin", requireAdmin)
	{
		admin.POST("/logout", ctl.Logout)
		admin.GET("/data", ctl.GetLeadData)
		admin.DELETE("/data/:type/:id", ctl.DeleteLead)
		admin.POST("/inquiries/:id/convert", ctl.ConvertInquiry)
	}

	crm := r.Group("/api/crm", requireAdmin)
	{
		crm.GET("/dashboard", ctl.GetDashboard)

		// Client routes
		crm.POST("/clients", ctl.CreateClient)
		crm.GET("/clients", ctl.GetClients)
		crm.GET("/clients/:id", ctl.GetClient)
		crm.PATCH("/clients/:id", ctl.UpdateClient)
		crm.DELETE("/clients/:id", ctl.DeleteClient)

		// Follow-up routes
		crm.POST("/follow-ups", ctl.CreateFollowUp)
		crm.GET("/clients/:id/follow-ups", ctl.GetClientFollowUps)
		crm.PATCH("/follow-ups/:id", ctl.UpdateFollowUp)
		crm.DELETE("/follow-ups/:id", ctl.DeleteFollowUp)

		// One per client
		crm.POST("/requirements", ctl.SaveRequirement)
		crm.GET("/clients/:id/requirement", ctl.GetRequirement)
		crm.PATCH("/clients/:id/requirement", ctl.UpdateRequirement)

		crm.POST("/proposals", ctl.SaveProposal)
		crm.GET("/clients/:id/proposal", ctl.GetProposal)
		crm.PATCH("/clients/:id/proposal", ctl.UpdateProposal)

		crm.POST("/payments", ctl.SavePayment)
		crm.GET("/clients/:id/payment", ctl.GetPayment)
		crm.PATCH("/clients/:id/payment", ctl.UpdatePayment)

		crm.POST("/projects", ctl.SaveProject)
		crm.GET("/clients/:id/project", ctl.GetProject)
		crm.PATCH("/clients/:id/project", ctl.UpdateProject)
	}

	return r
}
