package routes

import (
	adminapi "bettools-app/internal/api/admin"
	arbapi "bettools-app/internal/api/arb"
	authapi "bettools-app/internal/api/auth"
	"bettools-app/internal/api/billing"
	"bettools-app/internal/api/plans"
	promptsapi "bettools-app/internal/api/prompts"
	stripewebhooks "bettools-app/internal/api/stripewebhook"
	tipsapi "bettools-app/internal/api/tips"
	"bettools-app/internal/api/users"
	"bettools-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// ✅ Apply input sanitization to public routes only

	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/tips/free", tipsapi.ListFreeTips)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/plans", plans.ListPlans)
	public.GET("/verify", users.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.PUT("/me/locale", users.UpdateLocale)
	auth.GET("/payments", billing.GetPaymentHistory)
	auth.POST("/create-checkout-session", billing.CreateCheckoutSession)
	auth.POST("/billing-portal", billing.CreateBillingPortal)
	auth.POST("/change-password", authapi.ChangePassword)

	// Trial or paid subscription required
	vip := auth.Group("/")
	vip.Use(middleware.RequireAccess())
	vip.GET("/tips/vip", tipsapi.ListVipTips)
	vip.POST("/tools/arbitrage", arbapi.CalculateArbitrage)
	vip.POST("/tools/prompt", promptsapi.GeneratePrompt)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/stats", adminapi.GetAdminStats)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/payments", adminapi.ListAllPayments)
	admin.GET("/user/:id", adminapi.GetUserDetails)
	admin.POST("/user/:id/grant-trial", adminapi.GrantTrial)
	admin.POST("/sync-plans", plans.SyncPlansFromStripe)

	admin.POST("/tips", tipsapi.CreateTip)
	admin.PUT("/tips/:id", tipsapi.UpdateTip)
	admin.DELETE("/tips/:id", tipsapi.DeleteTip)
	admin.POST("/tips/:id/publish", tipsapi.PublishTip)
	admin.POST("/tips/:id/unpublish", tipsapi.UnpublishTip)
	admin.POST("/tips/:id/settle", tipsapi.SettleTip)
}
