package users

import (
	"net/http"
	"time"

	"bettools-app/database"
	"bettools-app/internal/domain/access"
	"bettools-app/internal/domain/users"
	"bettools-app/internal/locale"

	"github.com/gin-gonic/gin"
)

// GetCurrentUser backs the account page and the live countdown: the
// frontend polls it each second while the banner is visible, so the
// access block is recomputed from the wall clock on every call.
func GetCurrentUser(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.
		Preload("Plan").
		Where("email = ?", email).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	lang := c.Query("lang")
	if lang == "" {
		lang = user.Locale
	}
	lang = locale.Normalize(lang)

	state := access.Resolve(access.RecordFor(user), time.Now())

	resp := MeResponse{
		User: UserDTO{
			ID:         user.ID,
			Email:      user.Email,
			Name:       user.Name,
			Lastname:   user.Lastname,
			Role:       user.Role,
			IsVerified: user.IsVerified,
			Locale:     user.Locale,
		},
		Billing: BillingDTO{
			Plan:         BuildPlanDTO(user.Plan),
			Subscription: BuildSubscriptionDTO(user),
			Trial:        BuildTrialDTO(user),
		},
		Access: BuildAccessDTO(state, lang, user.Plan),
	}

	c.JSON(http.StatusOK, resp)
}

func UpdateLocale(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		Locale string `json:"locale" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	normalized := locale.Normalize(body.Locale)
	if err := database.DB.Model(&users.User{}).Where("id = ?", userID).Update("locale", normalized).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update locale"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"locale": normalized})
}

func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	var t users.VerificationToken
	if err := database.DB.Where("token = ? AND type = ?", token, users.TokenEmailVerification).First(&t).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	if err := database.DB.Model(&users.User{}).Where("id = ?", t.UserID).Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	database.DB.Delete(&t)

	redirectURL := c.Query("redirect")
	if redirectURL == "" {
		c.JSON(http.StatusOK, gin.H{"message": "Email verified. You can sign in now."})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
