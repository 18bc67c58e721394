package admin

import (
	"net/http"
	"time"

	"bettools-app/database"
	"bettools-app/internal/domain/access"
	"bettools-app/internal/domain/billing"
	"bettools-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID                uint       `json:"id"`
	Name              string     `json:"name"`
	Lastname          string     `json:"lastname"`
	Email             string     `json:"email"`
	Role              string     `json:"role"`
	IsVerified        bool       `json:"is_verified"`
	AccessState       string     `json:"access_state"`
	PlanName          *string    `json:"plan_name,omitempty"`
	StripeCustomerID  *string    `json:"stripe_customer_id,omitempty"`
	StripeSubID       *string    `json:"stripe_subscription_id,omitempty"`
	SubscriptionStart *time.Time `json:"subscription_start,omitempty"`
	SubscriptionEnd   *time.Time `json:"subscription_end,omitempty"`
	TrialEndAt        *time.Time `json:"trial_end_at,omitempty"`
	TrialConsumed     bool       `json:"trial_consumed"`
}

type AdminPayment struct {
	ID         uint    `json:"id"`
	Email      string  `json:"email"`
	PlanName   *string `json:"plan_name,omitempty"`
	AmountEUR  float64 `json:"amount_eur"`
	Status     string  `json:"status"`
	ReceiptURL *string `json:"receipt_url,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type AdminStats struct {
	TotalUsers    int            `json:"total_users"`
	ActiveTrials  int            `json:"active_trials"`
	ActiveSubs    int            `json:"active_subs"`
	TotalRevenue  float64        `json:"total_revenue"`
	RecentRevenue float64        `json:"recent_revenue"`
	UsersPerPlan  map[string]int `json:"users_per_plan"`
}

func AdminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the admin dashboard 👑",
	})
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	err := database.DB.Preload("Plan").Find(&all).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	now := time.Now()
	var adminUsers []AdminUser
	for _, u := range all {
		var planName *string
		if u.Plan != nil {
			planName = &u.Plan.Name
		}

		state := access.Resolve(access.RecordFor(u), now)

		adminUsers = append(adminUsers, AdminUser{
			ID:                u.ID,
			Name:              u.Name,
			Lastname:          u.Lastname,
			Email:             u.Email,
			Role:              u.Role,
			IsVerified:        u.IsVerified,
			AccessState:       string(state.Kind),
			PlanName:          planName,
			StripeCustomerID:  u.StripeCustomerID,
			StripeSubID:       u.SubscriptionId,
			SubscriptionStart: u.SubscriptionStart,
			SubscriptionEnd:   u.SubscriptionEnd,
			TrialEndAt:        u.TrialEndAt,
			TrialConsumed:     u.TrialConsumed,
		})
	}

	c.JSON(http.StatusOK, adminUsers)
}

func ListAllPayments(c *gin.Context) {
	var payments []billing.Payment
	err := database.DB.Preload("User").Preload("Plan").Order("created_at DESC").Find(&payments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	var result []AdminPayment
	for _, p := range payments {
		var planName *string
		if p.Plan != nil {
			planName = &p.Plan.Name
		}
		result = append(result, AdminPayment{
			ID:         p.ID,
			Email:      p.User.Email,
			PlanName:   planName,
			AmountEUR:  p.AmountEUR,
			Status:     p.Status,
			ReceiptURL: p.ReceiptURL,
			CreatedAt:  p.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, result)
}

func GetAdminStats(c *gin.Context) {
	var stats AdminStats

	var totalUsers int64
	var totalRevenue float64
	var recentRevenue float64

	database.DB.Model(&users.User{}).Count(&totalUsers)
	database.DB.Model(&billing.Payment{}).Where("status = ?", "paid").Select("COALESCE(SUM(amount_eur), 0)").Scan(&totalRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&billing.Payment{}).
		Where("status = ? AND created_at >= ?", "paid", thirtyDaysAgo).
		Select("COALESCE(SUM(amount_eur), 0)").Scan(&recentRevenue)

	now := time.Now()
	var activeTrials int64
	database.DB.Model(&users.User{}).
		Where("trial_consumed = ? AND trial_end_at > ?", false, now).
		Count(&activeTrials)

	var activeSubs int64
	database.DB.Model(&users.User{}).
		Where("stripe_subscription_status IN ? AND subscription_end > ?", []string{"active", "trialing"}, now).
		Count(&activeSubs)

	stats.TotalUsers = int(totalUsers)
	stats.ActiveTrials = int(activeTrials)
	stats.ActiveSubs = int(activeSubs)
	stats.TotalRevenue = totalRevenue
	stats.RecentRevenue = recentRevenue

	type PlanCount struct {
		Name  *string
		Count int
	}
	var counts []PlanCount

	database.DB.
		Table("users").
		Select("plans.name, COUNT(users.id) as count").
		Joins("LEFT JOIN plans ON users.plan_id = plans.id").
		Group("plans.name").
		Scan(&counts)

	stats.UsersPerPlan = map[string]int{}
	for _, pc := range counts {
		name := "No Plan"
		if pc.Name != nil {
			name = *pc.Name
		}
		stats.UsersPerPlan[name] = pc.Count
	}

	c.JSON(http.StatusOK, stats)
}

func GetUserDetails(c *gin.Context) {
	userID := c.Param("id")

	var user users.User
	if err := database.DB.Preload("Plan").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.Preload("Plan").Where("user_id = ?", userID).Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	state := access.Resolve(access.RecordFor(user), time.Now())

	c.JSON(http.StatusOK, gin.H{
		"user":         user,
		"payments":     payments,
		"access_state": string(state.Kind),
	})
}

// GrantTrial re-opens the one-time trial for a user. Support tool for
// refunds and goodwill; the window length is the standard one.
func GrantTrial(c *gin.Context) {
	var user users.User
	if err := database.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	now := time.Now()
	trialEnd := now.Add(access.TrialDuration)

	updates := map[string]interface{}{
		"trial_start_at": now,
		"trial_end_at":   trialEnd,
		"trial_consumed": false,
	}
	if err := database.DB.Model(&users.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to grant trial"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Trial granted",
		"trial_end_at": trialEnd,
	})
}
