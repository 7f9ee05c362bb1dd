package routes

import (
	"github.com/Hariom8799/nutrisnap/config"
	"github.com/Hariom8799/nutrisnap/controllers"
	"github.com/Hariom8799/nutrisnap/middlewares"
	"github.com/Hariom8799/nutrisnap/services"
	"github.com/Hariom8799/nutrisnap/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter wires services and controllers onto the Gin engine. The
// dashboard-serving routes sit behind the session middleware; auth routes
// are public.
func SetupRouter(cfg *config.Config, db *gorm.DB, uploader *utils.ImageUploader, logger logrus.FieldLogger) *gin.Engine {
	r := gin.Default()

	authSvc := services.NewAuthService(db, cfg.JWTSecret)
	profileSvc := services.NewProfileService(db)
	foodLogSvc := services.NewFoodLogService(db)
	classifierSvc := services.NewClassifierService(cfg.ModelURL)
	nutritionSvc := services.NewNutritionService(cfg.NutritionixAppID, cfg.NutritionixAppKey)

	authCtl := controllers.NewAuthController(authSvc, cfg.JWTSecret, cfg.Production(), logger)
	profileCtl := controllers.NewProfileController(profileSvc, logger)
	foodLogCtl := controllers.NewFoodLogController(foodLogSvc, profileSvc, logger)
	analyzeCtl := controllers.NewAnalyzeController(classifierSvc, logger)
	nutritionCtl := controllers.NewNutritionController(nutritionSvc, logger)
	uploadCtl := controllers.NewImageUploadController(uploader, logger)

	// Public auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/signin", authCtl.SignIn)
		auth.POST("/signout", authCtl.SignOut)
		auth.GET("/status", authCtl.Status)
	}

	// Protected routes: everything the dashboard, profile, and log-food
	// pages call.
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(cfg.JWTSecret, logger))
	{
		api.GET("/user-profile", profileCtl.GetProfile)
		api.POST("/user-profile", profileCtl.CreateProfile)
		api.PUT("/user-profile", profileCtl.UpdateProfile)

		api.GET("/food-logs", foodLogCtl.GetFoodLogs)
		api.POST("/log-food", foodLogCtl.LogFood)
		api.GET("/daily-summary", foodLogCtl.DailySummary)
		api.GET("/calorie-history", foodLogCtl.CalorieHistory)

		api.POST("/analyze-food", analyzeCtl.AnalyzeFood)
		api.POST("/nutrition-info", nutritionCtl.GetNutritionInfo)
		api.POST("/upload-image", uploadCtl.UploadImage)
	}

	return r
}
