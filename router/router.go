package router

import (
	"github.com/gin-gonic/gin"
	"github.com/jdeguzman/traffic-records/controllers"
	"github.com/jdeguzman/traffic-records/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	employeeCtrl := controllers.NewEmployeeController(db)
	accidentCtrl := controllers.NewAccidentController(db)
	licenseCtrl := controllers.NewLicenseController(db)
	complaintCtrl := controllers.NewComplaintController(db)
	notificationCtrl := controllers.NewNotificationController(db)
	dashboardCtrl := controllers.NewDashboardController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/api")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)

	// Dashboard
	auth.GET("/dashboard/stats", dashboardCtrl.Stats)
	auth.GET("/dashboard/revenue-per-year", dashboardCtrl.RevenuePerYear)

	// Accidents: page-shaped listing and SPA listing diverge on search
	// columns and the operator placeholder, both kept.
	auth.GET("/accidents/page", accidentCtrl.Index)
	auth.GET("/accidents", accidentCtrl.ApiIndex)
	auth.GET("/accidents/:accident_id", accidentCtrl.Show)

	// Employees
	auth.GET("/employees", employeeCtrl.Index)
	auth.GET("/employees/active-officers", employeeCtrl.ActiveOfficers)
	auth.POST("/employees", employeeCtrl.Create)

	// Licenses (citations)
	auth.GET("/licenses", licenseCtrl.Index)
	auth.GET("/licenses/:license_id", licenseCtrl.Show)
	auth.POST("/licenses", licenseCtrl.Create)

	// Legal complaints
	auth.GET("/complaints", complaintCtrl.Index)
	auth.GET("/complaints/:complaint_id", complaintCtrl.Show)
	auth.POST("/complaints", complaintCtrl.Create)

	// Notifications, always scoped to the caller
	auth.GET("/notifications/unread-count", notificationCtrl.UnreadCount)
	auth.GET("/notifications/list", notificationCtrl.List)
	auth.POST("/notifications/read/:notif_id", notificationCtrl.MarkAsRead)
	auth.POST("/notifications/mark-all-read", notificationCtrl.MarkAllAsRead)

	return r
}
