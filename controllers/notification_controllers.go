package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jdeguzman/traffic-records/middlewares"
	"github.com/jdeguzman/traffic-records/models"
	"github.com/jdeguzman/traffic-records/utils"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// UnreadCount returns how many unread notifications the caller has. The
// client polls this for the bell badge.
func (nc *NotificationController) UnreadCount(c *gin.Context) {
	userID, ok := middlewares.CallerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var count int64
	err := nc.DB.Model(&models.Notification{}).
		Where("user_id = ? AND status = ?", userID, models.NotificationUnread).
		Count(&count).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// List returns the caller's ten most recent notifications.
func (nc *NotificationController) List(c *gin.Context) {
	userID, ok := middlewares.CallerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	notifications := make([]models.Notification, 0)
	err := nc.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(10).
		Find(&notifications).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkAsRead flips one notification to read. The update is scoped to the
// caller's own rows, so marking someone else's notification (or a missing
// id) is a silent no-op; repeat calls are idempotent.
func (nc *NotificationController) MarkAsRead(c *gin.Context) {
	userID, ok := middlewares.CallerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	id, _ := strconv.Atoi(c.Param("notif_id"))

	err := nc.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", models.NotificationRead).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MarkAllAsRead flips every unread notification of the caller in one UPDATE.
func (nc *NotificationController) MarkAllAsRead(c *gin.Context) {
	userID, ok := middlewares.CallerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	err := nc.DB.Model(&models.Notification{}).
		Where("user_id = ? AND status = ?", userID, models.NotificationUnread).
		Update("status", models.NotificationRead).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
