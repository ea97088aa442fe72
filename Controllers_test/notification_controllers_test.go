package Controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/jdeguzman/traffic-records/controllers"
	"github.com/jdeguzman/traffic-records/models"
)

func setupNotificationRouter(db *gorm.DB, callerID uint) *gin.Engine {
	router := gin.New()
	notifCtrl := controllers.NewNotificationController(db)
	authed := router.Group("/api", authAs(callerID))
	authed.GET("/notifications/unread-count", notifCtrl.UnreadCount)
	authed.GET("/notifications/list", notifCtrl.List)
	authed.POST("/notifications/read/:notif_id", notifCtrl.MarkAsRead)
	authed.POST("/notifications/mark-all-read", notifCtrl.MarkAllAsRead)
	return router
}

func seedNotification(db *gorm.DB, userID uint, status int, createdAt time.Time) models.Notification {
	notif := models.Notification{
		UserID:    userID,
		Title:     "New Employee Registered",
		Message:   "Someone has been registered.",
		Status:    status,
		CreatedAt: createdAt,
	}
	db.Create(&notif)
	return notif
}

func TestUnreadCount(t *testing.T) {
	db := setupTestDB()
	owner := seedUser(db, "Owner", "owner@example.com")
	other := seedUser(db, "Other", "other@example.com")

	now := time.Now()
	seedNotification(db, owner.ID, models.NotificationUnread, now)
	seedNotification(db, owner.ID, models.NotificationUnread, now)
	seedNotification(db, owner.ID, models.NotificationRead, now)
	seedNotification(db, other.ID, models.NotificationUnread, now)

	router := setupNotificationRouter(db, owner.ID)
	w := doRequest(router, "GET", "/api/notifications/unread-count", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(2), resp["count"])
}

func TestListReturnsTenMostRecentOwnRows(t *testing.T) {
	db := setupTestDB()
	owner := seedUser(db, "Owner", "owner@example.com")
	other := seedUser(db, "Other", "other@example.com")

	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 13; i++ {
		seedNotification(db, owner.ID, models.NotificationUnread, base.Add(time.Duration(i)*time.Minute))
	}
	seedNotification(db, other.ID, models.NotificationUnread, time.Now())

	router := setupNotificationRouter(db, owner.ID)
	w := doRequest(router, "GET", "/api/notifications/list", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var notifications []models.Notification
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &notifications))
	assert.Len(t, notifications, 10)

	for i, n := range notifications {
		assert.Equal(t, owner.ID, n.UserID)
		if i > 0 {
			assert.False(t, notifications[i-1].CreatedAt.Before(n.CreatedAt), "must be newest first")
		}
	}
}

func TestMarkAsReadOwnershipAndIdempotency(t *testing.T) {
	db := setupTestDB()
	owner := seedUser(db, "Owner", "owner@example.com")
	intruder := seedUser(db, "Intruder", "intruder@example.com")
	notif := seedNotification(db, owner.ID, models.NotificationUnread, time.Now())

	// Someone else's mark is a silent no-op.
	intruderRouter := setupNotificationRouter(db, intruder.ID)
	w := doRequest(intruderRouter, "POST", fmt.Sprintf("/api/notifications/read/%d", notif.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var fresh models.Notification
	db.First(&fresh, notif.ID)
	assert.Equal(t, models.NotificationUnread, fresh.Status)

	// The owner's mark flips it, and stays flipped on repeat calls.
	ownerRouter := setupNotificationRouter(db, owner.ID)
	w = doRequest(ownerRouter, "POST", fmt.Sprintf("/api/notifications/read/%d", notif.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	db.First(&fresh, notif.ID)
	assert.Equal(t, models.NotificationRead, fresh.Status)

	w = doRequest(ownerRouter, "POST", fmt.Sprintf("/api/notifications/read/%d", notif.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	db.First(&fresh, notif.ID)
	assert.Equal(t, models.NotificationRead, fresh.Status)

	// A missing id is also a silent no-op.
	w = doRequest(ownerRouter, "POST", "/api/notifications/read/99999", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMarkAllAsRead(t *testing.T) {
	db := setupTestDB()
	owner := seedUser(db, "Owner", "owner@example.com")
	other := seedUser(db, "Other", "other@example.com")

	now := time.Now()
	for i := 0; i < 3; i++ {
		seedNotification(db, owner.ID, models.NotificationUnread, now)
	}
	seedNotification(db, other.ID, models.NotificationUnread, now)

	router := setupNotificationRouter(db, owner.ID)
	w := doRequest(router, "POST", "/api/notifications/mark-all-read", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var unreadOwn, unreadOther int64
	db.Model(&models.Notification{}).
		Where("user_id = ? AND status = ?", owner.ID, models.NotificationUnread).
		Count(&unreadOwn)
	db.Model(&models.Notification{}).
		Where("user_id = ? AND status = ?", other.ID, models.NotificationUnread).
		Count(&unreadOther)
	assert.Zero(t, unreadOwn)
	assert.Equal(t, int64(1), unreadOther, "other users' rows stay untouched")

	// With nothing unread left, the call is a no-op.
	w = doRequest(router, "POST", "/api/notifications/mark-all-read", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
