package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/jdeguzman/traffic-records/controllers"
	"github.com/jdeguzman/traffic-records/models"
)

func setupDashboardRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	dashboardCtrl := controllers.NewDashboardController(db)
	authed := router.Group("/api", authAs(1))
	authed.GET("/dashboard/stats", dashboardCtrl.Stats)
	authed.GET("/dashboard/revenue-per-year", dashboardCtrl.RevenuePerYear)
	return router
}

func TestDashboardStats(t *testing.T) {
	db := setupTestDB()
	seedEmployees(db, 2, models.DesignationAdministration)
	db.Create(&models.Accident{Code: "ACC-1", DateTime: time.Now()})
	db.Create(&models.LegalComplaint{TicketType: models.TicketTypeTraffic, TicketNo: 1, FullName: "X"})
	seedLicense(db, 111, models.TicketTypeTraffic, "Maria Santos")
	seedLicense(db, 222, models.TicketTypeTowing, "Maria Santos")
	seedLicense(db, 333, models.TicketTypeTowing, "Pedro Reyes")
	router := setupDashboardRouter(db)

	w := doRequest(router, "GET", "/api/dashboard/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	stats := resp["stats"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["accidents"])
	assert.Equal(t, float64(2), stats["employees"])
	assert.Equal(t, float64(1), stats["complaints"])

	licenses := stats["licenses"].(map[string]interface{})
	assert.Equal(t, float64(1), licenses[models.TicketTypeTraffic])
	assert.Equal(t, float64(2), licenses[models.TicketTypeTowing])
	assert.Equal(t, float64(0), licenses[models.TicketTypeLTO])
}

func TestRevenuePerYear(t *testing.T) {
	db := setupTestDB()

	paid2023 := time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)
	paid2024a := time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)
	paid2024b := time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC)

	db.Create(&models.License{TicketNo: 1, TicketTypes: models.TicketTypeTraffic, FullName: "A", Violation: "X",
		Transaction: models.TransactionPaid, DateTransaction: &paid2023, AmountPayment: 1000})
	db.Create(&models.License{TicketNo: 2, TicketTypes: models.TicketTypeTraffic, FullName: "B", Violation: "X",
		Transaction: models.TransactionPaid, DateTransaction: &paid2024a, AmountPayment: 2000, DiscountAmountPayment: 500})
	db.Create(&models.License{TicketNo: 3, TicketTypes: models.TicketTypeTraffic, FullName: "C", Violation: "X",
		Transaction: models.TransactionPaid, DateTransaction: &paid2024b, AmountPayment: 3000})
	// Pending citations never count as revenue.
	db.Create(&models.License{TicketNo: 4, TicketTypes: models.TicketTypeTraffic, FullName: "D", Violation: "X",
		Transaction: models.TransactionPending, AmountPayment: 9999})

	router := setupDashboardRouter(db)
	w := doRequest(router, "GET", "/api/dashboard/revenue-per-year", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var items []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 2)
	assert.Equal(t, float64(2023), items[0]["year"])
	assert.Equal(t, float64(1000), items[0]["total"])
	assert.Equal(t, float64(2024), items[1]["year"])
	assert.Equal(t, float64(4500), items[1]["total"])
}
