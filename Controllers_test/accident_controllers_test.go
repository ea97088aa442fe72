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

func setupAccidentRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	accidentCtrl := controllers.NewAccidentController(db)
	authed := router.Group("/api", authAs(1))
	authed.GET("/accidents/page", accidentCtrl.Index)
	authed.GET("/accidents", accidentCtrl.ApiIndex)
	authed.GET("/accidents/:accident_id", accidentCtrl.Show)
	return router
}

func seedAccident(db *gorm.DB, code string, when time.Time, operatorID *uint) models.Accident {
	acc := models.Accident{
		Code:     code,
		DateTime: when,
		Location: "Rizal Street",
		Damage:   50000,
		Involved: "Maria Santos",
		Cctv:     "Available",
	}
	acc.OperatorID = operatorID
	db.Create(&acc)
	return acc
}

func seedOperator(db *gorm.DB, name string) models.Employee {
	emp := models.Employee{
		Name:        name,
		Designation: models.DesignationEnforcement,
		Email:       name + "@city.gov.ph",
		Status:      models.StatusActive,
		SalaryRate:  15000,
	}
	db.Create(&emp)
	return emp
}

func TestAccidentListingsPlaceholdersDiverge(t *testing.T) {
	db := setupTestDB()
	operator := seedOperator(db, "JuanDelaCruz")
	now := time.Now()
	seedAccident(db, "ACC-0001", now, &operator.ID)
	seedAccident(db, "ACC-0002", now.Add(-time.Hour), nil)
	router := setupAccidentRouter(db)

	// Page surface: missing operator renders "Unknown".
	w := doRequest(router, "GET", "/api/accidents/page", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var page map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	rows := page["data"].([]interface{})
	assert.Len(t, rows, 2)
	first := rows[0].(map[string]interface{})
	second := rows[1].(map[string]interface{})
	assert.Equal(t, "JuanDelaCruz", first["operator_name"])
	assert.Equal(t, "Unknown", second["operator_name"])

	// API surface: missing operator renders "Not Available".
	w = doRequest(router, "GET", "/api/accidents", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	rows = page["data"].([]interface{})
	second = rows[1].(map[string]interface{})
	assert.Equal(t, "Not Available", second["operator_name"])
}

func TestAccidentOrderingNewestFirst(t *testing.T) {
	db := setupTestDB()
	now := time.Now()
	seedAccident(db, "ACC-OLD", now.Add(-48*time.Hour), nil)
	seedAccident(db, "ACC-NEW", now, nil)
	seedAccident(db, "ACC-MID", now.Add(-24*time.Hour), nil)
	router := setupAccidentRouter(db)

	w := doRequest(router, "GET", "/api/accidents", nil)
	var page map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	rows := page["data"].([]interface{})
	codes := make([]string, 0, len(rows))
	for _, r := range rows {
		codes = append(codes, r.(map[string]interface{})["code"].(string))
	}
	assert.Equal(t, []string{"ACC-NEW", "ACC-MID", "ACC-OLD"}, codes)
}

func TestAccidentSearchSurfacesDiffer(t *testing.T) {
	db := setupTestDB()
	operator := seedOperator(db, "Bonifacio")
	now := time.Now()
	seedAccident(db, "ACC-0001", now, &operator.ID)
	seedAccident(db, "ACC-0002", now.Add(-time.Hour), nil)
	router := setupAccidentRouter(db)

	// The API surface can search by operator name.
	w := doRequest(router, "GET", "/api/accidents?search=Bonifacio", nil)
	var page map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page["data"], 1)

	// The page surface cannot; it searches damage instead.
	w = doRequest(router, "GET", "/api/accidents/page?search=Bonifacio", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page["data"], 0)

	w = doRequest(router, "GET", "/api/accidents/page?search=50000", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page["data"], 2)

	// Both search by code.
	w = doRequest(router, "GET", "/api/accidents?search=ACC-0002", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page["data"], 1)
}

func TestAccidentShow(t *testing.T) {
	db := setupTestDB()
	acc := seedAccident(db, "ACC-0001", time.Now(), nil)
	router := setupAccidentRouter(db)

	w := doRequest(router, "GET", "/api/accidents/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var got models.Accident
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, acc.Code, got.Code)

	w = doRequest(router, "GET", "/api/accidents/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
