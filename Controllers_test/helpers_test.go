package Controllers_test

import (
	"bytes"
	"fmt"
	"io"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jdeguzman/traffic-records/models"
	"github.com/jdeguzman/traffic-records/utils"
)

func init() {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
}

// setupTestDB opens a uniquely named in-memory sqlite database so tests
// never see each other's rows, and migrates every table.
func setupTestDB() *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Accident{},
		&models.License{},
		&models.LegalComplaint{},
		&models.Notification{},
	)
	if err != nil {
		panic(err)
	}
	return db
}

// authAs stands in for the JWT middleware: it puts the caller identity into
// the request context the same way AuthMiddleware does.
func authAs(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func seedUser(db *gorm.DB, name, email string) models.User {
	user := models.User{
		Name:     name,
		Email:    email,
		Password: "secret",
		Role:     "admin",
	}
	db.Create(&user)
	return user
}

func doRequest(router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}
	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
