package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jdeguzman/traffic-records/middlewares"
	"github.com/jdeguzman/traffic-records/models"
	"github.com/jdeguzman/traffic-records/utils"
	"gorm.io/gorm"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

var validDesignations = map[string]bool{
	models.DesignationAdministration: true,
	models.DesignationEnforcement:    true,
	models.DesignationEngineering:    true,
}

var validStatuses = map[string]bool{
	models.StatusActive:   true,
	models.StatusInactive: true,
}

func (ec *EmployeeController) listQuery(c *gin.Context) *gorm.DB {
	query := ec.DB.Model(&models.Employee{})

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("id LIKE ? OR name LIKE ?", like, like)
	}

	if designation := c.Query("designation"); designation != "" {
		query = query.Where("designation = ?", designation)
	}

	return query.Order("created_at DESC")
}

// Index lists employees with search on id/name and an optional exact
// designation filter, newest first, ten per page.
func (ec *EmployeeController) Index(c *gin.Context) {
	employees := make([]models.Employee, 0)
	page, err := utils.Paginate(ec.listQuery(c), utils.PageParam(c), &employees)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// ActiveOfficers returns id/name pairs of active enforcement employees for
// the citation form's officer select.
func (ec *EmployeeController) ActiveOfficers(c *gin.Context) {
	type officer struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	officers := make([]officer, 0)
	err := ec.DB.Model(&models.Employee{}).
		Where("status = ? AND designation = ?", models.StatusActive, models.DesignationEnforcement).
		Order("name ASC").
		Find(&officers).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, officers)
}

type employeeRequest struct {
	Name         string  `json:"name"`
	Designation  string  `json:"designation"`
	Email        string  `json:"email"`
	ContactNo    string  `json:"contact_no"`
	DateHired    string  `json:"date_hired"`
	Status       string  `json:"status"`
	SssNo        *string `json:"sss_no"`
	GsisNo       *string `json:"gsis_no"`
	PhilHealthNo *string `json:"phil_health_no"`
	TinNo        *string `json:"tin_no"`
	PagIbigNo    *string `json:"pag_ibig_no"`
	SalaryRate   *int64  `json:"salary_rate"`
	ImgStatus    int     `json:"img_status"`
}

func (ec *EmployeeController) validateEmployee(req *employeeRequest) (map[string]string, *time.Time) {
	errs := make(map[string]string)

	if req.Name == "" {
		errs["name"] = "name is required"
	}

	if req.Designation == "" {
		errs["designation"] = "designation is required"
	} else if !validDesignations[req.Designation] {
		errs["designation"] = "designation must be Administration, Enforcement or Engineering"
	}

	if req.Email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		errs["email"] = "email must be a valid email address"
	} else {
		var existing models.Employee
		if err := ec.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
			errs["email"] = "email is already taken"
		}
	}

	var hired *time.Time
	if req.DateHired == "" {
		errs["date_hired"] = "date_hired is required"
	} else if parsed, err := time.Parse("2006-01-02", req.DateHired); err != nil {
		errs["date_hired"] = "date_hired must be a valid date (YYYY-MM-DD)"
	} else {
		hired = &parsed
	}

	if req.Status == "" {
		errs["status"] = "status is required"
	} else if !validStatuses[req.Status] {
		errs["status"] = "status must be Active or Inactive"
	}

	if req.SalaryRate == nil {
		errs["salary_rate"] = "salary_rate is required"
	} else if *req.SalaryRate < 0 {
		errs["salary_rate"] = "salary_rate must not be negative"
	}

	return errs, hired
}

// Create validates the registration form field by field, then inserts the
// employee and fans out one unread notification to every other user. The
// insert and the fan-out share one transaction: a failure anywhere commits
// nothing. The fan-out runs inline, so its latency grows with the user
// count; acceptable at current scale.
func (ec *EmployeeController) Create(c *gin.Context) {
	actorID, ok := middlewares.CallerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	errs, hired := ec.validateEmployee(&req)
	if len(errs) > 0 {
		utils.RespondValidationErrors(c, errs)
		return
	}

	employee := models.Employee{
		Name:         req.Name,
		Designation:  req.Designation,
		Email:        req.Email,
		ContactNo:    req.ContactNo,
		DateHired:    hired,
		Status:       req.Status,
		SssNo:        req.SssNo,
		GsisNo:       req.GsisNo,
		PhilHealthNo: req.PhilHealthNo,
		TinNo:        req.TinNo,
		PagIbigNo:    req.PagIbigNo,
		SalaryRate:   *req.SalaryRate,
		ImgStatus:    req.ImgStatus,
	}

	err := ec.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&employee).Error; err != nil {
			return err
		}

		var actor models.User
		if err := tx.First(&actor, actorID).Error; err != nil {
			return err
		}

		var recipients []models.User
		if err := tx.Where("id <> ?", actorID).Find(&recipients).Error; err != nil {
			return err
		}
		if len(recipients) == 0 {
			return nil
		}

		message := fmt.Sprintf("%s has been registered as %s by %s.",
			employee.Name, employee.Designation, actor.Name)

		notifications := make([]models.Notification, 0, len(recipients))
		for _, recipient := range recipients {
			notifications = append(notifications, models.Notification{
				UserID:  recipient.ID,
				Title:   "New Employee Registered",
				Message: message,
				Status:  models.NotificationUnread,
			})
		}
		return tx.Create(&notifications).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Employee registered: %s (%s)", employee.Name, employee.Designation)

	utils.RespondJSON(c, http.StatusCreated, "Employee registered successfully", employee)
}
