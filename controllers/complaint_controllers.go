package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jdeguzman/traffic-records/models"
	"github.com/jdeguzman/traffic-records/utils"
	"gorm.io/gorm"
)

type ComplaintController struct {
	DB *gorm.DB
}

func NewComplaintController(db *gorm.DB) *ComplaintController {
	return &ComplaintController{DB: db}
}

// Index lists legal complaints, newest first.
func (cc *ComplaintController) Index(c *gin.Context) {
	query := cc.DB.Model(&models.LegalComplaint{})

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"ticket_no LIKE ? OR full_name LIKE ? OR officer LIKE ?",
			like, like, like,
		)
	}
	query = query.Order("created_at DESC")

	complaints := make([]models.LegalComplaint, 0)
	page, err := utils.Paginate(query, utils.PageParam(c), &complaints)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Show returns one complaint row.
func (cc *ComplaintController) Show(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("complaint_id"))

	var complaint models.LegalComplaint
	if err := cc.DB.First(&complaint, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	c.JSON(http.StatusOK, complaint)
}

type complaintRequest struct {
	TicketType          string `json:"ticket_type"`
	TicketNo            string `json:"ticket_no"`
	FullName            string `json:"full_name"`
	Violation           string `json:"violation"`
	Officer             string `json:"officer"`
	Location            string `json:"location"`
	DateComplaint       string `json:"date_complaint"`
	Remarks             string `json:"remarks"`
	ExplanationComplain string `json:"explanation_complain"`
}

// Create files a legal complaint against a citation. Complaints are
// insert-only; there is no update or delete path.
func (cc *ComplaintController) Create(c *gin.Context) {
	var req complaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	errs := make(map[string]string)
	if req.TicketType == "" {
		errs["ticket_type"] = "ticket_type is required"
	}
	var ticketNo int64
	if req.TicketNo == "" {
		errs["ticket_no"] = "ticket_no is required"
	} else if parsed, err := strconv.ParseInt(req.TicketNo, 10, 64); err != nil {
		errs["ticket_no"] = "ticket_no must be numeric"
	} else {
		ticketNo = parsed
	}
	if req.FullName == "" {
		errs["full_name"] = "full_name is required"
	}
	if req.Violation == "" {
		errs["violation"] = "violation is required"
	}
	if req.Officer == "" {
		errs["officer"] = "officer is required"
	}
	if req.DateComplaint == "" {
		errs["date_complaint"] = "date_complaint is required"
	}
	if len(errs) > 0 {
		utils.RespondValidationErrors(c, errs)
		return
	}

	complaint := models.LegalComplaint{
		TicketType:          req.TicketType,
		TicketNo:            ticketNo,
		FullName:            req.FullName,
		Violation:           req.Violation,
		Officer:             req.Officer,
		Location:            req.Location,
		DateComplaint:       req.DateComplaint,
		Remarks:             req.Remarks,
		ExplanationComplain: req.ExplanationComplain,
	}

	if err := cc.DB.Create(&complaint).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Complaint filed successfully", complaint)
}
