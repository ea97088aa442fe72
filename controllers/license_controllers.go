package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jdeguzman/traffic-records/models"
	"github.com/jdeguzman/traffic-records/utils"
	"gorm.io/gorm"
)

type LicenseController struct {
	DB *gorm.DB
}

func NewLicenseController(db *gorm.DB) *LicenseController {
	return &LicenseController{DB: db}
}

// Index lists citations with search over ticket_no, driver_license_no,
// plate_no and full_name, plus an optional exact ticket_type filter.
func (lc *LicenseController) Index(c *gin.Context) {
	query := lc.DB.Model(&models.License{})

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"ticket_no LIKE ? OR driver_license_no LIKE ? OR plate_no LIKE ? OR full_name LIKE ?",
			like, like, like, like,
		)
	}

	if ticketType := c.Query("ticket_type"); ticketType != "" {
		query = query.Where("ticket_types = ?", ticketType)
	}

	query = query.Order("created_at DESC")

	licenses := make([]models.License, 0)
	page, err := utils.Paginate(query, utils.PageParam(c), &licenses)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Show returns one citation row.
func (lc *LicenseController) Show(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("license_id"))

	var license models.License
	if err := lc.DB.First(&license, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	c.JSON(http.StatusOK, license)
}

// licenseRequest carries the citation form as submitted: the name arrives
// as ordered parts and the violations as a label set, both joined at the
// write boundary.
type licenseRequest struct {
	TicketType           string   `json:"ticket_type"`
	TicketNo             string   `json:"ticket_no"`
	FullName             []string `json:"full_name"`
	DriverLicenseNo      *string  `json:"driver_license_no"`
	PlateNo              *string  `json:"plate_no"`
	ProvinceCity         *string  `json:"province_city"`
	BrandModel           *string  `json:"brand_model"`
	ColorBrandModel      *string  `json:"color_brand_model"`
	VehicleType          *string  `json:"vehicle_type"`
	PublicTransportState *string  `json:"public_transport_state"`
	Officer              string   `json:"officer"`
	Office               string   `json:"office"`
	LocationViolation    *string  `json:"location_violation"`
	DateApprehend        string   `json:"date_apprehend"`
	Remarks              *string  `json:"remarks"`
	Violation            []string `json:"violation"`
}

func validateLicense(req *licenseRequest) (map[string]string, int64, *time.Time) {
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

	if len(req.FullName) < 2 {
		errs["full_name"] = "full_name must have at least two name parts"
	} else {
		for _, part := range req.FullName {
			if part == "" {
				errs["full_name"] = "full_name parts must not be empty"
				break
			}
		}
	}

	if len(req.Violation) == 0 {
		errs["violation"] = "at least one violation must be selected"
	}

	if req.Officer == "" {
		errs["officer"] = "officer is required"
	}
	if req.Office == "" {
		errs["office"] = "office is required"
	}

	var apprehended *time.Time
	if req.DateApprehend == "" {
		errs["date_apprehend"] = "date_apprehend is required"
	} else if parsed, err := time.Parse("2006-01-02", req.DateApprehend); err != nil {
		errs["date_apprehend"] = "date_apprehend must be a valid date (YYYY-MM-DD)"
	} else {
		apprehended = &parsed
	}

	return errs, ticketNo, apprehended
}

// Create stores a new citation. The transaction state is always Pending at
// creation, whatever the client sends.
func (lc *LicenseController) Create(c *gin.Context) {
	var req licenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	errs, ticketNo, apprehended := validateLicense(&req)
	if len(errs) > 0 {
		utils.RespondValidationErrors(c, errs)
		return
	}

	license := models.License{
		TicketNo:             ticketNo,
		TicketTypes:          req.TicketType,
		FullName:             strings.Join(req.FullName, " "),
		DriverLicenseNo:      req.DriverLicenseNo,
		PlateNo:              req.PlateNo,
		City:                 req.ProvinceCity,
		VehicleModel:         req.BrandModel,
		VehicleColor:         req.ColorBrandModel,
		TypeVehicle:          req.VehicleType,
		PublicTransportState: req.PublicTransportState,
		OfficerName:          req.Officer,
		Office:               req.Office,
		Location:             req.LocationViolation,
		DateApprehend:        apprehended,
		Remarks:              req.Remarks,
		Violation:            strings.Join(req.Violation, ", "),
		Transaction:          models.TransactionPending,
	}

	if err := lc.DB.Create(&license).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Citation created: ticket_no=%d type=%s", license.TicketNo, license.TicketTypes)

	utils.RespondJSON(c, http.StatusCreated, "License created successfully", license)
}
