package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jdeguzman/traffic-records/models"
	"github.com/jdeguzman/traffic-records/utils"
	"gorm.io/gorm"
)

type AccidentController struct {
	DB *gorm.DB
}

func NewAccidentController(db *gorm.DB) *AccidentController {
	return &AccidentController{DB: db}
}

// accidentRow is the listing shape: the stored row plus the operator's
// display name, resolved in one batched lookup rather than per row.
type accidentRow struct {
	models.Accident
	OperatorName string `json:"operator_name"`
}

// operatorNames resolves the linked employees for a page of accidents with
// a single IN query.
func (ac *AccidentController) operatorNames(accidents []models.Accident) (map[uint]string, error) {
	ids := make([]uint, 0, len(accidents))
	seen := make(map[uint]bool)
	for _, a := range accidents {
		if a.OperatorID != nil && !seen[*a.OperatorID] {
			seen[*a.OperatorID] = true
			ids = append(ids, *a.OperatorID)
		}
	}

	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var operators []models.Employee
	if err := ac.DB.Where("id IN ?", ids).Find(&operators).Error; err != nil {
		return nil, err
	}
	for _, op := range operators {
		names[op.ID] = op.Name
	}
	return names, nil
}

func (ac *AccidentController) project(accidents []models.Accident, placeholder string) ([]accidentRow, error) {
	names, err := ac.operatorNames(accidents)
	if err != nil {
		return nil, err
	}

	rows := make([]accidentRow, 0, len(accidents))
	for _, a := range accidents {
		name := placeholder
		if a.OperatorID != nil {
			if n, ok := names[*a.OperatorID]; ok {
				name = n
			}
		}
		rows = append(rows, accidentRow{Accident: a, OperatorName: name})
	}
	return rows, nil
}

// Index is the page-shaped listing: search spans code, location, damage and
// involved; a missing operator renders as "Unknown".
func (ac *AccidentController) Index(c *gin.Context) {
	query := ac.DB.Model(&models.Accident{})

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"code LIKE ? OR location LIKE ? OR damage LIKE ? OR involved LIKE ?",
			like, like, like, like,
		)
	}
	query = query.Order("date_time DESC")

	accidents := make([]models.Accident, 0)
	page, err := utils.Paginate(query, utils.PageParam(c), &accidents)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	rows, err := ac.project(accidents, "Unknown")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	page.Data = rows

	c.JSON(http.StatusOK, page)
}

// ApiIndex is the SPA listing: search spans code, location, involved and the
// operator's name; a missing operator renders as "Not Available". The two
// surfaces differ on purpose, both are existing client contracts.
func (ac *AccidentController) ApiIndex(c *gin.Context) {
	query := ac.DB.Model(&models.Accident{}).Select("accidents.*")

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.
			Joins("LEFT JOIN employees ON employees.id = accidents.operator_id").
			Where(
				"accidents.code LIKE ? OR accidents.location LIKE ? OR accidents.involved LIKE ? OR employees.name LIKE ?",
				like, like, like, like,
			)
	}
	query = query.Order("date_time DESC")

	accidents := make([]models.Accident, 0)
	page, err := utils.Paginate(query, utils.PageParam(c), &accidents)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	rows, err := ac.project(accidents, "Not Available")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	page.Data = rows

	c.JSON(http.StatusOK, page)
}

// Show returns one accident row.
func (ac *AccidentController) Show(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("accident_id"))

	var accident models.Accident
	if err := ac.DB.First(&accident, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	c.JSON(http.StatusOK, accident)
}
