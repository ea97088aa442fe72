package controllers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/jdeguzman/traffic-records/models"
	"github.com/jdeguzman/traffic-records/utils"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// Stats returns the landing-page counters: totals per entity and license
// counts broken down by ticket type.
func (dc *DashboardController) Stats(c *gin.Context) {
	var accidents, employees, complaints int64
	if err := dc.DB.Model(&models.Accident{}).Count(&accidents).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := dc.DB.Model(&models.Employee{}).Count(&employees).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := dc.DB.Model(&models.LegalComplaint{}).Count(&complaints).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	licenses := gin.H{}
	for _, ticketType := range []string{
		models.TicketTypeTraffic,
		models.TicketTypeImpounding,
		models.TicketTypeTowing,
		models.TicketTypeLTO,
	} {
		var count int64
		if err := dc.DB.Model(&models.License{}).
			Where("ticket_types = ?", ticketType).
			Count(&count).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		licenses[ticketType] = count
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"accidents":  accidents,
			"employees":  employees,
			"complaints": complaints,
			"licenses":   licenses,
		},
	})
}

type revenueItem struct {
	Year  int   `json:"year"`
	Total int64 `json:"total"`
}

// RevenuePerYear sums collected payments (net of discounts) of Paid
// citations per transaction year, ascending, for the revenue line chart.
// Grouping happens in Go to keep the query portable across MySQL and the
// sqlite test driver.
func (dc *DashboardController) RevenuePerYear(c *gin.Context) {
	var paid []models.License
	err := dc.DB.
		Where("`transaction` = ? AND date_transaction IS NOT NULL", models.TransactionPaid).
		Find(&paid).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	totals := make(map[int]int64)
	for _, license := range paid {
		year := license.DateTransaction.Year()
		totals[year] += license.AmountPayment - license.DiscountAmountPayment
	}

	items := make([]revenueItem, 0, len(totals))
	for year, total := range totals {
		items = append(items, revenueItem{Year: year, Total: total})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Year < items[j].Year })

	c.JSON(http.StatusOK, items)
}
