package database

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jdeguzman/traffic-records/models"
	"gorm.io/gorm"
)

var (
	seedDesignations = []string{
		models.DesignationAdministration,
		models.DesignationEnforcement,
		models.DesignationEngineering,
	}
	seedTicketTypes = []string{
		models.TicketTypeTraffic,
		models.TicketTypeImpounding,
		models.TicketTypeTowing,
		models.TicketTypeLTO,
	}
	seedTransactions = []string{
		models.TransactionPending,
		models.TransactionPaid,
		models.TransactionSurrender,
	}
	seedOffices   = []string{"ACTDO", "PTRO", "PNP"}
	seedLocations = []string{
		"Magsaysay Avenue", "Rizal Street", "National Highway",
		"Quezon Boulevard", "Osmena Street", "Public Market Junction",
	}
	seedViolations = []string{
		"Overspeeding", "No Helmet", "Illegal Parking",
		"Reckless Driving", "No License", "Disregarding Traffic Signs",
	}
	seedNames = []string{
		"Juan Dela Cruz", "Maria Santos", "Pedro Reyes", "Ana Bautista",
		"Jose Ramos", "Carmen Flores", "Ramon Garcia", "Liza Mendoza",
	}
)

// SeedDemoData fills empty tables with demo rows. Tables that already hold
// data are left alone so restarts never duplicate the set.
func SeedDemoData(db *gorm.DB) error {
	if err := seedEmployees(db); err != nil {
		return err
	}
	if err := seedAccidents(db); err != nil {
		return err
	}
	return seedLicenses(db)
}

func seedEmployees(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Employee{}).Count(&count).Error; err != nil || count > 0 {
		return err
	}

	for i, name := range seedNames {
		hired := time.Now().AddDate(-rand.Intn(10), -rand.Intn(12), 0)
		emp := models.Employee{
			Name:        name,
			Designation: seedDesignations[i%len(seedDesignations)],
			Email:       fmt.Sprintf("%s%d@city.gov.ph", strings.ToLower(strings.Fields(name)[0]), i),
			ContactNo:   fmt.Sprintf("09%09d", rand.Intn(1_000_000_000)),
			DateHired:   &hired,
			Status:      models.StatusActive,
			SalaryRate:  int64(15000 + rand.Intn(20000)),
		}
		if err := db.Create(&emp).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedAccidents(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Accident{}).Count(&count).Error; err != nil || count > 0 {
		return err
	}

	var operators []models.Employee
	if err := db.Find(&operators).Error; err != nil {
		return err
	}

	for i := 0; i < 30; i++ {
		acc := models.Accident{
			Code:     "ACC-" + strings.ToUpper(uuid.NewString()[:8]),
			DateTime: time.Now().AddDate(0, -rand.Intn(24), -rand.Intn(28)),
			Location: seedLocations[rand.Intn(len(seedLocations))],
			Damage:   int64(rand.Intn(200_000)),
			Fatality: rand.Intn(3),
			Injured:  rand.Intn(6),
			Cctv:     pick([]string{"Available", "Not Available"}),
			Involved: seedNames[rand.Intn(len(seedNames))],
			Single:   rand.Intn(3),
			Sedan:    rand.Intn(3),
			Truck:    rand.Intn(2),
			Puj:      rand.Intn(2),
			Tricycle: rand.Intn(3),
			Bus:      rand.Intn(2),
			Suv:      rand.Intn(2),
		}
		if len(operators) > 0 && i%3 != 0 {
			acc.OperatorID = &operators[rand.Intn(len(operators))].ID
		}
		if err := db.Create(&acc).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedLicenses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.License{}).Count(&count).Error; err != nil || count > 0 {
		return err
	}

	for i := 0; i < 30; i++ {
		apprehended := time.Now().AddDate(-rand.Intn(3), -rand.Intn(12), -rand.Intn(28))
		driverLicense := strings.ToUpper(uuid.NewString()[:8])
		plate := fmt.Sprintf("%s%03d", strings.ToUpper(uuid.NewString()[:2]), rand.Intn(1000))

		lic := models.License{
			TicketNo:        int64(100000 + rand.Intn(900000)),
			TicketTypes:     pick(seedTicketTypes),
			DriverLicenseNo: &driverLicense,
			PlateNo:         &plate,
			FullName:        seedNames[rand.Intn(len(seedNames))],
			Violation:       strings.Join([]string{pick(seedViolations), pick(seedViolations)}, ", "),
			Location:        strPtr(pick(seedLocations)),
			DateApprehend:   &apprehended,
			Office:          pick(seedOffices),
			AmountPayment:   int64(500 + rand.Intn(5000)),
			Transaction:     pick(seedTransactions),
			OfficerName:     seedNames[rand.Intn(len(seedNames))],
		}
		if lic.Transaction == models.TransactionPaid {
			paid := apprehended.AddDate(0, 0, rand.Intn(30))
			lic.DateTransaction = &paid
			lic.OfficialReceiptNo = int64(1_000_000 + rand.Intn(9_000_000))
		}
		if err := db.Create(&lic).Error; err != nil {
			return err
		}
	}
	return nil
}

func pick(values []string) string {
	return values[rand.Intn(len(values))]
}

func strPtr(s string) *string {
	return &s
}
