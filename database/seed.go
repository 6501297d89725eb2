package database

import (
	"log"
	"time"

	"resto_manager/constants"
	"resto_manager/model"
	"resto_manager/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseDate(dateStr string) utils.CustomDate {
	t, _ := time.Parse("2006-01-02", dateStr)
	return utils.CustomDate{Time: t}
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("changeme123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}
	accounts := []model.Account{
		{Username: "admin", Password: hashPassword, FullName: "Administrator", Active: true, Role: constants.ROLE_ADMIN},
		{Username: "manager", Password: hashPassword, FullName: "Venue Manager", Active: true, Role: constants.ROLE_MANAGER},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	complianceItems := []model.ComplianceItem{
		{Name: "Food handler certificates", Category: "hygiene", Status: "ok"},
		{Name: "Fire safety inspection", Category: "safety", Status: "ok"},
		{Name: "Liquor license renewal", Category: "licensing", Status: "ok"},
	}
	for _, item := range complianceItems {
		if err := db.Where(model.ComplianceItem{Name: item.Name}).FirstOrCreate(&item).Error; err != nil {
			log.Println("failed to seed compliance item:", item.Name, "error:", err)
		}
	}

	// A current-month target so the dashboard renders sensible numbers before
	// anyone configures real goals.
	monthStart := parseDate(time.Now().Format("2006-01") + "-01")
	target := model.RevenueTarget{
		Metric:      "revenue",
		Period:      "monthly",
		PeriodStart: monthStart,
		TargetValue: constants.DefaultMonthlyTarget,
	}
	if err := db.Where(model.RevenueTarget{Metric: "revenue", Period: "monthly", PeriodStart: monthStart}).
		FirstOrCreate(&target).Error; err != nil {
		log.Println("failed to seed revenue target:", err)
	}
}
