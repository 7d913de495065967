package database

import (
	"log"

	"github.com/mtomase/makers-ledger/internal/config"
	"github.com/mtomase/makers-ledger/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Employee{},
		&models.Task{},
		&models.GlobalCosts{},
		&models.GlobalSalary{},
		&models.Product{},
		&models.ProductMaterial{},
		&models.ProductLaborAssignment{},
		&models.ChannelPricing{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}
