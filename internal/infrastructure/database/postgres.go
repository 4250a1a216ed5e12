package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/invinci009/rmw/internal/config"
	"github.com/invinci009/rmw/internal/domain/entity"
	"github.com/invinci009/rmw/internal/domain/enum"
	"github.com/invinci009/rmw/pkg/utils"
	"github.com/spf13/viper"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Service{},
		&entity.Booking{},
		&entity.JobCard{},
		&entity.Invoice{},
		&entity.NumberSequence{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the admin user (from environment) and a starter
// service catalog when the tables are empty.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminPhone := viper.GetString("ADMIN_PHONE")

	if adminEmail != "" && adminPassword != "" {
		var existing entity.User
		lookupErr := db.Where("email = ? AND role = ?", adminEmail, enum.UserRoleAdmin).First(&existing).Error
		if lookupErr != nil && !adminSeedNeeded(lookupErr) {
			log.Printf("Warning: admin user lookup failed: %v", lookupErr)
		}
		if adminSeedNeeded(lookupErr) {
			hashed, err := utils.HashPassword(adminPassword)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				admin := entity.User{
					Name:     "Workshop Admin",
					Email:    &adminEmail,
					Phone:    adminPhone,
					Password: hashed,
					Role:     enum.UserRoleAdmin,
				}
				if err := db.Create(&admin).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminEmail)
				}
			}
		}
	}

	var serviceCount int64
	if err := db.Model(&entity.Service{}).Count(&serviceCount).Error; err != nil {
		return err
	}
	if serviceCount == 0 {
		for i := range defaultServices {
			defaultServices[i].Slug = utils.Slugify(defaultServices[i].Name)
			if err := db.Create(&defaultServices[i]).Error; err != nil {
				log.Printf("Warning: failed to seed service %s: %v", defaultServices[i].Name, err)
			}
		}
	}

	log.Println("Default data seeding completed")
	return nil
}

// adminSeedNeeded reports whether the admin lookup result calls for creating
// the user. Only a definite not-found does; any other lookup error skips the
// seed so a transient failure cannot produce a duplicate admin.
func adminSeedNeeded(lookupErr error) bool {
	return errors.Is(lookupErr, gorm.ErrRecordNotFound)
}

var defaultServices = []entity.Service{
	{
		Name:             "General Service",
		ShortDescription: "Periodic maintenance with oil change and multi-point inspection",
		FullDescription:  "Engine oil and filter change, brake inspection, fluid top-up, chain/belt adjustment, and a full multi-point health check.",
		VehicleTypes:     datatypes.NewJSONSlice([]enum.VehicleType{enum.VehicleType2W, enum.VehicleType4W}),
		BasePrice:        1499,
		EstimatedTime:    "2-3 hours",
		Features:         datatypes.NewJSONSlice([]string{"Engine oil change", "Oil filter replacement", "Brake check", "Fluid top-up"}),
		IsActive:         true,
		DisplayOrder:     1,
	},
	{
		Name:             "Engine Diagnostics",
		ShortDescription: "Computerised engine scanning and fault diagnosis",
		FullDescription:  "OBD scanning, sensor checks, and a detailed fault report with repair recommendations.",
		Icon:             "Gauge",
		VehicleTypes:     datatypes.NewJSONSlice([]enum.VehicleType{enum.VehicleType4W}),
		BasePrice:        999,
		EstimatedTime:    "1-2 hours",
		Features:         datatypes.NewJSONSlice([]string{"OBD scan", "Sensor diagnostics", "Fault report"}),
		IsActive:         true,
		DisplayOrder:     2,
	},
	{
		Name:             "Wheel Alignment & Balancing",
		ShortDescription: "Computerised alignment and wheel balancing",
		VehicleTypes:     datatypes.NewJSONSlice([]enum.VehicleType{enum.VehicleType4W}),
		BasePrice:        799,
		EstimatedTime:    "1 hour",
		Features:         datatypes.NewJSONSlice([]string{"Front/rear alignment", "Wheel balancing", "Tyre rotation"}),
		IsActive:         true,
		DisplayOrder:     3,
	},
	{
		Name:             "Full Body Wash & Detailing",
		ShortDescription: "Exterior wash, interior vacuum, and polish",
		VehicleTypes:     datatypes.NewJSONSlice([]enum.VehicleType{enum.VehicleType2W, enum.VehicleType4W}),
		BasePrice:        499,
		EstimatedTime:    "1-2 hours",
		Features:         datatypes.NewJSONSlice([]string{"Foam wash", "Interior vacuum", "Dashboard polish"}),
		IsActive:         true,
		DisplayOrder:     4,
	},
}
