package dashboard

import (
	"log"
	"log/slog"

	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MigrationHandler func() error

func NewMigrationHandler(
	db *gorm.DB,
) MigrationHandler {
	return func() error {
		log.Println("migrating dashboard service")
		return db.AutoMigrate(
			&dashboard_core.User{},
			&dashboard_core.Expense{},
			&dashboard_core.Invoice{},
			&dashboard_core.UserProfile{},
		)
	}
}

type SeedHandler func() error

func NewSeedHandler(
	db *gorm.DB,
) SeedHandler {
	return func() error {
		log.Println("seeding dashboard service")

		users := []dashboard_core.User{
			{Username: "admin", Email: "admin@example.com"},
			{Username: "employee", Email: "employee@example.com"},
		}

		for _, user := range users {
			err := db.
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(&user).Error
			if err != nil {
				slog.Error(err.Error())
			}
		}

		var admin dashboard_core.User
		err := db.
			Where("username = ?", "admin").
			Find(&admin).
			Error
		if err != nil {
			return err
		}

		if admin.ID != 0 {
			profile := dashboard_core.UserProfile{
				UserID: admin.ID,
				Role:   dashboard_core.RoleAdmin,
			}
			err = db.
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(&profile).Error
			if err != nil {
				slog.Error(err.Error())
			}
		}

		return nil
	}
}
