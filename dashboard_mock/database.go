package dashboard_mock

import (
	"fmt"
	"testing"

	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
	"github.com/Keerthana-tech-26/business-automation-dashboard/pkg/moretest"
	"github.com/zeebo/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func MockSqliteDatabase(db *gorm.DB) moretest.SetupFunc {
	return func(t *testing.T) func() error {
		conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Silent),
		})
		assert.Nil(t, err)

		sqldb, err := conn.DB()
		assert.Nil(t, err)
		// a second pooled connection would see its own empty memory db
		sqldb.SetMaxOpenConns(1)

		*db = *conn
		return func() error {
			return sqldb.Close()
		}
	}
}

func Migrate(db *gorm.DB) moretest.SetupFunc {
	return func(t *testing.T) func() error {
		err := db.AutoMigrate(
			&dashboard_core.User{},
			&dashboard_core.Expense{},
			&dashboard_core.Invoice{},
			&dashboard_core.UserProfile{},
		)
		assert.Nil(t, err)

		return nil
	}
}

// PopulateUsers seeds count users with ids 1..count.
func PopulateUsers(db *gorm.DB, count int) moretest.SetupFunc {
	return func(t *testing.T) func() error {
		for i := 1; i <= count; i++ {
			user := dashboard_core.User{
				ID:       uint(i),
				Username: fmt.Sprintf("user%d", i),
				Email:    fmt.Sprintf("user%d@example.com", i),
			}

			var old dashboard_core.User
			err := db.
				Model(&dashboard_core.User{}).
				Where("username = ?", user.Username).
				Find(&old).
				Error
			assert.Nil(t, err)

			if old.ID != 0 {
				continue
			}

			err = db.Create(&user).Error
			assert.Nil(t, err)
		}

		return nil
	}
}
