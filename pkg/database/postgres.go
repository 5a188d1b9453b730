package database

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authdomain "taskengine-backend/internal/auth/domain"
	taskdomain "taskengine-backend/internal/task/domain"
	"taskengine-backend/pkg/config"
)

// NewPostgresConnection opens the application database. Each request borrows
// a connection from this pool for its own short-lived unit of work.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// Migrate creates the users and tasks tables. The delete cascade is an
// explicit store-level constraint: removing a user removes their tasks
// without any in-process traversal.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&authdomain.User{}, &taskdomain.Task{}); err != nil {
		return err
	}

	if !db.Migrator().HasConstraint(&taskdomain.Task{}, "fk_tasks_user") {
		if err := db.Exec(
			`ALTER TABLE tasks ADD CONSTRAINT fk_tasks_user
			 FOREIGN KEY (user_id) REFERENCES users (user_id) ON DELETE CASCADE`,
		).Error; err != nil {
			return err
		}
	}

	return nil
}
