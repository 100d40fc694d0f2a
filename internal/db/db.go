package db

import (
	"log"
	"time"

	"github.com/chairtime/booking-api/internal/config"
	"github.com/chairtime/booking-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Employee{},
		&models.ShiftTemplate{},
		&models.Service{},
		&models.Customer{},
		&models.Appointment{},
		&models.AdminUser{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	installExclusionConstraint(db)

	return db
}

// installExclusionConstraint garante no banco que dois agendamentos
// ativos do mesmo funcionário na mesma data nunca se sobreponham, mesmo
// que duas requisições concorrentes passem pela checagem da aplicação.
// Violação chega como SQLSTATE 23P01 (httperr.IsExclusionConflict).
func installExclusionConstraint(db *gorm.DB) {
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)

	db.Exec(`
        DO $$
        BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_constraint
                WHERE conname = 'appointments_no_overlap'
            ) THEN
                ALTER TABLE appointments
                ADD CONSTRAINT appointments_no_overlap
                EXCLUDE USING gist (
                    employee_id WITH =,
                    date WITH =,
                    int4range(
                        split_part(time_from, ':', 1)::int * 60
                            + split_part(time_from, ':', 2)::int,
                        split_part(time_to, ':', 1)::int * 60
                            + split_part(time_to, ':', 2)::int
                    ) WITH &&
                )
                WHERE (status = 'scheduled');
            END IF;
        END
        $$
    `)
}
