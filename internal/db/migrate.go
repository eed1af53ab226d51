package db

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/errors"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/model"
)

func (d *DB) Migrate() error {
	d.db.Set("gorm:table_options", "ENGINE=InnoDB")

	m := gormigrate.New(d.db, &gormigrate.Options{UseTransaction: false}, []*gormigrate.Migration{
		{
			ID: "create-verification-job",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.VerificationJob{})
			},
		},
		{
			ID: "create-request-event",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.RequestEvent{})
			},
		},
	})

	return errors.Wrap(m.Migrate(), "migrate database")
}
