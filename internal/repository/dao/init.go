package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Category{},
		&Raffle{},
		&Ticket{},
	); err != nil {
		return err
	}

	return seedCategories(db)
}
