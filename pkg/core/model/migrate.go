package model

import "gorm.io/gorm"

// AutoMigrate creates missing tables, columns and indexes. Safe to call on every boot.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Pessoa{}, &Endereco{})
}
