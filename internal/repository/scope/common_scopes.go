package scope

import "gorm.io/gorm"

func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

func OrderByConnectedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("connected_at DESC")
}
