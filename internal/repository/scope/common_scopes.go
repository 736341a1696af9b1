package scope

import "gorm.io/gorm"

// OrderByNewest sorts newest rows first; id breaks ties between rows
// written within the same clock tick.
func OrderByNewest(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

func OrderByIDAsc(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
