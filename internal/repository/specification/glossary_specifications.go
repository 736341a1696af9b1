package specification

import "gorm.io/gorm"

type ByGlossaryID struct {
	GlossaryID uint
}

func (s ByGlossaryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("glossary_id = ?", s.GlossaryID)
}
