package model

// All returns every model in dependency order, for AutoMigrate.
// The user_glossary join table is created from the many2many tags.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Glossary{},
		&GlossaryTerm{},
		&Session{},
		&SessionParticipant{},
		&Translation{},
	}
}
