package domain

// All returns every model for schema migration.
func All() []any {
	return []any{
		&User{}, &Job{}, &Proposal{}, &SavedJob{},
		&JobCategory{}, &Skill{}, &JobSkill{}, &UserSkill{},
		&Wallet{}, &WalletTransaction{},
		&Notification{}, &Message{},
	}
}
