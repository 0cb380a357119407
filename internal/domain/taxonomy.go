package domain

// JobCategory Model. Read-only taxonomy.
type JobCategory struct {
	ID   uint   `gorm:"primaryKey" json:"category_id"`        // Primary key
	Name string `gorm:"unique;not null" json:"category_name"` // Category name
}

// Skill Model. Read-mostly taxonomy; rows are added on demand by add-skill.
type Skill struct {
	ID   uint   `gorm:"primaryKey" json:"skill_id"`        // Primary key
	Name string `gorm:"unique;not null" json:"skill_name"` // Skill name
}

// JobSkill links a job to a required skill.
type JobSkill struct {
	ID      uint `gorm:"primaryKey" json:"-"`                                // Primary key
	JobID   uint `gorm:"uniqueIndex:idx_job_skill;not null" json:"job_id"`   // Job reference
	SkillID uint `gorm:"uniqueIndex:idx_job_skill;not null" json:"skill_id"` // Skill reference
}

// UserSkill links a user to a skill with proficiency info.
type UserSkill struct {
	ID              uint   `gorm:"primaryKey" json:"-"`                                 // Primary key
	UserID          uint   `gorm:"uniqueIndex:idx_user_skill;not null" json:"user_id"`  // User reference
	SkillID         uint   `gorm:"uniqueIndex:idx_user_skill;not null" json:"skill_id"` // Skill reference
	Proficiency     string `gorm:"default:intermediate" json:"proficiency_level"`       // Self-reported level
	YearsExperience int    `gorm:"default:0" json:"years_experience"`                   // Years of experience
}
