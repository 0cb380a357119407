package domain

// SavedJob Model. Bookmark row, toggled on and off by the save endpoint.
type SavedJob struct {
	ID        uint  `gorm:"primaryKey" json:"id"`                             // Primary key
	UserID    uint  `gorm:"uniqueIndex:idx_user_job;not null" json:"user_id"` // Bookmarking user
	JobID     uint  `gorm:"uniqueIndex:idx_user_job;not null" json:"job_id"`  // Bookmarked job
	CreatedAt int64 `gorm:"autoCreateTime:milli" json:"created_at"`           // Timestamp of creation in milliseconds
}
