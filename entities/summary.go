package entities

import "time"

// Summary is one persisted summarization result, keyed to the upload's
// original file name. Append-only.
type Summary struct {
	SummaryID uint   `gorm:"primaryKey" json:"summary_id"`
	FileName  string `json:"file_name"`
	Summary   string `json:"summary"`
	CreatedAt time.Time
}
