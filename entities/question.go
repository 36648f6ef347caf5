package entities

import "time"

// Question and Answer mirror the stored chat schema. No handler writes
// them; the ask flow keeps no history.
type Question struct {
	QuestionID uint   `gorm:"primaryKey" json:"question_id"`
	Title      string `json:"title"`
	CreatedAt  time.Time
}

type Answer struct {
	AnswerID   uint   `gorm:"primaryKey" json:"answer_id"`
	QuestionID uint   `json:"question_id" gorm:"index"`
	Answer     string `json:"answer"`
	CreatedAt  time.Time
}
