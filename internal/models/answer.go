package models

import "time"

type Answer struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	QuestionID  int64     `json:"questionId"`
	UserID      int64     `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AnswerSummary struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}
