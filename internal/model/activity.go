package model

import "time"

// PracticeActivity 记录用户的一次练习事件（测验、提交或面试）
// swagger:model PracticeActivity
type PracticeActivity struct {
	BaseModel
	UserID       uint      `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Module       string    `gorm:"size:50;index;not null" json:"module"` // aptitude / coding / mock_interview / group_discussion
	ProblemTitle string    `gorm:"size:255" json:"problemTitle"`
	Score        float64   `gorm:"default:0" json:"score"` // 百分比得分 0-100
	Duration     int       `gorm:"default:0" json:"duration"` // 秒
	OccurredAt   time.Time `gorm:"index;not null" json:"occurredAt"`
}

func (PracticeActivity) TableName() string {
	return "practice_activities"
}

// AptitudeResult 一次智力测验的成绩
// swagger:model AptitudeResult
type AptitudeResult struct {
	BaseModel
	UserID             uint    `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Topic              string  `gorm:"size:100" json:"topic"` // quantitative / logical / verbal
	Score              float64 `gorm:"default:0" json:"score"`
	QuestionsAttempted int     `gorm:"default:0" json:"questionsAttempted"`
	QuestionsCorrect   int     `gorm:"default:0" json:"questionsCorrect"`
	TimeSpent          int     `gorm:"default:0" json:"timeSpent"` // 秒
}

func (AptitudeResult) TableName() string {
	return "aptitude_results"
}

// CodingSubmission 一次编程题提交
// swagger:model CodingSubmission
type CodingSubmission struct {
	BaseModel
	UserID         uint    `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	ProblemTitle   string  `gorm:"size:255;not null" json:"problemTitle"`
	Language       string  `gorm:"size:30" json:"language"`
	Difficulty     string  `gorm:"size:20" json:"difficulty"` // easy / medium / hard
	TestsPassed    int     `gorm:"default:0" json:"testsPassed"`
	TestsAttempted int     `gorm:"default:0" json:"testsAttempted"`
	SuccessRate    float64 `gorm:"default:0" json:"successRate"`
	TimeSpent      int     `gorm:"default:0" json:"timeSpent"` // 秒
}

func (CodingSubmission) TableName() string {
	return "coding_submissions"
}

// InterviewSession 一次模拟面试或小组讨论练习
// swagger:model InterviewSession
type InterviewSession struct {
	BaseModel
	UserID    uint      `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Kind      string    `gorm:"size:30;default:'mock_interview'" json:"kind"` // mock_interview / group_discussion
	Topic     string    `gorm:"size:255" json:"topic"`
	Score     float64   `gorm:"default:0" json:"score"`
	Feedback  string    `gorm:"type:text" json:"feedback"`
	HeldAt    time.Time `gorm:"index" json:"heldAt"`
	TimeSpent int       `gorm:"default:0" json:"timeSpent"` // 秒
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}
