package model

type ResumeReviewStatus string

const (
	ResumePendingAnalysis ResumeReviewStatus = "pending_analysis"
	ResumeAnalyzed        ResumeReviewStatus = "analyzed"
	ResumeFailed          ResumeReviewStatus = "failed"
)

// ResumeReview 简历上传记录，AI 分析由外部服务异步完成
// swagger:model ResumeReview
type ResumeReview struct {
	BaseModel
	UserID   uint               `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	FileName string             `gorm:"size:255;not null" json:"fileName"`
	FileURL  string             `gorm:"size:512" json:"fileUrl"`
	Status   ResumeReviewStatus `gorm:"type:enum('pending_analysis','analyzed','failed');default:'pending_analysis'" json:"status"`
	Summary  string             `gorm:"type:text" json:"summary"`
}

func (ResumeReview) TableName() string {
	return "resume_reviews"
}
