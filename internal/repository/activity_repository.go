package repository

import (
	"time"

	"github.com/Sitalakshmib/AceIt-sub001/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Create(activity *model.PracticeActivity) error {
	return r.DB.Create(activity).Error
}

func (r *ActivityRepository) CreateAptitudeResult(result *model.AptitudeResult) error {
	return r.DB.Create(result).Error
}

func (r *ActivityRepository) CreateCodingSubmission(submission *model.CodingSubmission) error {
	return r.DB.Create(submission).Error
}

func (r *ActivityRepository) CreateInterviewSession(session *model.InterviewSession) error {
	return r.DB.Create(session).Error
}

// FindRecentByUser 取用户最近的练习记录，最新在前
func (r *ActivityRepository) FindRecentByUser(userID uint, limit int) ([]model.PracticeActivity, error) {
	var activities []model.PracticeActivity
	err := r.DB.Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

// CountByUserSince 统计用户自某时间起的练习次数
func (r *ActivityRepository) CountByUserSince(userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.PracticeActivity{}).
		Where("user_id = ? AND occurred_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}
