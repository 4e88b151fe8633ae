package repository

import (
	"github.com/Sitalakshmib/AceIt-sub001/internal/model"

	"gorm.io/gorm"
)

type ResumeRepository struct {
	DB *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{DB: db}
}

func (r *ResumeRepository) Create(review *model.ResumeReview) error {
	return r.DB.Create(review).Error
}

func (r *ResumeRepository) FindByUserID(userID uint) ([]model.ResumeReview, error) {
	var reviews []model.ResumeReview
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ResumeRepository) FindByIDAndUserID(id, userID uint) (*model.ResumeReview, error) {
	var review model.ResumeReview
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}
