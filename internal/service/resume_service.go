package service

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/Sitalakshmib/AceIt-sub001/internal/model"
	"github.com/Sitalakshmib/AceIt-sub001/internal/repository"
	"github.com/Sitalakshmib/AceIt-sub001/internal/util"
)

// ResumeService 负责简历上传与记录，AI 分析由外部服务异步回填
type ResumeService struct {
	ResumeRepo *repository.ResumeRepository
	Storage    *StorageService
}

func NewResumeService(resumeRepo *repository.ResumeRepository, storage *StorageService) *ResumeService {
	return &ResumeService{
		ResumeRepo: resumeRepo,
		Storage:    storage,
	}
}

// UploadResume 校验并保存简历文件，创建待分析记录
func (s *ResumeService) UploadResume(ctx context.Context, userID uint, fileName string, reader io.Reader, size int64, contentType string) (*model.ResumeReview, error) {
	if size > util.ResumeMaxSizeBytes {
		return nil, util.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	allowed := false
	for _, e := range util.AllowedResumeExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, util.ErrUnsupportedFile
	}

	objectKey := "resumes/" + model.GenerateUUID() + ext
	url, err := s.Storage.Upload(ctx, objectKey, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	review := &model.ResumeReview{
		UserID:   userID,
		FileName: fileName,
		FileURL:  url,
		Status:   model.ResumePendingAnalysis,
	}
	if err := s.ResumeRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ResumeService) GetUserReviews(userID uint) ([]model.ResumeReview, error) {
	return s.ResumeRepo.FindByUserID(userID)
}
