package service

import (
	"time"

	"github.com/Sitalakshmib/AceIt-sub001/internal/model"
	"github.com/Sitalakshmib/AceIt-sub001/internal/repository"
)

// ActivityService 记录练习事件，练习明细是进度快照的数据来源
type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
}

func NewActivityService(activityRepo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{ActivityRepo: activityRepo}
}

type ActivityRequest struct {
	Module       string  `json:"module" binding:"required"`
	ProblemTitle string  `json:"problemTitle"`
	Score        float64 `json:"score"`
	Duration     int     `json:"duration"`
}

func (s *ActivityService) RecordActivity(userID uint, req ActivityRequest) (*model.PracticeActivity, error) {
	activity := &model.PracticeActivity{
		UserID:       userID,
		Module:       req.Module,
		ProblemTitle: req.ProblemTitle,
		Score:        req.Score,
		Duration:     req.Duration,
		OccurredAt:   time.Now(),
	}

	if err := s.ActivityRepo.Create(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

type AptitudeResultRequest struct {
	Topic              string  `json:"topic"`
	Score              float64 `json:"score" binding:"min=0,max=100"`
	QuestionsAttempted int     `json:"questionsAttempted" binding:"min=0"`
	QuestionsCorrect   int     `json:"questionsCorrect" binding:"min=0"`
	TimeSpent          int     `json:"timeSpent"`
}

// RecordAptitudeResult 保存测验成绩并同步写入练习记录
func (s *ActivityService) RecordAptitudeResult(userID uint, req AptitudeResultRequest) (*model.AptitudeResult, error) {
	result := &model.AptitudeResult{
		UserID:             userID,
		Topic:              req.Topic,
		Score:              req.Score,
		QuestionsAttempted: req.QuestionsAttempted,
		QuestionsCorrect:   req.QuestionsCorrect,
		TimeSpent:          req.TimeSpent,
	}

	if err := s.ActivityRepo.CreateAptitudeResult(result); err != nil {
		return nil, err
	}

	_, err := s.RecordActivity(userID, ActivityRequest{
		Module:   "aptitude",
		Score:    req.Score,
		Duration: req.TimeSpent,
	})
	return result, err
}

type CodingSubmissionRequest struct {
	ProblemTitle   string `json:"problemTitle" binding:"required"`
	Language       string `json:"language"`
	Difficulty     string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	TestsPassed    int    `json:"testsPassed" binding:"min=0"`
	TestsAttempted int    `json:"testsAttempted" binding:"min=0"`
	TimeSpent      int    `json:"timeSpent"`
}

// RecordCodingSubmission 保存编程提交并同步写入练习记录
func (s *ActivityService) RecordCodingSubmission(userID uint, req CodingSubmissionRequest) (*model.CodingSubmission, error) {
	successRate := 0.0
	if req.TestsAttempted > 0 {
		successRate = float64(req.TestsPassed) / float64(req.TestsAttempted) * 100
	}

	submission := &model.CodingSubmission{
		UserID:         userID,
		ProblemTitle:   req.ProblemTitle,
		Language:       req.Language,
		Difficulty:     req.Difficulty,
		TestsPassed:    req.TestsPassed,
		TestsAttempted: req.TestsAttempted,
		SuccessRate:    successRate,
		TimeSpent:      req.TimeSpent,
	}

	if err := s.ActivityRepo.CreateCodingSubmission(submission); err != nil {
		return nil, err
	}

	_, err := s.RecordActivity(userID, ActivityRequest{
		Module:       "coding",
		ProblemTitle: req.ProblemTitle,
		Score:        successRate,
		Duration:     req.TimeSpent,
	})
	return submission, err
}

type InterviewSessionRequest struct {
	Kind      string  `json:"kind" binding:"omitempty,oneof=mock_interview group_discussion"`
	Topic     string  `json:"topic"`
	Score     float64 `json:"score" binding:"min=0,max=100"`
	Feedback  string  `json:"feedback"`
	TimeSpent int     `json:"timeSpent"`
}

// RecordInterviewSession 保存模拟面试或小组讨论记录
func (s *ActivityService) RecordInterviewSession(userID uint, req InterviewSessionRequest) (*model.InterviewSession, error) {
	kind := req.Kind
	if kind == "" {
		kind = "mock_interview"
	}

	session := &model.InterviewSession{
		UserID:    userID,
		Kind:      kind,
		Topic:     req.Topic,
		Score:     req.Score,
		Feedback:  req.Feedback,
		HeldAt:    time.Now(),
		TimeSpent: req.TimeSpent,
	}

	if err := s.ActivityRepo.CreateInterviewSession(session); err != nil {
		return nil, err
	}

	_, err := s.RecordActivity(userID, ActivityRequest{
		Module:   kind,
		Score:    req.Score,
		Duration: req.TimeSpent,
	})
	return session, err
}

// GetRecentActivities 最近练习记录，最新在前
func (s *ActivityService) GetRecentActivities(userID uint, limit int) ([]model.PracticeActivity, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.ActivityRepo.FindRecentByUser(userID, limit)
}
