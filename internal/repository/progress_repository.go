package repository

import (
	"strconv"
	"time"

	"github.com/Sitalakshmib/AceIt-sub001/internal/model"

	"gorm.io/gorm"
)

const snapshotActivityLimit = 30

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// BuildSnapshot 从各模块的明细表装配用户的原始进度快照。
// 装配出的快照允许稀疏，推导引擎负责归一化。
func (r *ProgressRepository) BuildSnapshot(userID uint) (*model.RawSnapshot, error) {
	snapshot := &model.RawSnapshot{
		UserID: strconv.FormatUint(uint64(userID), 10),
	}

	aptitude, err := r.aptitudeStats(userID)
	if err != nil {
		return nil, err
	}
	snapshot.Aptitude = aptitude

	coding, err := r.codingStats(userID)
	if err != nil {
		return nil, err
	}
	snapshot.Coding = coding

	activities, err := r.recentActivities(userID)
	if err != nil {
		return nil, err
	}
	snapshot.RecentActivity = activities

	var totalActivities int64
	if err := r.DB.Model(&model.PracticeActivity{}).
		Where("user_id = ?", userID).
		Count(&totalActivities).Error; err != nil {
		return nil, err
	}
	snapshot.Summary = &model.RawSummary{TotalActivities: int(totalActivities)}

	var totalDuration int64
	if err := r.DB.Model(&model.PracticeActivity{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(duration), 0)").
		Scan(&totalDuration).Error; err != nil {
		return nil, err
	}
	snapshot.TotalTimeSpent = int(totalDuration)

	snapshot.LanguagesUsed, err = r.histogram(userID, "language")
	if err != nil {
		return nil, err
	}
	snapshot.DifficultyBreakdown, err = r.histogram(userID, "difficulty")
	if err != nil {
		return nil, err
	}

	snapshot.WeakAreas, snapshot.StrongAreas, err = r.topicAreas(userID)
	if err != nil {
		return nil, err
	}

	// 总分取两个模块均分的平均，缺模块时取另一个
	switch {
	case aptitude.TestsTaken > 0 && coding.ProblemsAttempted > 0:
		snapshot.OverallScore = (aptitude.AverageScore + coding.AverageSuccessRate) / 2
	case aptitude.TestsTaken > 0:
		snapshot.OverallScore = aptitude.AverageScore
	case coding.ProblemsAttempted > 0:
		snapshot.OverallScore = coding.AverageSuccessRate
	}

	return snapshot, nil
}

func (r *ProgressRepository) aptitudeStats(userID uint) (*model.RawAptitudeStats, error) {
	var stats model.RawAptitudeStats
	err := r.DB.Model(&model.AptitudeResult{}).
		Where("user_id = ?", userID).
		Select("COUNT(*) AS tests_taken, COALESCE(AVG(score), 0) AS average_score, COALESCE(MAX(score), 0) AS best_score, COALESCE(SUM(questions_attempted), 0) AS total_questions_attempted").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *ProgressRepository) codingStats(userID uint) (*model.RawCodingStats, error) {
	var stats model.RawCodingStats
	err := r.DB.Model(&model.CodingSubmission{}).
		Where("user_id = ?", userID).
		Select("COUNT(*) AS problems_attempted, COALESCE(AVG(success_rate), 0) AS average_success_rate, COALESCE(SUM(tests_passed), 0) AS total_tests_passed, COALESCE(SUM(tests_attempted), 0) AS total_tests_attempted").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *ProgressRepository) recentActivities(userID uint) ([]model.RawActivity, error) {
	var rows []model.PracticeActivity
	err := r.DB.Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Limit(snapshotActivityLimit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	activities := make([]model.RawActivity, len(rows))
	for i, row := range rows {
		score := row.Score
		activities[i] = model.RawActivity{
			Module:       row.Module,
			Timestamp:    row.OccurredAt.UTC().Format(time.RFC3339),
			Score:        &score,
			ProblemTitle: row.ProblemTitle,
		}
	}
	return activities, nil
}

// histogram 统计编程提交在某一列上的分布，例如语言或难度
func (r *ProgressRepository) histogram(userID uint, column string) (map[string]int, error) {
	type bucket struct {
		Key   string
		Count int
	}
	var buckets []bucket
	err := r.DB.Model(&model.CodingSubmission{}).
		Where("user_id = ? AND "+column+" <> ''", userID).
		Select(column + " AS `key`, COUNT(*) AS count").
		Group(column).
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int, len(buckets))
	for _, b := range buckets {
		result[b.Key] = b.Count
	}
	return result, nil
}

// topicAreas 按智力测验题型均分划出薄弱与强势领域
func (r *ProgressRepository) topicAreas(userID uint) ([]string, []string, error) {
	type topicAvg struct {
		Topic   string
		Average float64
	}
	var topics []topicAvg
	err := r.DB.Model(&model.AptitudeResult{}).
		Where("user_id = ? AND topic <> ''", userID).
		Select("topic, AVG(score) AS average").
		Group("topic").
		Scan(&topics).Error
	if err != nil {
		return nil, nil, err
	}

	var weak, strong []string
	for _, t := range topics {
		if t.Average < 60 {
			weak = append(weak, t.Topic)
		} else if t.Average >= 75 {
			strong = append(strong, t.Topic)
		}
	}
	return weak, strong, nil
}
