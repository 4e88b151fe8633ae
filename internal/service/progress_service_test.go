package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Sitalakshmib/AceIt-sub001/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *ProgressService {
	return NewProgressService(nil, nil)
}

func testOptions(t *testing.T) ReportOptions {
	t.Helper()
	return ReportOptions{Now: mustTime(t, "2024-06-30T12:00:00Z"), Seed: 1}
}

func floatPtr(v float64) *float64 { return &v }

func TestBuildEnhancedReportNilSnapshot(t *testing.T) {
	report := newTestService().BuildEnhancedReport(nil, testOptions(t))
	assert.Equal(t, EmptyProgressReport(), report)

	// 规范空报表：所有列表为空而非 nil
	assert.Equal(t, "unknown", report.UserID)
	assert.NotNil(t, report.WeeklyActivity)
	assert.Empty(t, report.WeeklyActivity)
	assert.Empty(t, report.Skills)
	assert.Empty(t, report.Achievements)
	assert.Empty(t, report.Goals)
	assert.Empty(t, report.Recommendations)
	assert.Empty(t, report.RecentActivity)
}

func TestBuildEnhancedReportZeroSnapshotRunsFullPipeline(t *testing.T) {
	// 快照存在但全为零，与快照整体缺失不同：仍走完整推导管线
	report := newTestService().BuildEnhancedReport(&model.RawSnapshot{}, testOptions(t))

	assert.Len(t, report.WeeklyActivity, 7)
	assert.Len(t, report.Skills, 6)
	assert.Len(t, report.Achievements, 4)
	assert.Len(t, report.Goals, 3)
	assert.GreaterOrEqual(t, len(report.Recommendations), 3)
	assert.Equal(t, "unknown", report.UserID)
	assert.Zero(t, report.OverallScore)
	assert.Zero(t, report.DailyStreak)
}

func TestBuildEnhancedReportIdempotent(t *testing.T) {
	raw := &model.RawSnapshot{
		UserID:       "42",
		OverallScore: 71.5,
		Aptitude:     &model.RawAptitudeStats{TestsTaken: 4, AverageScore: 68, TotalQuestionsAttempted: 40},
		Coding:       &model.RawCodingStats{ProblemsAttempted: 7, AverageSuccessRate: 55},
		RecentActivity: []model.RawActivity{
			{Module: "coding", Timestamp: "2024-06-29T10:00:00Z", Percentage: floatPtr(80)},
			{Module: "aptitude", Timestamp: "2024-06-28T10:00:00Z", Percentage: floatPtr(60)},
		},
	}

	svc := newTestService()
	opts := testOptions(t)

	first, err := json.Marshal(svc.BuildEnhancedReport(raw, opts))
	require.NoError(t, err)
	second, err := json.Marshal(svc.BuildEnhancedReport(raw, opts))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestBuildEnhancedReportDoesNotMutateInput(t *testing.T) {
	raw := &model.RawSnapshot{
		UserID: "42",
		RecentActivity: []model.RawActivity{
			{Module: "coding", Timestamp: "2024-06-29T10:00:00Z", Percentage: floatPtr(80)},
			{Module: "aptitude", Timestamp: "2024-06-28T10:00:00Z", Percentage: floatPtr(60)},
		},
		WeakAreas:     []string{"graphs"},
		LanguagesUsed: map[string]int{"go": 3},
	}
	before, err := json.Marshal(raw)
	require.NoError(t, err)

	newTestService().BuildEnhancedReport(raw, testOptions(t))

	after, err := json.Marshal(raw)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestBuildEnhancedReportAptitudeOnlyScenario(t *testing.T) {
	raw := &model.RawSnapshot{
		UserID:   "7",
		Aptitude: &model.RawAptitudeStats{TestsTaken: 10, AverageScore: 85, TotalQuestionsAttempted: 120},
	}

	report := newTestService().BuildEnhancedReport(raw, testOptions(t))

	require.Len(t, report.Achievements, 4)
	assert.True(t, report.Achievements[0].Unlocked, "First Steps")
	assert.False(t, report.Achievements[1].Unlocked, "Code Warrior needs coding problems")
	assert.True(t, report.Achievements[2].Unlocked, "Aptitude Ace at 85 average")

	assert.Contains(t, report.Recommendations, "Attempt your first coding problem to start building momentum")
	assert.Equal(t, 50, report.Goals[0].Progress, "aptitude goal clamps at its total")
}

func TestBuildEnhancedReportRecentActivityList(t *testing.T) {
	raw := &model.RawSnapshot{
		UserID: "9",
		RecentActivity: []model.RawActivity{
			{Module: "aptitude", Timestamp: "2024-06-25T09:00:00Z", Percentage: floatPtr(70)},
			{Module: "quiz_master", Timestamp: "2024-06-29T09:00:00Z", Percentage: floatPtr(99)},
			{Module: "coding", Timestamp: "2024-06-28T09:00:00Z", Score: floatPtr(64), ProblemTitle: "Two Sum"},
			{Module: "mock_interview", Percentage: floatPtr(50)},
			{Module: "coding", Timestamp: "2024-06-27T09:00:00Z"},
		},
	}

	report := newTestService().BuildEnhancedReport(raw, testOptions(t))

	// 未识别模块被排除，倒序排列，缺时间戳的在最后
	require.Len(t, report.RecentActivity, 4)
	assert.Equal(t, "Two Sum", report.RecentActivity[0].Title)
	assert.Equal(t, "Coding Problem", report.RecentActivity[1].Title)
	assert.Equal(t, "Aptitude Test", report.RecentActivity[2].Title)
	assert.Equal(t, "Mock Interview", report.RecentActivity[3].Title)
	assert.Equal(t, model.CategoryCodingProblem, report.RecentActivity[0].Category)
	assert.Equal(t, 64.0, report.RecentActivity[0].Score)

	// quiz_master 不进展示列表，但计入活动总数
	assert.Equal(t, 5, report.TotalActivities)
}

func TestBuildEnhancedReportRecentActivityCap(t *testing.T) {
	raw := &model.RawSnapshot{UserID: "9"}
	for i := 0; i < 8; i++ {
		raw.RecentActivity = append(raw.RecentActivity, model.RawActivity{
			Module:    "coding",
			Timestamp: mustTime(t, "2024-06-20T10:00:00Z").AddDate(0, 0, i).Format(time.RFC3339),
		})
	}

	report := newTestService().BuildEnhancedReport(raw, testOptions(t))
	require.Len(t, report.RecentActivity, 5)
	assert.Equal(t, "2024-06-27T10:00:00Z", report.RecentActivity[0].Timestamp)
}

func TestBuildEnhancedReportSummaryPrecedence(t *testing.T) {
	withSummary := newTestService().BuildEnhancedReport(&model.RawSnapshot{
		Summary:        &model.RawSummary{TotalActivities: 99},
		RecentActivity: []model.RawActivity{{Module: "coding", Timestamp: "2024-06-29T10:00:00Z"}},
	}, testOptions(t))
	assert.Equal(t, 99, withSummary.TotalActivities)

	withoutSummary := newTestService().BuildEnhancedReport(&model.RawSnapshot{
		RecentActivity: []model.RawActivity{{Module: "coding", Timestamp: "2024-06-29T10:00:00Z"}},
	}, testOptions(t))
	assert.Equal(t, 1, withoutSummary.TotalActivities)
}

func TestBuildEnhancedReportClampsTopLevelFields(t *testing.T) {
	raw := &model.RawSnapshot{
		UserID:       "9",
		OverallScore: 250,
	}
	for i := 0; i < 12; i++ {
		raw.RecentActivity = append(raw.RecentActivity, model.RawActivity{
			Module:    "coding",
			Timestamp: mustTime(t, "2024-06-01T10:00:00Z").AddDate(0, 0, i).Format(time.RFC3339),
		})
	}

	report := newTestService().BuildEnhancedReport(raw, testOptions(t))
	assert.Equal(t, 100.0, report.OverallScore)
	assert.Equal(t, 7, report.DailyStreak, "streak is capped at a week")

	negative := newTestService().BuildEnhancedReport(&model.RawSnapshot{OverallScore: -40}, testOptions(t))
	assert.Equal(t, 0.0, negative.OverallScore)
}

func TestBuildEnhancedReportPassthroughFields(t *testing.T) {
	raw := &model.RawSnapshot{
		UserID:              "11",
		TotalTimeSpent:      5400,
		WeakAreas:           []string{"dynamic programming"},
		StrongAreas:         []string{"arrays"},
		LanguagesUsed:       map[string]int{"go": 5, "python": 2},
		DifficultyBreakdown: map[string]int{"easy": 4, "medium": 3},
		Aptitude:            &model.RawAptitudeStats{TestsTaken: 2, AverageScore: 66, BestScore: 80},
		Coding:              &model.RawCodingStats{ProblemsAttempted: 3, AverageSuccessRate: 70},
	}

	report := newTestService().BuildEnhancedReport(raw, testOptions(t))

	assert.Equal(t, "11", report.UserID)
	assert.Equal(t, 5400, report.TotalTimeSpentSeconds)
	assert.Equal(t, []string{"dynamic programming"}, report.WeakAreas)
	assert.Equal(t, []string{"arrays"}, report.StrongAreas)
	assert.Equal(t, map[string]int{"go": 5, "python": 2}, report.LanguagesUsed)
	assert.Equal(t, map[string]int{"easy": 4, "medium": 3}, report.DifficultyBreakdown)
	assert.Equal(t, *raw.Aptitude, report.ModuleStats.Aptitude)
	assert.Equal(t, *raw.Coding, report.ModuleStats.Coding)
}

func TestCountDistinctActivityDates(t *testing.T) {
	activities := []model.RawActivity{
		{Timestamp: "2024-01-01T10:00:00Z"},
		{Timestamp: "2024-01-01T18:00:00Z"},
		{Timestamp: "2024-01-02T10:00:00Z"},
		{Timestamp: "garbage"},
		{Timestamp: ""},
		{Timestamp: "2024-13-99T10:00:00Z"}, // 非法日期前缀
	}
	assert.Equal(t, 2, countDistinctActivityDates(activities))
	assert.Equal(t, 0, countDistinctActivityDates(nil))
}

func TestNormalizeSnapshotDefaults(t *testing.T) {
	snap := normalizeSnapshot(nil)
	assert.Equal(t, "unknown", snap.UserID)
	assert.NotNil(t, snap.RecentActivity)
	assert.NotNil(t, snap.WeakAreas)
	assert.NotNil(t, snap.LanguagesUsed)

	partial := normalizeSnapshot(&model.RawSnapshot{UserID: "abc", OverallScore: 12})
	assert.Equal(t, "abc", partial.UserID)
	assert.Equal(t, 12.0, partial.OverallScore)
	assert.Zero(t, partial.Aptitude)
	assert.Zero(t, partial.Coding)
}
