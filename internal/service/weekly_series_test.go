package service

import (
	"testing"
	"time"

	"github.com/Sitalakshmib/AceIt-sub001/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestBuildWeeklySeriesShape(t *testing.T) {
	snap := normalizeSnapshot(&model.RawSnapshot{UserID: "u1"})
	// 周日作为末尾，窗口恰好是 Mon..Sun
	now := mustTime(t, "2024-06-30T12:00:00Z")

	points := buildWeeklySeries(snap, now, 0)
	require.Len(t, points, 7)

	expectedDays := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, p := range points {
		assert.Equal(t, expectedDays[i], p.Day)
		if i > 0 {
			assert.Greater(t, p.Date, points[i-1].Date, "dates must be strictly increasing")
		}
		assert.GreaterOrEqual(t, p.DailyScore, 0)
		assert.LessOrEqual(t, p.DailyScore, 100)
		assert.GreaterOrEqual(t, p.AptitudeCount, 0)
		assert.GreaterOrEqual(t, p.CodingCount, 0)
		assert.GreaterOrEqual(t, p.InterviewCount, 0)
	}
	assert.Equal(t, "2024-06-24", points[0].Date)
	assert.Equal(t, "2024-06-30", points[6].Date)
}

func TestBuildWeeklySeriesRealDay(t *testing.T) {
	pct := 90.0
	snap := normalizeSnapshot(&model.RawSnapshot{
		UserID: "u1",
		RecentActivity: []model.RawActivity{
			{Module: "coding", Timestamp: "2024-01-01T10:00:00Z", Percentage: &pct},
		},
	})
	now := mustTime(t, "2024-01-01T23:00:00Z")

	points := buildWeeklySeries(snap, now, 0)
	require.Len(t, points, 7)

	today := points[6]
	assert.Equal(t, "2024-01-01", today.Date)
	assert.Equal(t, "Mon", today.Day)
	// 真实数据日按 2 倍展示缩放
	assert.Equal(t, 2, today.CodingCount)
	assert.Equal(t, 0, today.AptitudeCount)
	assert.Equal(t, 0, today.InterviewCount)
	assert.Equal(t, 90, today.DailyScore)
}

func TestBuildWeeklySeriesMixedDayAverage(t *testing.T) {
	p1, p2 := 90.0, 75.0
	snap := normalizeSnapshot(&model.RawSnapshot{
		UserID: "u1",
		RecentActivity: []model.RawActivity{
			{Module: "aptitude", Timestamp: "2024-01-01T08:00:00Z", Percentage: &p1},
			{Module: "coding", Timestamp: "2024-01-01T09:00:00Z", Percentage: &p2},
			// 未识别模块参与当天均分，但不计入任何分类
			{Module: "quiz_master", Timestamp: "2024-01-01T10:00:00Z", Percentage: &p2},
		},
	})
	now := mustTime(t, "2024-01-01T23:00:00Z")

	today := buildWeeklySeries(snap, now, 0)[6]
	assert.Equal(t, 2, today.AptitudeCount)
	assert.Equal(t, 2, today.CodingCount)
	assert.Equal(t, 0, today.InterviewCount)
	// floor((90+75+75)/3) = 80
	assert.Equal(t, 80, today.DailyScore)
}

func TestBuildWeeklySeriesDeterministicFallback(t *testing.T) {
	snap := normalizeSnapshot(&model.RawSnapshot{UserID: "u1"})
	now := mustTime(t, "2024-06-30T12:00:00Z")

	first := buildWeeklySeries(snap, now, 42)
	second := buildWeeklySeries(snap, now, 42)
	assert.Equal(t, first, second)

	other := buildWeeklySeries(snap, now, 43)
	assert.NotEqual(t, first, other, "different seeds should produce different placeholder weeks")
}

func TestBuildWeeklySeriesFallbackRanges(t *testing.T) {
	snap := normalizeSnapshot(&model.RawSnapshot{UserID: "u1"})
	now := mustTime(t, "2024-06-30T12:00:00Z")

	for seed := int64(0); seed < 20; seed++ {
		for _, p := range buildWeeklySeries(snap, now, seed) {
			assert.Less(t, p.AptitudeCount, 3)
			assert.Less(t, p.CodingCount, 4)
			assert.Less(t, p.InterviewCount, 2)
			assert.GreaterOrEqual(t, p.DailyScore, 40)
			assert.LessOrEqual(t, p.DailyScore, 90)
		}
	}
}

func TestBuildWeeklySeriesClampsAdversarialScores(t *testing.T) {
	high, low := 100000.0, -500.0
	snap := normalizeSnapshot(&model.RawSnapshot{
		UserID: "u1",
		RecentActivity: []model.RawActivity{
			{Module: "coding", Timestamp: "2024-01-01T10:00:00Z", Percentage: &high},
			{Module: "aptitude", Timestamp: "2023-12-31T10:00:00Z", Percentage: &low},
		},
	})
	now := mustTime(t, "2024-01-01T23:00:00Z")

	points := buildWeeklySeries(snap, now, 0)
	assert.Equal(t, 100, points[6].DailyScore)
	assert.Equal(t, 0, points[5].DailyScore)
}

func TestBuildWeeklySeriesIgnoresMalformedTimestamps(t *testing.T) {
	pct := 80.0
	snap := normalizeSnapshot(&model.RawSnapshot{
		UserID: "u1",
		RecentActivity: []model.RawActivity{
			{Module: "coding", Timestamp: "not-a-date", Percentage: &pct},
			{Module: "coding", Timestamp: "", Percentage: &pct},
		},
	})
	now := mustTime(t, "2024-06-30T12:00:00Z")

	// 无法分桶的记录不影响曲线：所有 7 天都应是占位点
	withMalformed := buildWeeklySeries(snap, now, 7)
	empty := buildWeeklySeries(normalizeSnapshot(&model.RawSnapshot{UserID: "u1"}), now, 7)
	assert.Equal(t, empty, withMalformed)
}

func TestFallbackSeedVariesByUserAndDate(t *testing.T) {
	assert.NotEqual(t, fallbackSeed(0, "u1", "2024-01-01"), fallbackSeed(0, "u2", "2024-01-01"))
	assert.NotEqual(t, fallbackSeed(0, "u1", "2024-01-01"), fallbackSeed(0, "u1", "2024-01-02"))
	assert.Equal(t, fallbackSeed(5, "u1", "2024-01-01"), fallbackSeed(5, "u1", "2024-01-01"))
}
