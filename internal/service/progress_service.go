package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/Sitalakshmib/AceIt-sub001/internal/model"
	"github.com/Sitalakshmib/AceIt-sub001/internal/repository"
	"github.com/Sitalakshmib/AceIt-sub001/internal/util"
	"github.com/Sitalakshmib/AceIt-sub001/pkg/logger"
	"github.com/Sitalakshmib/AceIt-sub001/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	reportCacheTTL      = 5 * time.Minute
	recentActivityLimit = 5
	dailyStreakCap      = 7
	unknownUserID       = "unknown"
)

// ProgressService 进度分析引擎：把稀疏的原始快照推导为完整一致的仪表盘报表。
// 推导本身是纯函数，时钟与随机种子都从外部注入；
// 仓库与 Redis 只在 GetUserDashboard 外层参与。
type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	Redis        *redis.Client
}

func NewProgressService(progressRepo *repository.ProgressRepository, rdb *redis.Client) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		Redis:        rdb,
	}
}

// ReportOptions 控制推导的时钟与占位数据种子。
// Now 为零值时取系统时间（仅应发生在最外层调用处）；
// Seed 参与占位数据的种子派生，固定 (快照, Now, Seed) 则输出逐字节一致。
type ReportOptions struct {
	Now  time.Time
	Seed int64
}

// normalizedSnapshot 归一化后的内部快照，所有字段都有值
type normalizedSnapshot struct {
	UserID              string
	OverallScore        float64
	Aptitude            model.RawAptitudeStats
	Coding              model.RawCodingStats
	RecentActivity      []model.RawActivity
	Summary             model.RawSummary
	TotalTimeSpent      int
	WeakAreas           []string
	StrongAreas         []string
	LanguagesUsed       map[string]int
	DifficultyBreakdown map[string]int
}

// normalizeSnapshot 把任意不完整的原始快照归一化：缺失数值补 0、
// 缺失列表补空、user_id 缺省为 "unknown"。所有切片与 map 均为副本，
// 推导结果不保留对原始快照的引用。
func normalizeSnapshot(raw *model.RawSnapshot) *normalizedSnapshot {
	snap := &normalizedSnapshot{
		UserID:              unknownUserID,
		WeakAreas:           []string{},
		StrongAreas:         []string{},
		LanguagesUsed:       map[string]int{},
		DifficultyBreakdown: map[string]int{},
		RecentActivity:      []model.RawActivity{},
	}
	if raw == nil {
		return snap
	}

	if raw.UserID != "" {
		snap.UserID = raw.UserID
	}
	snap.OverallScore = raw.OverallScore
	if raw.Aptitude != nil {
		snap.Aptitude = *raw.Aptitude
	}
	if raw.Coding != nil {
		snap.Coding = *raw.Coding
	}
	if raw.Summary != nil {
		snap.Summary = model.RawSummary{
			TotalActivities: raw.Summary.TotalActivities,
			ImprovementTips: append([]string{}, raw.Summary.ImprovementTips...),
		}
	}
	snap.TotalTimeSpent = raw.TotalTimeSpent
	snap.RecentActivity = append(snap.RecentActivity, raw.RecentActivity...)
	snap.WeakAreas = append(snap.WeakAreas, raw.WeakAreas...)
	snap.StrongAreas = append(snap.StrongAreas, raw.StrongAreas...)
	for k, v := range raw.LanguagesUsed {
		snap.LanguagesUsed[k] = v
	}
	for k, v := range raw.DifficultyBreakdown {
		snap.DifficultyBreakdown[k] = v
	}

	return snap
}

// BuildEnhancedReport 把原始快照转换为完整仪表盘报表。
// 快照整体缺失时返回规范空报表；其余任何字段缺失或畸形都逐字段降级，
// 本方法不会失败，输出恒为完整形状。
func (s *ProgressService) BuildEnhancedReport(raw *model.RawSnapshot, opts ReportOptions) *model.EnhancedProgressReport {
	if raw == nil {
		return EmptyProgressReport()
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	snap := normalizeSnapshot(raw)

	report := &model.EnhancedProgressReport{
		UserID:                snap.UserID,
		OverallScore:          clampFloat(snap.OverallScore, 0, 100),
		DailyStreak:           clampInt(countDistinctActivityDates(snap.RecentActivity), 0, dailyStreakCap),
		TotalActivities:       snap.Summary.TotalActivities,
		TotalTimeSpentSeconds: snap.TotalTimeSpent,
		ModuleStats: model.ModuleStats{
			Aptitude: snap.Aptitude,
			Coding:   snap.Coding,
		},
		WeeklyActivity:      buildWeeklySeries(snap, now, opts.Seed),
		Skills:              estimateSkills(snap),
		Achievements:        evaluateAchievements(snap),
		Goals:               trackGoals(snap),
		Recommendations:     buildRecommendations(snap),
		RecentActivity:      buildRecentActivityList(snap),
		WeakAreas:           snap.WeakAreas,
		StrongAreas:         snap.StrongAreas,
		LanguagesUsed:       snap.LanguagesUsed,
		DifficultyBreakdown: snap.DifficultyBreakdown,
	}

	if report.TotalActivities == 0 {
		report.TotalActivities = len(snap.RecentActivity)
	}

	monitoring.ReportBuilds.Inc()
	return report
}

// EmptyProgressReport 规范空报表：快照整体缺失时的唯一输出。
// 所有计数为 0、所有列表为空；与"快照存在但全为零"不同，
// 后者仍走完整推导管线（周曲线 7 个点、推荐非空）。
func EmptyProgressReport() *model.EnhancedProgressReport {
	return &model.EnhancedProgressReport{
		UserID:              unknownUserID,
		WeeklyActivity:      []model.WeeklyActivityPoint{},
		Skills:              []model.SkillScore{},
		Achievements:        []model.ProgressAchievement{},
		Goals:               []model.ProgressGoal{},
		Recommendations:     []string{},
		RecentActivity:      []model.ActivityDisplayItem{},
		WeakAreas:           []string{},
		StrongAreas:         []string{},
		LanguagesUsed:       map[string]int{},
		DifficultyBreakdown: map[string]int{},
	}
}

// buildRecentActivityList 生成最近活动展示列表：
// 未识别分类被排除，按时间戳倒序，最多 5 条
func buildRecentActivityList(snap *normalizedSnapshot) []model.ActivityDisplayItem {
	items := make([]model.ActivityDisplayItem, 0, recentActivityLimit)
	for _, activity := range snap.RecentActivity {
		category := ClassifyActivity(activity)
		if category == model.CategoryUnknown {
			continue
		}
		items = append(items, model.ActivityDisplayItem{
			Title:     ActivityDisplayTitle(activity),
			Category:  category,
			Score:     activityValue(activity),
			Timestamp: activity.Timestamp,
		})
	}

	// ISO-8601 时间戳按字典序即时间序，缺失时间戳的排在最后
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Timestamp == "" {
			return false
		}
		if items[j].Timestamp == "" {
			return true
		}
		return items[i].Timestamp > items[j].Timestamp
	})

	if len(items) > recentActivityLimit {
		items = items[:recentActivityLimit]
	}
	return items
}

// countDistinctActivityDates 统计有活动的不同日历日数量，
// 无法解析出日期的时间戳不计入
func countDistinctActivityDates(activities []model.RawActivity) int {
	dates := make(map[string]bool)
	for _, activity := range activities {
		if len(activity.Timestamp) < len(util.DateFormat) {
			continue
		}
		prefix := activity.Timestamp[:len(util.DateFormat)]
		if _, err := time.Parse(util.DateFormat, prefix); err != nil {
			continue
		}
		dates[prefix] = true
	}
	return len(dates)
}

// GetUserDashboard 读取用户快照并推导报表，结果按 用户+日期 缓存 5 分钟。
// 缓存故障只记日志不影响主流程。
func (s *ProgressService) GetUserDashboard(ctx context.Context, userID uint) (*model.EnhancedProgressReport, error) {
	now := time.Now()
	cacheKey := util.ProgressReportCacheKey(userID, now.Format(util.DateFormat))

	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var report model.EnhancedProgressReport
			if err := json.Unmarshal([]byte(cached), &report); err == nil {
				return &report, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("progress report cache read failed", zap.Error(err))
		}
	}

	snapshot, err := s.ProgressRepo.BuildSnapshot(userID)
	if err != nil {
		return nil, err
	}

	report := s.BuildEnhancedReport(snapshot, ReportOptions{Now: now})

	if s.Redis != nil {
		payload, err := json.Marshal(report)
		if err == nil {
			if err := s.Redis.Set(ctx, cacheKey, payload, reportCacheTTL).Err(); err != nil {
				logger.Log.Warn("progress report cache write failed", zap.Error(err))
			}
		}
	}

	return report, nil
}

// GetUserSnapshot 返回数据库装配出的原始快照，供调试与渲染层比对
func (s *ProgressService) GetUserSnapshot(userID uint) (*model.RawSnapshot, error) {
	return s.ProgressRepo.BuildSnapshot(userID)
}
