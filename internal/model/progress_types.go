package model

// RawSnapshot 后端 progress 接口返回的原始进度快照，所有字段均可缺省
type RawSnapshot struct {
	UserID              string            `json:"user_id"`
	OverallScore        float64           `json:"overall_score"`
	Aptitude            *RawAptitudeStats `json:"aptitude"`
	Coding              *RawCodingStats   `json:"coding"`
	RecentActivity      []RawActivity     `json:"recent_activity"`
	Summary             *RawSummary       `json:"summary"`
	TotalTimeSpent      int               `json:"total_time_spent"` // 秒
	WeakAreas           []string          `json:"weak_areas"`
	StrongAreas         []string          `json:"strong_areas"`
	LanguagesUsed       map[string]int    `json:"languages_used"`
	DifficultyBreakdown map[string]int    `json:"difficulty_breakdown"`
}

// RawAptitudeStats 智力测验聚合数据
type RawAptitudeStats struct {
	TestsTaken              int     `json:"tests_taken"`
	AverageScore            float64 `json:"average_score"`
	BestScore               float64 `json:"best_score"`
	TotalQuestionsAttempted int     `json:"total_questions_attempted"`
}

// RawCodingStats 编程题聚合数据
type RawCodingStats struct {
	ProblemsAttempted   int     `json:"problems_attempted"`
	AverageSuccessRate  float64 `json:"average_success_rate"`
	TotalTestsPassed    int     `json:"total_tests_passed"`
	TotalTestsAttempted int     `json:"total_tests_attempted"`
}

// RawActivity 一条原始练习记录
type RawActivity struct {
	Module       string   `json:"module"`
	Timestamp    string   `json:"timestamp"` // ISO-8601，可缺省
	Score        *float64 `json:"score"`
	Percentage   *float64 `json:"percentage"`
	ProblemTitle string   `json:"problem_title"`
}

// RawSummary 快照附带的汇总信息
type RawSummary struct {
	TotalActivities int      `json:"total_activities"`
	ImprovementTips []string `json:"improvement_tips"`
}

// ActivityCategory 练习记录的语义分类
type ActivityCategory string

const (
	CategoryAptitudeTest  ActivityCategory = "aptitude_test"
	CategoryCodingProblem ActivityCategory = "coding_problem"
	CategoryMockInterview ActivityCategory = "mock_interview"
	CategoryUnknown       ActivityCategory = "unknown"
)

// WeeklyActivityPoint 周活动曲线上的一天
type WeeklyActivityPoint struct {
	Day            string `json:"day"`  // Mon..Sun
	Date           string `json:"date"` // 2006-01-02
	AptitudeCount  int    `json:"aptitudeCount"`
	CodingCount    int    `json:"codingCount"`
	InterviewCount int    `json:"interviewCount"`
	DailyScore     int    `json:"dailyScore"` // 0-100
}

// SkillScore 单项技能评分
type SkillScore struct {
	Name          string `json:"name"`
	Score         int    `json:"score"` // 10-100
	QuestionCount int    `json:"questionCount"`
}

// ProgressAchievement 成就标志，id 集合固定，每个 id 恒定输出
type ProgressAchievement struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
	Icon        string `json:"icon"`
}

// ProgressGoal 固定目标的完成进度，progress 恒不超过 total
type ProgressGoal struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	Total       int    `json:"total"`
}

// ActivityDisplayItem 最近活动展示项（未识别分类不进入该列表）
type ActivityDisplayItem struct {
	Title     string           `json:"title"`
	Category  ActivityCategory `json:"category"`
	Score     float64          `json:"score"`
	Timestamp string           `json:"timestamp"`
}

// ModuleStats 各模块的真实统计透传
type ModuleStats struct {
	Aptitude RawAptitudeStats `json:"aptitude"`
	Coding   RawCodingStats   `json:"coding"`
}

// EnhancedProgressReport 仪表盘完整报表，所有字段恒定存在
type EnhancedProgressReport struct {
	UserID                string                `json:"userId"`
	OverallScore          float64               `json:"overallScore"`
	DailyStreak           int                   `json:"dailyStreak"` // 上限 7
	TotalActivities       int                   `json:"totalActivities"`
	TotalTimeSpentSeconds int                   `json:"totalTimeSpentSeconds"`
	ModuleStats           ModuleStats           `json:"moduleStats"`
	WeeklyActivity        []WeeklyActivityPoint `json:"weeklyActivity"`
	Skills                []SkillScore          `json:"skills"`
	Achievements          []ProgressAchievement `json:"achievements"`
	Goals                 []ProgressGoal        `json:"goals"`
	Recommendations       []string              `json:"recommendations"`
	RecentActivity        []ActivityDisplayItem `json:"recentActivity"` // 最多 5 条，最新在前
	WeakAreas             []string              `json:"weakAreas"`
	StrongAreas           []string              `json:"strongAreas"`
	LanguagesUsed         map[string]int        `json:"languagesUsed"`
	DifficultyBreakdown   map[string]int        `json:"difficultyBreakdown"`
}
