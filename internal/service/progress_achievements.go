package service

import (
	"fmt"

	"github.com/Sitalakshmib/AceIt-sub001/internal/model"
)

const (
	streakPartialDays = 3
	streakFullDays    = 7
)

// evaluateAchievements 按固定规则表计算成就标志。
// 每个 id 恒定出现在结果中，未达成时 unlocked 为 false，
// 输出形状与数据无关。
func evaluateAchievements(snap *normalizedSnapshot) []model.ProgressAchievement {
	totalAttempts := snap.Aptitude.TestsTaken + snap.Coding.ProblemsAttempted
	activeDays := countDistinctActivityDates(snap.RecentActivity)

	streakName := "Practice Streak"
	streakDesc := fmt.Sprintf("Practiced on %d distinct days this week", activeDays)
	if activeDays >= streakFullDays {
		streakName = "Seven-Day Streak"
		streakDesc = "Practiced every single day for a full week"
	}

	return []model.ProgressAchievement{
		{
			ID:          1,
			Name:        "First Steps",
			Description: "Complete your first practice activity",
			Unlocked:    totalAttempts > 0,
			Icon:        "🎯",
		},
		{
			ID:          2,
			Name:        "Code Warrior",
			Description: "Attempt 5 or more coding problems",
			Unlocked:    snap.Coding.ProblemsAttempted >= 5,
			Icon:        "💻",
		},
		{
			ID:          3,
			Name:        "Aptitude Ace",
			Description: "Reach an aptitude average of 80 or above",
			Unlocked:    snap.Aptitude.AverageScore >= 80,
			Icon:        "🧠",
		},
		{
			ID:          4,
			Name:        streakName,
			Description: streakDesc,
			Unlocked:    activeDays >= streakPartialDays,
			Icon:        "🔥",
		},
	}
}

const (
	goalAptitudeQuestions = 50
	goalCodingProblems    = 10
	goalMockInterviews    = 3
)

// trackGoals 计算三个固定目标的进度，progress 恒被夹在 [0, total] 内
func trackGoals(snap *normalizedSnapshot) []model.ProgressGoal {
	interviews := 0
	for _, activity := range snap.RecentActivity {
		if ClassifyActivity(activity) == model.CategoryMockInterview {
			interviews++
		}
	}

	return []model.ProgressGoal{
		{
			ID:          1,
			Description: "Complete 50 aptitude questions",
			Progress:    clampInt(snap.Aptitude.TotalQuestionsAttempted, 0, goalAptitudeQuestions),
			Total:       goalAptitudeQuestions,
		},
		{
			ID:          2,
			Description: "Solve 10 coding problems",
			Progress:    clampInt(snap.Coding.ProblemsAttempted, 0, goalCodingProblems),
			Total:       goalCodingProblems,
		},
		{
			ID:          3,
			Description: "Finish 3 mock interviews",
			Progress:    clampInt(interviews, 0, goalMockInterviews),
			Total:       goalMockInterviews,
		},
	}
}
