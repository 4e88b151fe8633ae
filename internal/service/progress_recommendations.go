package service

import (
	"fmt"

	"github.com/Sitalakshmib/AceIt-sub001/internal/model"
)

const minRecommendations = 3

// 推荐条数不足时的通用补充池，按固定顺序选取，保证输出可复现
var genericRecommendations = []string{
	"Review your mistakes after every practice session",
	"Set aside 30 focused minutes of practice every day",
	"Alternate between aptitude drills and coding problems to stay sharp",
	"Schedule a mock interview to benchmark your progress",
}

// buildRecommendations 按固定顺序评估规则，每条规则至多追加一条建议。
// 结果去重，不足 3 条时从通用池补足。
func buildRecommendations(snap *normalizedSnapshot) []string {
	var recs []string

	if snap.Aptitude.TestsTaken == 0 {
		recs = append(recs, "Start with an aptitude test to establish your baseline")
	} else if snap.Aptitude.AverageScore < 60 {
		recs = append(recs, fmt.Sprintf("Your aptitude average is %.0f%% - drill timed question sets to push it past 60%%", snap.Aptitude.AverageScore))
	}

	if snap.Coding.ProblemsAttempted == 0 {
		recs = append(recs, "Attempt your first coding problem to start building momentum")
	} else if snap.Coding.AverageSuccessRate < 50 {
		recs = append(recs, fmt.Sprintf("Your coding success rate is %.0f%% - revisit fundamentals on easier problems first", snap.Coding.AverageSuccessRate))
	}

	hasInterview := false
	for _, activity := range snap.RecentActivity {
		if ClassifyActivity(activity) == model.CategoryMockInterview {
			hasInterview = true
			break
		}
	}
	if !hasInterview {
		recs = append(recs, "You haven't done a mock interview yet - book one to practice under pressure")
	}

	recs = dedupeStrings(recs)

	for _, generic := range genericRecommendations {
		if len(recs) >= minRecommendations {
			break
		}
		if !containsString(recs, generic) {
			recs = append(recs, generic)
		}
	}

	return recs
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func containsString(in []string, target string) bool {
	for _, s := range in {
		if s == target {
			return true
		}
	}
	return false
}
