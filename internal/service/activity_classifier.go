package service

import (
	"strings"

	"github.com/Sitalakshmib/AceIt-sub001/internal/model"
)

// ClassifyActivity 将原始活动的 module 字符串映射为语义分类。
// 匹配顺序有意义：先做精确匹配，再做子串匹配，
// 因此 "coding_interview" 会命中 interview 子串归为模拟面试。
func ClassifyActivity(activity model.RawActivity) model.ActivityCategory {
	switch activity.Module {
	case "aptitude":
		return model.CategoryAptitudeTest
	case "coding":
		return model.CategoryCodingProblem
	}

	if strings.Contains(activity.Module, "interview") {
		return model.CategoryMockInterview
	}

	return model.CategoryUnknown
}

// ActivityDisplayTitle 生成活动的展示标题。
// 未识别分类返回空串，由调用方排除在最近活动列表之外。
func ActivityDisplayTitle(activity model.RawActivity) string {
	switch ClassifyActivity(activity) {
	case model.CategoryAptitudeTest:
		return "Aptitude Test"
	case model.CategoryCodingProblem:
		if activity.ProblemTitle != "" {
			return activity.ProblemTitle
		}
		return "Coding Problem"
	case model.CategoryMockInterview:
		return "Mock Interview"
	}
	return ""
}

// activityValue 取一条活动的得分，percentage 优先于 score，都缺省时为 0
func activityValue(activity model.RawActivity) float64 {
	if activity.Percentage != nil {
		return *activity.Percentage
	}
	if activity.Score != nil {
		return *activity.Score
	}
	return 0
}
