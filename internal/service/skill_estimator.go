package service

import (
	"math"

	"github.com/Sitalakshmib/AceIt-sub001/internal/model"
)

const (
	skillScoreFloor = 10
	skillScoreCeil  = 100
)

// estimateSkills 从模块聚合分数推导六项技能评分。
// 没有直接测量的技能用固定偏移近似（例如逻辑推理 = 智力测验均分 - 10），
// 不引入任何随机扰动，同一快照恒得到同一评分。
// 分数统一收敛到 [10, 100]，questionCount 不为负。
func estimateSkills(snap *normalizedSnapshot) []model.SkillScore {
	aptitudeAvg := snap.Aptitude.AverageScore
	codingRate := snap.Coding.AverageSuccessRate

	aptitudeQuestions := snap.Aptitude.TotalQuestionsAttempted / 3
	if aptitudeQuestions < 0 {
		aptitudeQuestions = 0
	}
	problems := snap.Coding.ProblemsAttempted
	if problems < 0 {
		problems = 0
	}

	return []model.SkillScore{
		{Name: "Quantitative", Score: skillScore(aptitudeAvg), QuestionCount: aptitudeQuestions},
		{Name: "Logical Reasoning", Score: skillScore(aptitudeAvg - 10), QuestionCount: aptitudeQuestions},
		{Name: "Verbal", Score: skillScore(aptitudeAvg - 5), QuestionCount: aptitudeQuestions},
		{Name: "Programming", Score: skillScore(codingRate), QuestionCount: problems * 2},
		{Name: "Problem Solving", Score: skillScore(codingRate - 5), QuestionCount: problems},
		{Name: "System Design", Score: skillScore(0), QuestionCount: 0}, // 暂无数据来源
	}
}

func skillScore(base float64) int {
	return clampInt(int(math.Round(base)), skillScoreFloor, skillScoreCeil)
}
