package service

import (
	"testing"

	"github.com/Sitalakshmib/AceIt-sub001/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skillByName(t *testing.T, skills []model.SkillScore, name string) model.SkillScore {
	t.Helper()
	for _, s := range skills {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("skill %q not found", name)
	return model.SkillScore{}
}

func TestEstimateSkillsOffsets(t *testing.T) {
	snap := normalizeSnapshot(&model.RawSnapshot{
		Aptitude: &model.RawAptitudeStats{AverageScore: 70, TotalQuestionsAttempted: 30},
		Coding:   &model.RawCodingStats{AverageSuccessRate: 65, ProblemsAttempted: 8},
	})

	skills := estimateSkills(snap)
	require.Len(t, skills, 6)

	assert.Equal(t, 70, skillByName(t, skills, "Quantitative").Score)
	assert.Equal(t, 60, skillByName(t, skills, "Logical Reasoning").Score)
	assert.Equal(t, 65, skillByName(t, skills, "Verbal").Score)
	assert.Equal(t, 65, skillByName(t, skills, "Programming").Score)
	assert.Equal(t, 60, skillByName(t, skills, "Problem Solving").Score)
	assert.Equal(t, 10, skillByName(t, skills, "System Design").Score)

	assert.Equal(t, 10, skillByName(t, skills, "Quantitative").QuestionCount)
	assert.Equal(t, 16, skillByName(t, skills, "Programming").QuestionCount)
	assert.Equal(t, 8, skillByName(t, skills, "Problem Solving").QuestionCount)
	assert.Equal(t, 0, skillByName(t, skills, "System Design").QuestionCount)
}

func TestEstimateSkillsClamping(t *testing.T) {
	snap := normalizeSnapshot(&model.RawSnapshot{
		Aptitude: &model.RawAptitudeStats{AverageScore: 1000, TotalQuestionsAttempted: -9},
		Coding:   &model.RawCodingStats{AverageSuccessRate: -200, ProblemsAttempted: -3},
	})

	for _, s := range estimateSkills(snap) {
		assert.GreaterOrEqual(t, s.Score, 10, s.Name)
		assert.LessOrEqual(t, s.Score, 100, s.Name)
		assert.GreaterOrEqual(t, s.QuestionCount, 0, s.Name)
	}

	skills := estimateSkills(snap)
	assert.Equal(t, 100, skillByName(t, skills, "Quantitative").Score)
	assert.Equal(t, 10, skillByName(t, skills, "Programming").Score)
}

func TestEstimateSkillsZeroSnapshot(t *testing.T) {
	skills := estimateSkills(normalizeSnapshot(&model.RawSnapshot{}))
	require.Len(t, skills, 6)
	// 完全没有数据时所有评分落在下限
	for _, s := range skills {
		assert.Equal(t, 10, s.Score, s.Name)
		assert.Equal(t, 0, s.QuestionCount, s.Name)
	}
}

func TestEstimateSkillsDeterministic(t *testing.T) {
	snap := normalizeSnapshot(&model.RawSnapshot{
		Aptitude: &model.RawAptitudeStats{AverageScore: 73.4, TotalQuestionsAttempted: 17},
		Coding:   &model.RawCodingStats{AverageSuccessRate: 58.9, ProblemsAttempted: 4},
	})
	assert.Equal(t, estimateSkills(snap), estimateSkills(snap))
}
