package service

import (
	"testing"

	"github.com/Sitalakshmib/AceIt-sub001/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestClassifyActivity(t *testing.T) {
	cases := []struct {
		module   string
		expected model.ActivityCategory
	}{
		{"aptitude", model.CategoryAptitudeTest},
		{"coding", model.CategoryCodingProblem},
		{"mock_interview", model.CategoryMockInterview},
		{"technical_interview", model.CategoryMockInterview},
		// 先精确后子串：coding_interview 命中 interview 子串
		{"coding_interview", model.CategoryMockInterview},
		{"quiz_master", model.CategoryUnknown},
		{"", model.CategoryUnknown},
		{"Aptitude", model.CategoryUnknown},
	}

	for _, c := range cases {
		got := ClassifyActivity(model.RawActivity{Module: c.module})
		assert.Equal(t, c.expected, got, "module %q", c.module)
	}
}

func TestActivityDisplayTitle(t *testing.T) {
	assert.Equal(t, "Aptitude Test", ActivityDisplayTitle(model.RawActivity{Module: "aptitude"}))
	assert.Equal(t, "Mock Interview", ActivityDisplayTitle(model.RawActivity{Module: "mock_interview"}))
	assert.Equal(t, "Coding Problem", ActivityDisplayTitle(model.RawActivity{Module: "coding"}))
	assert.Equal(t, "Two Sum", ActivityDisplayTitle(model.RawActivity{Module: "coding", ProblemTitle: "Two Sum"}))
	// 未识别分类标题为空，不进入展示列表
	assert.Equal(t, "", ActivityDisplayTitle(model.RawActivity{Module: "quiz_master", ProblemTitle: "ignored"}))
}

func TestActivityValue(t *testing.T) {
	percentage := 90.0
	score := 70.0

	assert.Equal(t, 90.0, activityValue(model.RawActivity{Percentage: &percentage, Score: &score}))
	assert.Equal(t, 70.0, activityValue(model.RawActivity{Score: &score}))
	assert.Equal(t, 0.0, activityValue(model.RawActivity{}))
}
