package service

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/Sitalakshmib/AceIt-sub001/internal/model"
	"github.com/Sitalakshmib/AceIt-sub001/internal/util"
)

// 有真实数据的日期，各分类计数按 2 倍展示。
// 这是前端图表的显示缩放系数，不是真实次数，消费方已按该约定渲染，
// 调整前需要与产品确认（见 DESIGN.md 未决问题）。
const displayCountScale = 2

// buildWeeklySeries 构建以 now 为末尾的连续 7 天活动曲线，最早的一天在前。
// 每天的 date 严格递增，day 为该日期的星期缩写。
// 某天没有任何活动时，用 (userID, date) 派生的确定性伪随机序列生成占位数据，
// 保证相同输入与种子下输出完全一致。
func buildWeeklySeries(snap *normalizedSnapshot, now time.Time, seed int64) []model.WeeklyActivityPoint {
	points := make([]model.WeeklyActivityPoint, 0, 7)

	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		dateStr := date.Format(util.DateFormat)
		day := date.Weekday().String()[:3]

		var aptitude, coding, interview int
		var total float64
		var matched int

		for _, activity := range snap.RecentActivity {
			// 时间戳按 ISO 日期前缀匹配，无法解析的记录不参与分桶
			if len(activity.Timestamp) < len(dateStr) || activity.Timestamp[:len(dateStr)] != dateStr {
				continue
			}
			matched++
			total += activityValue(activity)

			switch ClassifyActivity(activity) {
			case model.CategoryAptitudeTest:
				aptitude++
			case model.CategoryCodingProblem:
				coding++
			case model.CategoryMockInterview:
				interview++
			}
		}

		if matched > 0 {
			score := int(math.Floor(total / float64(matched)))
			points = append(points, model.WeeklyActivityPoint{
				Day:            day,
				Date:           dateStr,
				AptitudeCount:  aptitude * displayCountScale,
				CodingCount:    coding * displayCountScale,
				InterviewCount: interview * displayCountScale,
				DailyScore:     clampInt(score, 0, 100),
			})
			continue
		}

		points = append(points, fallbackDayPoint(snap.UserID, day, dateStr, seed))
	}

	return points
}

// fallbackDayPoint 为没有真实数据的日期生成占位点
func fallbackDayPoint(userID, day, date string, seed int64) model.WeeklyActivityPoint {
	r := rand.New(rand.NewSource(fallbackSeed(seed, userID, date)))
	return model.WeeklyActivityPoint{
		Day:            day,
		Date:           date,
		AptitudeCount:  r.Intn(3),
		CodingCount:    r.Intn(4),
		InterviewCount: r.Intn(2),
		DailyScore:     40 + r.Intn(51), // 40-90，避免占位曲线出现 0 或满分
	}
}

// fallbackSeed 由基础种子、用户与日期派生当天的伪随机种子
func fallbackSeed(base int64, userID, date string) int64 {
	h := fnv.New64a()
	h.Write([]byte(userID))
	h.Write([]byte{'|'})
	h.Write([]byte(date))
	return base ^ int64(h.Sum64())
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
