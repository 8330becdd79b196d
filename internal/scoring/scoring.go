// Package scoring 提供积分与连胜的纯函数推导逻辑。
// 所有函数只读取调用方传入的数据快照，不做任何存储 I/O。
package scoring

import (
	"time"

	"github.com/liferpg/internal/db"
)

const dateFormat = "2006-01-02"

// DateKey 将时间归一化为日历日键（YYYY-MM-DD）。
func DateKey(t time.Time) string {
	return t.Format(dateFormat)
}

// PointsForItem 计算单个习惯在某天的积分。
// 未勾选完成时无论数量多少都记 0 分；完成时积分为 数量 × 单位积分，
// 习惯配置了 DailyCap 时按上限截断。数量由调用方保证非负。
func PointsForItem(habit db.Habit, completed bool, quantity int) int {
	if !completed {
		return 0
	}

	points := quantity * habit.PointsPerUnit
	if habit.DailyCap > 0 && points > habit.DailyCap {
		points = habit.DailyCap
	}

	return points
}

// DailyTotal 汇总一天所有明细的积分。
// 明细引用的习惯不在注册表中时记 0 分；没有明细的习惯不产生积分。
func DailyTotal(habits []db.Habit, items []db.DailyLogItem) int {
	byName := habitsByName(habits)

	total := 0
	for _, item := range items {
		habit, ok := byName[item.HabitName]
		if !ok {
			continue
		}
		total += PointsForItem(habit, item.Completed, item.Quantity)
	}

	return total
}

// AreaTotals 按领域汇总所有历史打卡积分。
// 已被删除的习惯名称静默跳过；全部日志奖励积分计入 Psyche 领域。
func AreaTotals(habits []db.Habit, logs []db.DailyLog, journals []db.JournalEntry) map[string]int {
	totals := make(map[string]int, len(db.Areas))
	for _, area := range db.Areas {
		totals[area] = 0
	}

	byName := habitsByName(habits)

	for _, log := range logs {
		for _, item := range log.Items {
			habit, ok := byName[item.HabitName]
			if !ok {
				continue
			}
			if _, known := totals[habit.Area]; known {
				totals[habit.Area] += item.Points
			}
		}
	}

	totals[db.AreaPsyche] += JournalBonus(journals)

	return totals
}

// JournalBonus 汇总全部日志条目的奖励积分。
func JournalBonus(journals []db.JournalEntry) int {
	sum := 0
	for _, entry := range journals {
		sum += entry.PointsEarned
	}
	return sum
}

// TotalPoints 计算累计总积分：所有打卡日的总分加上日志奖励。
func TotalPoints(logs []db.DailyLog, journals []db.JournalEntry) int {
	total := JournalBonus(journals)
	for _, log := range logs {
		total += log.TotalPoints
	}
	return total
}

// CurrentStreak 从 today 起逐日回溯，统计 TotalPoints > 0 的连续天数。
// 第一天（含 today）不满足条件即停止，不计入。
func CurrentStreak(logs []db.DailyLog, today time.Time) int {
	totalsByDate := make(map[string]int, len(logs))
	for _, log := range logs {
		totalsByDate[DateKey(log.LogDate)] = log.TotalPoints
	}

	streak := 0
	cursor := today
	for {
		if totalsByDate[DateKey(cursor)] <= 0 {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak
}

// RecoveryStreak 统计指定戒断习惯得分为正的连续天数。
// today 当天未满足时改从昨天起算：今天尚未打卡不中断昨天仍在延续的连胜。
func RecoveryStreak(logs []db.DailyLog, habitName string, today time.Time) int {
	pointsByDate := make(map[string]int, len(logs))
	for _, log := range logs {
		for _, item := range log.Items {
			if item.HabitName == habitName {
				pointsByDate[DateKey(log.LogDate)] = item.Points
			}
		}
	}

	cursor := today
	if pointsByDate[DateKey(cursor)] <= 0 {
		cursor = today.AddDate(0, 0, -1)
		if pointsByDate[DateKey(cursor)] <= 0 {
			return 0
		}
	}

	streak := 0
	for pointsByDate[DateKey(cursor)] > 0 {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak
}

// DayTotal 表示周进度图中的单日数据。
type DayTotal struct {
	Day   string `json:"day"`
	Date  string `json:"date"`
	Total int    `json:"total"`
}

// WeeklyProgress 返回截至 today 的最近 7 天逐日总分，缺失的日期按 0 填充。
func WeeklyProgress(logs []db.DailyLog, today time.Time) []DayTotal {
	totalsByDate := make(map[string]int, len(logs))
	for _, log := range logs {
		totalsByDate[DateKey(log.LogDate)] = log.TotalPoints
	}

	days := make([]DayTotal, 0, 7)
	for i := 6; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		key := DateKey(date)
		days = append(days, DayTotal{
			Day:   date.Format("Mon"),
			Date:  key,
			Total: totalsByDate[key],
		})
	}

	return days
}

func habitsByName(habits []db.Habit) map[string]db.Habit {
	byName := make(map[string]db.Habit, len(habits))
	for _, habit := range habits {
		byName[habit.Name] = habit
	}
	return byName
}
