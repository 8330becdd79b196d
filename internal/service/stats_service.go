package service

import (
	"time"

	"github.com/liferpg/internal/rank"
	"github.com/liferpg/internal/scoring"
	"gorm.io/gorm"
)

// StatsService 聚合仪表盘所需的派生数据。
// 只做读取与纯函数组合，写入仅限最长连胜高水位的同步。
type StatsService struct {
	habits   *HabitService
	logs     *DailyLogService
	journal  *JournalService
	settings *SettingService
}

// NewStatsService 构造 StatsService
func NewStatsService(gdb *gorm.DB) *StatsService {
	return &StatsService{
		habits:   NewHabitService(gdb),
		logs:     NewDailyLogService(gdb),
		journal:  NewJournalService(gdb),
		settings: NewSettingService(gdb),
	}
}

// Overview 为仪表盘主视图的汇总数据。
type Overview struct {
	TotalPoints   int                `json:"total_points"`
	AreaTotals    map[string]int     `json:"area_totals"`
	Rank          rank.Progression   `json:"rank"`
	CurrentStreak int                `json:"current_streak"`
	LongestStreak int                `json:"longest_streak"`
	Weekly        []scoring.DayTotal `json:"weekly"`
}

// RecoveryView 为恢复面板的汇总数据。
// Active 为 false 时表示尚未配置戒断习惯，其余字段为零值。
type RecoveryView struct {
	Active     bool             `json:"active"`
	HabitName  string           `json:"habit_name,omitempty"`
	Streak     int              `json:"streak"`
	Insight    string           `json:"insight,omitempty"`
	BonusXP    int              `json:"bonus_xp"`
	Milestones []rank.Milestone `json:"milestones,omitempty"`
}

// BuildOverview 计算 today 视角下的仪表盘汇总，并顺带推进最长连胜高水位。
func (s *StatsService) BuildOverview(today time.Time) (*Overview, error) {
	habits, err := s.habits.List(HabitFilter{})
	if err != nil {
		return nil, err
	}

	logs, err := s.logs.ListAll()
	if err != nil {
		return nil, err
	}

	journals, err := s.journal.ListAll()
	if err != nil {
		return nil, err
	}

	total := scoring.TotalPoints(logs, journals)
	streak := scoring.CurrentStreak(logs, today)

	longest, err := s.settings.RaiseLongestStreak(streak)
	if err != nil {
		return nil, err
	}

	return &Overview{
		TotalPoints:   total,
		AreaTotals:    scoring.AreaTotals(habits, logs, journals),
		Rank:          rank.ToNext(total),
		CurrentStreak: streak,
		LongestStreak: longest,
		Weekly:        scoring.WeeklyProgress(logs, today),
	}, nil
}

// BuildRecovery 计算恢复面板数据，variant 控制里程碑文案的变体轮换。
func (s *StatsService) BuildRecovery(today time.Time, variant int) (*RecoveryView, error) {
	habit, err := s.habits.FindRecoveryHabit()
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return &RecoveryView{}, nil
	}

	logs, err := s.logs.ListAll()
	if err != nil {
		return nil, err
	}

	streak := scoring.RecoveryStreak(logs, habit.Name, today)

	return &RecoveryView{
		Active:     true,
		HabitName:  habit.Name,
		Streak:     streak,
		Insight:    rank.Insight(streak, variant),
		BonusXP:    rank.BonusXP(streak),
		Milestones: rank.Milestones,
	}, nil
}
