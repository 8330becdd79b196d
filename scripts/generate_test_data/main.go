package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/liferpg/internal/config"
	"github.com/liferpg/internal/db"
	"github.com/liferpg/internal/service"
)

// 测试数据生成器：为最近 60 天生成打卡与日志数据，便于本地查看仪表盘效果
func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	habitSvc := service.NewHabitService(db.DB)
	logSvc := service.NewDailyLogService(db.DB)
	journalSvc := service.NewJournalService(db.DB)

	habits, err := habitSvc.List(service.HabitFilter{})
	if err != nil {
		log.Fatal("读取习惯注册表失败:", err)
	}
	if len(habits) == 0 {
		log.Fatal("习惯注册表为空，请先启动一次服务完成播种")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := time.Now().In(time.Local)

	for i := 59; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)

		// 偶尔留出完全没打卡的日子，模拟断签
		if rng.Intn(10) == 0 {
			continue
		}

		for _, habit := range habits {
			if rng.Intn(3) == 0 {
				continue
			}

			quantity := 1 + rng.Intn(3)
			if _, err := logSvc.UpsertItem(date, service.LogItemInput{
				HabitName: habit.Name,
				Completed: rng.Intn(4) != 0,
				Quantity:  quantity,
			}); err != nil {
				log.Fatal("写入打卡数据失败:", err)
			}
		}

		if rng.Intn(2) == 0 {
			content := demoJournal(rng)
			if _, err := journalSvc.Save(date, content); err != nil {
				log.Fatal("写入日志数据失败:", err)
			}
		}
	}

	fmt.Println("测试数据生成完成")
}

func demoJournal(rng *rand.Rand) string {
	sentences := []string{
		"Woke up early and got the hard thing done before noon.",
		"Energy was low today but the checklist kept me honest.",
		"Noticed the cravings fade faster when the morning starts with training.",
		"Read a full chapter and took notes instead of scrolling.",
		"Planned tomorrow before bed so the day starts decided.",
	}

	count := 8 + rng.Intn(8)
	out := ""
	for i := 0; i < count; i++ {
		out += sentences[rng.Intn(len(sentences))] + " "
	}
	return out
}
