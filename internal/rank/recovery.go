package rank

import (
	"sort"
)

// recoveryInsights 按精确的连胜天数里程碑组织文案，每个里程碑提供多个变体，
// 供"换个说法"按钮循环展示。首个变体为基准文案。
var recoveryInsights = map[int][]string{
	0: {
		"The journey begins. Your dopamine receptors are down-regulated, expecting the chemical flood. The craving is a sign of healing starting.",
		"Day zero. The discomfort you feel is the first evidence that your brain has noticed the change.",
	},
	1: {
		"24 Hours: Anxiety and irritability peak as immediate THC levels drop. Your body is confused, but its natural balance is already verifying the absence.",
		"One full day. The edge you feel is chemistry, not character. It passes.",
	},
	2: {
		"48 Hours: Physiological Awakening. Your nerve endings begin to re-sensitize. Insomnia is common as your sleep architecture fights to reset.",
		"Two days in. Restless nights now buy back real sleep later. Hold the line.",
	},
	3: {
		"Day 3: The Chemical Shift. Most circulating THC is eliminated from the blood. The physical 'need' begins to fade; the psychological battle takes center stage.",
		"72 hours clean. The body's part is nearly done. From here it is a mind game, and you have the home advantage.",
	},
	4: {
		"Day 4: REM Rebound. Vivid, intense dreams return. Your brain is catching up on years of suppressed REM sleep and processing backlog emotions.",
		"The dreams are loud because the mind is finally allowed to speak. Let it.",
	},
	5: {
		"Day 5: Cilia Activation. If you smoked, lung cilia are waking up. You may cough more, which is good—it means your lungs are finally self-cleaning.",
		"Five days. The cough is the cleanup crew arriving, not a setback.",
	},
	7: {
		"1 Week: Physical Freedom. Most intense physical withdrawal symptoms subside. Sleep patterns begin to normalize. You've survived the hardest physical week.",
		"Seven days. The hardest physical week is behind you. Everything after this is consolidation.",
	},
	10: {
		"Day 10: Clarity Glimpses. The 'brain fog' starts to thin. Complex thoughts become slightly easier to hold. Blood flow to the hippocampus improves.",
		"Ten days. Notice the moments when thinking feels easy again. They will multiply.",
	},
	14: {
		"2 Weeks: Dopamine Reset. Your brain's natural reward system (nucleus accumbens) begins to upregulate receptors. Natural joys start to feel real again.",
		"Two weeks. The volume on ordinary pleasures like music, food and sunlight is being turned back up.",
	},
	21: {
		"3 Weeks: Habit Breaking. Validating your new identity. The neural pathways associated with the 'ritual' of using are weakening from disuse.",
		"21 days. The old ritual is losing its grip one skipped repetition at a time.",
	},
	30: {
		"1 Month: Baseline Restoration. Cannabinoid 1 (CB1) receptor density has returned to near-normal levels in most brain regions. You are technically reset.",
		"One month. On paper your brain is back to baseline. Now you build above it.",
	},
	60: {
		"2 Months: Emotional Stability. Emotional regulation is stronger. You no longer need the substance to manage stress. You are free.",
		"Two months. Stress arrives and leaves without a chemical escort. That is freedom.",
	},
	90: {
		"3 Months: Full Integration. The 'new you' is just 'you'. Cognitive performance in memory and attention is statistically back to non-user baselines.",
		"90 days. There is no 'recovered self' anymore. There is just you, at full capacity.",
	},
}

// fallbackInsights 在连胜天数低于所有里程碑键时轮换展示的通用鼓励文案。
var fallbackInsights = []string{
	"Keep pushing. Every single day cleans your system and strengthens your mind. You are forging a new reality.",
	"Progress is invisible day to day and undeniable month to month. Stay on the path.",
}

// insightDaysDesc 缓存按降序排列的里程碑键。
var insightDaysDesc = func() []int {
	days := make([]int, 0, len(recoveryInsights))
	for day := range recoveryInsights {
		days = append(days, day)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(days)))
	return days
}()

// Insight 返回连胜天数对应的里程碑文案。
// 优先精确命中；否则取不超过天数的最大里程碑；仍无命中时使用通用兜底列表。
// variantIndex 对所选列表长度取模，支持无额外状态的文案循环。
func Insight(streakDays, variantIndex int) string {
	if list, ok := recoveryInsights[streakDays]; ok {
		return pickVariant(list, variantIndex)
	}

	for _, day := range insightDaysDesc {
		if streakDays >= day {
			return pickVariant(recoveryInsights[day], variantIndex)
		}
	}

	return pickVariant(fallbackInsights, variantIndex)
}

func pickVariant(list []string, variantIndex int) string {
	idx := variantIndex % len(list)
	if idx < 0 {
		idx += len(list)
	}
	return list[idx]
}

// Milestone 描述恢复时间线上的一个奖励节点。
type Milestone struct {
	Day     int    `json:"day"`
	Label   string `json:"label"`
	Benefit string `json:"benefit"`
	Bonus   int    `json:"bonus"`
}

// Milestones 为恢复时间线的奖励节点，达成后奖励一次性 Bonus XP。
var Milestones = []Milestone{
	{Day: 0, Label: "Start", Benefit: "The Decision. You took back control.", Bonus: 0},
	{Day: 7, Label: "7 Days", Benefit: "Physical Cleanse. Metabolites leave the blood. Sleep normalizes.", Bonus: 500},
	{Day: 14, Label: "14 Days", Benefit: "Dopamine Reset. Natural joys start to feel real again.", Bonus: 750},
	{Day: 30, Label: "30 Days", Benefit: "Psychological Reset. Habit loops broken. Memory improves.", Bonus: 1000},
	{Day: 60, Label: "60 Days", Benefit: "Emotional Stability. Prefrontal cortex regulation returns.", Bonus: 1750},
	{Day: 90, Label: "90 Days", Benefit: "Full Integration. Dopamine baseline restored. You are free.", Bonus: 2500},
}

// BonusXP 累加已达成里程碑的奖励积分。
func BonusXP(streakDays int) int {
	total := 0
	for _, m := range Milestones {
		if streakDays >= m.Day {
			total += m.Bonus
		}
	}
	return total
}
