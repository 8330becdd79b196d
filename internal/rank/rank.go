// Package rank 提供累计积分到段位、戒断连胜到里程碑文案的纯查表逻辑。
// 所有查询都有兜底路径，永远不会失败。
package rank

// Tier 表示一个段位区间。
type Tier struct {
	Name        string `json:"name"`
	MinPoints   int    `json:"min_points"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// Tiers 按积分下限严格递增排列，首档使用极小的哨兵下限，保证任何总分都能命中。
var Tiers = []Tier{
	{Name: "Worthless Maggot", MinPoints: -999999, Color: "#7f1d1d", Description: "Rock bottom. You are failing at life."},
	{Name: "Pathetic Loser", MinPoints: 0, Color: "#991b1b", Description: "Zero effort, zero results."},
	{Name: "Struggling Worm", MinPoints: 50, Color: "#b91c1c", Description: "Barely trying, still pathetic."},
	{Name: "Mediocre Drone", MinPoints: 150, Color: "#dc2626", Description: "Average is for losers."},
	{Name: "Inconsistent Amateur", MinPoints: 300, Color: "#ea580c", Description: "Some effort, no discipline."},
	{Name: "Developing Novice", MinPoints: 500, Color: "#f59e0b", Description: "Starting to show up."},
	{Name: "Committed Apprentice", MinPoints: 800, Color: "#eab308", Description: "Building consistency."},
	{Name: "Disciplined Student", MinPoints: 1200, Color: "#84cc16", Description: "Daily habits forming."},
	{Name: "Rising Warrior", MinPoints: 1700, Color: "#22c55e", Description: "Momentum building."},
	{Name: "Focused Champion", MinPoints: 2300, Color: "#10b981", Description: "Excellence becoming normal."},
	{Name: "Elite Achiever", MinPoints: 3000, Color: "#06b6d4", Description: "Top 5% mindset."},
	{Name: "Dominant Force", MinPoints: 4000, Color: "#3b82f6", Description: "Unstoppable consistency."},
	{Name: "Legendary Master", MinPoints: 5500, Color: "#6366f1", Description: "Peak performance mode."},
	{Name: "Ascended Titan", MinPoints: 7500, Color: "#8b5cf6", Description: "Beyond limits."},
	{Name: "Immortal God", MinPoints: 10000, Color: "#a855f7", Description: "The 0.01%. Perfection personified."},
}

// ForPoints 返回总积分达到的最高段位。
// 升序扫描，>= 判断保证压线时归入更高段位。
func ForPoints(totalPoints int) Tier {
	current := Tiers[0]
	for _, tier := range Tiers {
		if totalPoints >= tier.MinPoints {
			current = tier
		} else {
			break
		}
	}
	return current
}

// Progression 描述当前段位与晋级所需积分。
type Progression struct {
	Current      Tier  `json:"current"`
	Next         *Tier `json:"next,omitempty"`
	PointsNeeded int   `json:"points_needed"`
}

// ToNext 返回当前段位及距下一段位的差距，顶级段位时 Next 为空、差距为 0。
func ToNext(totalPoints int) Progression {
	current := ForPoints(totalPoints)

	currentIndex := 0
	for i, tier := range Tiers {
		if tier.MinPoints == current.MinPoints {
			currentIndex = i
			break
		}
	}

	if currentIndex >= len(Tiers)-1 {
		return Progression{Current: current}
	}

	next := Tiers[currentIndex+1]
	return Progression{
		Current:      current,
		Next:         &next,
		PointsNeeded: next.MinPoints - totalPoints,
	}
}
