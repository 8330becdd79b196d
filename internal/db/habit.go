package db

import "gorm.io/gorm"

// 五个固定的人生领域分类，所有习惯必须归属其一
const (
	AreaPhysical  = "Physical"
	AreaPsyche    = "Psyche"
	AreaIntellect = "Intellect"
	AreaSpiritual = "Spiritual"
	AreaCore      = "Core"
)

// Areas 按展示顺序列出全部领域。
var Areas = []string{AreaPhysical, AreaPsyche, AreaIntellect, AreaSpiritual, AreaCore}

// ValidArea 判断给定分类是否属于固定集合。
func ValidArea(area string) bool {
	for _, a := range Areas {
		if a == area {
			return true
		}
	}
	return false
}

// Habit 定义了习惯注册表中的一条习惯
// Name 全局唯一，打卡明细通过名称引用习惯；删除习惯不会级联删除历史明细
// PointsPerUnit 为每完成一个单位获得的积分，允许为 0
// DailyCap 为单日积分上限，0 表示不限制（取代旧版按名称写死的特例）
// RecoveryTracked 标记该习惯用于戒断连胜统计（取代旧版按名称模糊匹配）
type Habit struct {
	gorm.Model
	Name            string `gorm:"uniqueIndex;not null"`
	Area            string `gorm:"size:20;index"`
	Description     string
	PointsPerUnit   int
	Unit            string
	DailyCap        int
	RecoveryTracked bool
}
