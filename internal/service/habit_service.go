package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/liferpg/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrHabitNotFound 在指定习惯不存在时返回
	ErrHabitNotFound = errors.New("habit not found")
	// ErrHabitInvalidArea 当领域不在固定集合内时返回
	ErrHabitInvalidArea = errors.New("invalid habit area")
	// ErrHabitInvalidPoints 当积分或上限配置为负数时返回
	ErrHabitInvalidPoints = errors.New("invalid habit points configuration")
	// ErrHabitNameTaken 当习惯名称已被占用时返回
	ErrHabitNameTaken = errors.New("habit name already exists")
)

// HabitService 负责习惯注册表的增删改查
// 名称为习惯的业务主键：打卡明细通过名称引用习惯
// 删除习惯不回溯删除历史明细，孤儿引用在计分时按 0 分跳过
type HabitService struct {
	db *gorm.DB
}

// HabitFilter 描述列表过滤条件
type HabitFilter struct {
	Area   string
	Search string
}

// HabitInput 定义创建/更新习惯时可配置字段
type HabitInput struct {
	Name            string
	Area            string
	Description     string
	PointsPerUnit   int
	Unit            string
	DailyCap        int
	RecoveryTracked bool
}

// NewHabitService 构造 HabitService
func NewHabitService(gdb *gorm.DB) *HabitService {
	return &HabitService{db: gdb}
}

// List 返回习惯集合，支持按领域与关键词筛选
func (s *HabitService) List(filter HabitFilter) ([]db.Habit, error) {
	var habits []db.Habit

	query := s.db.Model(&db.Habit{})

	if filter.Area != "" {
		query = query.Where("area = ?", filter.Area)
	}
	if filter.Search != "" {
		like := fmt.Sprintf("%%%s%%", strings.TrimSpace(filter.Search))
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	if err := query.Order("id ASC").Find(&habits).Error; err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}

	return habits, nil
}

// Get 根据 ID 获取习惯
func (s *HabitService) Get(id uint) (*db.Habit, error) {
	var habit db.Habit
	if err := s.db.First(&habit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, fmt.Errorf("get habit: %w", err)
	}
	return &habit, nil
}

// GetByName 根据名称获取习惯
func (s *HabitService) GetByName(name string) (*db.Habit, error) {
	var habit db.Habit
	if err := s.db.Where("name = ?", strings.TrimSpace(name)).First(&habit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, fmt.Errorf("get habit by name: %w", err)
	}
	return &habit, nil
}

// Create 新建习惯
func (s *HabitService) Create(input HabitInput) (*db.Habit, error) {
	if err := validateHabitInput(input); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if taken, err := s.nameTaken(name, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrHabitNameTaken
	}

	habit := db.Habit{
		Name:            name,
		Area:            input.Area,
		Description:     strings.TrimSpace(input.Description),
		PointsPerUnit:   input.PointsPerUnit,
		Unit:            strings.TrimSpace(input.Unit),
		DailyCap:        input.DailyCap,
		RecoveryTracked: input.RecoveryTracked,
	}

	if err := s.db.Create(&habit).Error; err != nil {
		return nil, fmt.Errorf("create habit: %w", err)
	}
	return &habit, nil
}

// Update 更新习惯
func (s *HabitService) Update(id uint, input HabitInput) (*db.Habit, error) {
	if err := validateHabitInput(input); err != nil {
		return nil, err
	}

	var existing db.Habit
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, fmt.Errorf("find habit: %w", err)
	}

	name := strings.TrimSpace(input.Name)
	if taken, err := s.nameTaken(name, id); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrHabitNameTaken
	}

	existing.Name = name
	existing.Area = input.Area
	existing.Description = strings.TrimSpace(input.Description)
	existing.PointsPerUnit = input.PointsPerUnit
	existing.Unit = strings.TrimSpace(input.Unit)
	existing.DailyCap = input.DailyCap
	existing.RecoveryTracked = input.RecoveryTracked

	if err := s.db.Save(&existing).Error; err != nil {
		return nil, fmt.Errorf("update habit: %w", err)
	}
	return &existing, nil
}

// Delete 删除习惯，历史打卡明细保留
func (s *HabitService) Delete(id uint) error {
	if err := s.db.Delete(&db.Habit{}, id).Error; err != nil {
		return fmt.Errorf("delete habit: %w", err)
	}
	return nil
}

// FindRecoveryHabit 返回用于戒断连胜统计的习惯。
// 优先使用显式的 RecoveryTracked 标记；对尚未迁移的旧数据退回名称片段匹配。
// 未找到时返回 nil（而非错误），表示恢复面板处于未激活状态。
func (s *HabitService) FindRecoveryHabit() (*db.Habit, error) {
	var habit db.Habit
	err := s.db.Where("recovery_tracked = ?", true).Order("id ASC").First(&habit).Error
	if err == nil {
		return &habit, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find recovery habit: %w", err)
	}

	habits, err := s.List(HabitFilter{})
	if err != nil {
		return nil, err
	}

	for _, h := range habits {
		lower := strings.ToLower(h.Name)
		for _, pattern := range []string{"weed", "sobriety", "clean", "marijuana", "thc", "smoke"} {
			if strings.Contains(lower, pattern) {
				matched := h
				return &matched, nil
			}
		}
	}

	return nil, nil
}

func (s *HabitService) nameTaken(name string, excludeID uint) (bool, error) {
	query := s.db.Model(&db.Habit{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check habit name: %w", err)
	}
	return count > 0, nil
}

func validateHabitInput(input HabitInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("habit name is required")
	}

	if !db.ValidArea(input.Area) {
		return fmt.Errorf("%w: %s", ErrHabitInvalidArea, input.Area)
	}

	if input.PointsPerUnit < 0 {
		return fmt.Errorf("%w: points per unit must not be negative", ErrHabitInvalidPoints)
	}

	if input.DailyCap < 0 {
		return fmt.Errorf("%w: daily cap must not be negative", ErrHabitInvalidPoints)
	}

	return nil
}
