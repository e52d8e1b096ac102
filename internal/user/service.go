package user

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// FindByName 按名字精确查找用户。未找到时返回 (nil, nil)。
func FindByName(db *gorm.DB, name string) (*User, error) {
	var u User
	err := db.Where("name = ?", name).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询用户 %q 失败: %w", name, err)
	}
	return &u, nil
}

// LoadAll 加载全部用户记录，供修订解析和聚合使用。
func LoadAll(db *gorm.DB) ([]User, error) {
	var users []User
	if err := db.Order("id asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("无法加载用户列表: %w", err)
	}
	return users, nil
}

// CountUsers 返回用户总数（无论其投票属于哪个修订）。
func CountUsers(db *gorm.DB) (int64, error) {
	var count int64
	if err := db.Model(&User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("无法统计用户数量: %w", err)
	}
	return count, nil
}
