package main

import (
	"fmt"
	"log"
	"os"

	"github.com/liferpg/internal/config"
	"github.com/liferpg/internal/db"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 初始化数据库
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	// 检查是否已存在用户
	var count int64
	db.DB.Model(&db.User{}).Count(&count)
	if count > 0 {
		fmt.Println("已存在管理账号，跳过创建")
		return
	}

	username := os.Getenv("SUPER_ROOT_USER_NAME")
	password := os.Getenv("SUPER_ROOT_PASSWORD")
	if username == "" {
		username = "admin"
	}
	if password == "" {
		password = "admin123"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("密码哈希失败:", err)
	}

	if err := db.DB.Create(&db.User{Username: username, Password: string(hashed)}).Error; err != nil {
		log.Fatal("创建用户失败:", err)
	}

	fmt.Printf("管理账号创建完成: %s\n", username)
}
