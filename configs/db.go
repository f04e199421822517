package configs

import (
	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.Gig{}, &entity.GigPackage{},
		&entity.Post{}, &entity.Application{},
		&entity.Order{}, &entity.Review{},
		&entity.ChatRoom{}, &entity.Message{},
		&entity.Report{},
	)
}
