package database

import (
	"fmt"
	"log"

	"kanasense_backend/internal/catalog"
	"kanasense_backend/internal/config"
	"kanasense_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// release 模式默认不做结构迁移，除非用 -migrate 显式要求
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		err = db.AutoMigrate(
			&model.User{},
			&model.Progress{},
			&model.LevelProgress{},
		)

		if err != nil {
			return nil, err
		}

		log.Println("Database migration completed")
	}

	// 字符目录是进程内静态数据，不落库；启动时做一次完整性自检，
	// 任何分区缺数据都直接拒绝启动
	if len(catalog.Hiragana()) == 0 || len(catalog.Katakana()) == 0 || len(catalog.Kanji()) == 0 {
		return nil, fmt.Errorf("character catalog is incomplete: hiragana=%d katakana=%d kanji=%d",
			len(catalog.Hiragana()), len(catalog.Katakana()), len(catalog.Kanji()))
	}

	return db, nil
}
