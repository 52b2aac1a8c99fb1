package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// key ที่ใช้จริงมีแค่สองตัว layout เดียวกับ localStorage ของ web client
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Record คือหนึ่ง entry ใน string key-value store
type Record struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (Record) TableName() string { return "session_store" }

// Store เป็น local storage ของ client ตัวเดียวที่ persist ข้าม restart
type Store struct {
	db *gorm.DB
}

func Open(source string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Get คืนค่ากับ flag ว่ามี key นี้ไหม อ่านพังถือว่าไม่มี
func (s *Store) Get(key string) (string, bool) {
	var rec Record
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		return "", false
	}
	return rec.Value, true
}

func (s *Store) Set(key, value string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Record{Key: key, Value: value}).Error
}

func (s *Store) Delete(key string) error {
	return s.db.Delete(&Record{}, "key = ?", key).Error
}

// Token ให้ services.Client อ่าน bearer credential ตอนยิง request
func (s *Store) Token() (string, bool) {
	return s.Get(KeyToken)
}
