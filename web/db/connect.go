package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Connect opens the MySQL database named by dbName, creating it first if it
// does not exist. The dsn points at the server without a database selected.
func Connect(dsn, dbName string) (*Store, error) {
	tempDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = tempDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci;", dbName)).Error
	if err != nil {
		return nil, err
	}

	sqlDB, _ := tempDB.DB()
	sqlDB.Close()

	dsnWithDB := fmt.Sprintf("%s%s?charset=utf8mb4&parseTime=True&loc=Local", dsn, dbName)
	gormDB, err := gorm.Open(mysql.Open(dsnWithDB), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return &Store{db: gormDB}, nil
}

// Sync migrates the schema for all collections.
func (s *Store) Sync() error {
	return s.db.AutoMigrate(&StatusCheck{}, &Order{}, &Payment{})
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
