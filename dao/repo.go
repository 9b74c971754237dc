package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用 DAO 基类，各业务 DAO 内嵌后按需扩展
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Create(ctx context.Context, m *T) error {
	return r.Db.WithContext(ctx).Create(m).Error
}

func (r Repo[T]) FindByID(ctx context.Context, id uint64) (*T, error) {
	var m T
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}
