package postgres

import (
	"context"

	"github.com/abhishek/learngrow/internal/domain"
	"gorm.io/gorm"
)

type chatRecordRepository struct {
	db *gorm.DB
}

func NewChatRecordRepository(db *gorm.DB) *chatRecordRepository {
	return &chatRecordRepository{db: db}
}

func (r *chatRecordRepository) Create(ctx context.Context, record *domain.ChatRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}
