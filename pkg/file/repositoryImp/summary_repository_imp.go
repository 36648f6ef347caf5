package repositoryImp

import (
	"gorm.io/gorm"

	"docqa/entities"
	"docqa/pkg/file/repository"
)

type summaryRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SummaryRepository { return &summaryRepo{db} }

func (r *summaryRepo) Create(s *entities.Summary) error { return r.db.Create(s).Error }
