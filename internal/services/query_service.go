package services

import (
	"github.com/aurumtrade/aurum-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QueryService persists contact-form submissions.
type QueryService interface {
	// CreateQuery inserts a visitor query, assigning its id
	CreateQuery(query models.Query) (models.Query, error)
	// ListQueries retrieves all submitted queries, newest first
	ListQueries() ([]models.Query, error)
}

type queryService struct {
	db *gorm.DB
}

func NewQueryService(db *gorm.DB) QueryService {
	return &queryService{db: db}
}

func (s *queryService) CreateQuery(query models.Query) (models.Query, error) {
	if query.ID == "" {
		query.ID = uuid.NewString()
	}
	if err := s.db.Create(&query).Error; err != nil {
		return models.Query{}, err
	}
	return query, nil
}

func (s *queryService) ListQueries() ([]models.Query, error) {
	var queries []models.Query
	if err := s.db.Order("created_at DESC").Find(&queries).Error; err != nil {
		return nil, err
	}
	return queries, nil
}
