package services

import (
	"errors"

	"github.com/aurumtrade/aurum-api/internal/models"
	"github.com/aurumtrade/aurum-api/internal/slug"
	"gorm.io/gorm"
)

// ErrNewsNotFound is returned when no article matches the given id or slug.
var ErrNewsNotFound = errors.New("news article not found")

// NewsUpdate carries the optional fields of an edit. Zero-valued fields are
// left untouched; the slug is never part of an update.
type NewsUpdate struct {
	Title       string
	Description string
	Images      models.StringList
	Tags        models.StringList
}

// NewsService provides methods to interact with the news table
type NewsService interface {
	// ListNews retrieves all articles, newest first, optionally filtered by tag
	ListNews(tag string) ([]models.News, error)
	// GetNewsBySlug retrieves a single article by its slug
	GetNewsBySlug(s string) (models.News, error)
	// GetNewsByID retrieves a single article by its id
	GetNewsByID(id string) (models.News, error)
	// CreateNews inserts a new article, assigning its slug from the title
	CreateNews(news models.News) (models.News, error)
	// UpdateNews applies the non-zero fields of upd to the article with the given id
	UpdateNews(id string, upd NewsUpdate) error
	// DeleteNews deletes an article by its id
	DeleteNews(id string) error
}

// newsService is the implementation of the NewsService interface
type newsService struct {
	db *gorm.DB
}

// NewNewsService creates a new instance of NewsService
func NewNewsService(db *gorm.DB) NewsService {
	return &newsService{db: db}
}

func (s *newsService) ListNews(tag string) ([]models.News, error) {
	var articles []models.News
	q := s.db.Order("created_at DESC")
	if tag != "" {
		// Tags are stored as a JSON text column; match the quoted element.
		q = q.Where("tags LIKE ?", `%"`+tag+`"%`)
	}
	if err := q.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *newsService) GetNewsBySlug(sl string) (models.News, error) {
	var article models.News
	if err := s.db.Where("slug = ?", sl).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.News{}, ErrNewsNotFound
		}
		return models.News{}, err
	}
	return article, nil
}

func (s *newsService) GetNewsByID(id string) (models.News, error) {
	var article models.News
	if err := s.db.Where("id = ?", id).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.News{}, ErrNewsNotFound
		}
		return models.News{}, err
	}
	return article, nil
}

// CreateNews inserts the article with a slug derived from its title. The slug
// column carries a unique index; instead of a read-then-write existence check
// (which races between concurrent creates), the insert is attempted with the
// base slug and retried once with "{slug}-{id}" when the constraint fires.
// The article's own id keeps the suffixed slug unique without a retry loop.
func (s *newsService) CreateNews(news models.News) (models.News, error) {
	base := slug.Make(news.Title)
	if base == "" {
		base = news.ID
	}

	news.Slug = base
	err := s.db.Create(&news).Error
	if err == nil {
		return news, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.News{}, err
	}

	news.Slug = slug.WithSuffix(base, news.ID)
	if err := s.db.Create(&news).Error; err != nil {
		return models.News{}, err
	}
	return news, nil
}

func (s *newsService) UpdateNews(id string, upd NewsUpdate) error {
	if _, err := s.GetNewsByID(id); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if upd.Title != "" {
		updates["title"] = upd.Title
	}
	if upd.Description != "" {
		updates["description"] = upd.Description
	}
	if upd.Images != nil {
		updates["images"] = upd.Images
	}
	if upd.Tags != nil {
		updates["tags"] = upd.Tags
	}
	if len(updates) == 0 {
		return nil
	}

	// The slug is deliberately absent from the update set: it is assigned
	// once at creation and stays stable even when the title changes.
	return s.db.Model(&models.News{}).Where("id = ?", id).Updates(updates).Error
}

func (s *newsService) DeleteNews(id string) error {
	// Deleting an id that no longer exists is not an error; the row is gone
	// either way.
	return s.db.Where("id = ?", id).Delete(&models.News{}).Error
}
