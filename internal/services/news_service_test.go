package services

import (
	"testing"

	"github.com/aurumtrade/aurum-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.News{}, &models.Query{})
	require.NoError(t, err)

	return db
}

func TestCreateNewsAssignsSlug(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNewsService(db)

	created, err := svc.CreateNews(models.News{
		ID:          "abc1234",
		Title:       "Gold Bars",
		Description: "desc",
		AuthorID:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, "gold-bars", created.Slug)
}

func TestCreateNewsSlugCollision(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNewsService(db)

	first, err := svc.CreateNews(models.News{ID: "aaa1111", Title: "Gold Bars", Description: "d", AuthorID: 1})
	require.NoError(t, err)
	require.Equal(t, "gold-bars", first.Slug)

	// Same title again: the unique index fires and the insert is retried
	// with the article's own id as a suffix.
	second, err := svc.CreateNews(models.News{ID: "bbb2222", Title: "Gold Bars", Description: "d", AuthorID: 1})
	require.NoError(t, err)
	assert.Equal(t, "gold-bars-bbb2222", second.Slug)

	// Both rows exist and slugs stay unique.
	var count int64
	db.Model(&models.News{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestCreateNewsSymbolOnlyTitleFallsBackToID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNewsService(db)

	created, err := svc.CreateNews(models.News{ID: "zzz9999", Title: "!!!", Description: "d", AuthorID: 1})
	require.NoError(t, err)
	assert.Equal(t, "zzz9999", created.Slug)
}

func TestUpdateNewsDoesNotTouchSlug(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNewsService(db)

	created, err := svc.CreateNews(models.News{ID: "abc1234", Title: "Gold Bars", Description: "d", AuthorID: 1})
	require.NoError(t, err)

	err = svc.UpdateNews(created.ID, NewsUpdate{Title: "Silver Bars", Tags: models.StringList{"silver"}})
	require.NoError(t, err)

	updated, err := svc.GetNewsByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Silver Bars", updated.Title)
	assert.Equal(t, "gold-bars", updated.Slug)
	assert.Equal(t, models.StringList{"silver"}, updated.Tags)
	// Untouched fields keep their values.
	assert.Equal(t, "d", updated.Description)
}

func TestUpdateNewsUnknownID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNewsService(db)

	err := svc.UpdateNews("missing", NewsUpdate{Title: "x"})
	assert.ErrorIs(t, err, ErrNewsNotFound)
}

func TestDeleteNewsIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNewsService(db)

	created, err := svc.CreateNews(models.News{ID: "abc1234", Title: "Gold Bars", Description: "d", AuthorID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteNews(created.ID))
	// Deleting an id that no longer exists is still not an error.
	assert.NoError(t, svc.DeleteNews(created.ID))
	assert.NoError(t, svc.DeleteNews("never-existed"))
}

func TestListNewsFiltersByTag(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNewsService(db)

	_, err := svc.CreateNews(models.News{ID: "aaa1111", Title: "Gold Rates Up", Description: "d", Tags: models.StringList{"gold", "market"}, AuthorID: 1})
	require.NoError(t, err)
	_, err = svc.CreateNews(models.News{ID: "bbb2222", Title: "Office Opening", Description: "d", Tags: models.StringList{"company"}, AuthorID: 1})
	require.NoError(t, err)

	all, err := svc.ListNews("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	gold, err := svc.ListNews("gold")
	require.NoError(t, err)
	require.Len(t, gold, 1)
	assert.Equal(t, "Gold Rates Up", gold[0].Title)
}

func TestUserServiceRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user := &models.User{Name: "A", Email: "a@aurumtrade.com", Password: "hash"}
	require.NoError(t, svc.CreateUser(user))

	dup := &models.User{Name: "B", Email: "a@aurumtrade.com", Password: "hash"}
	assert.ErrorIs(t, svc.CreateUser(dup), ErrEmailTaken)
}

func TestPromoteToAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user := &models.User{Name: "A", Email: "a@aurumtrade.com", Password: "hash"}
	require.NoError(t, svc.CreateUser(user))
	require.NoError(t, svc.PromoteToAdmin("a@aurumtrade.com"))

	promoted, err := svc.GetUserByEmail("a@aurumtrade.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, promoted.Role)
}

func TestQueryServiceAssignsID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewQueryService(db)

	created, err := svc.CreateQuery(models.Query{
		Name:        "Visitor",
		Subject:     "Account opening",
		Email:       "v@example.com",
		PhoneNumber: "9841000000",
		Message:     "Hello",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	listed, err := svc.ListQueries()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "9841000000", listed[0].PhoneNumber)
}
