package repositories

import (
	"context"
	"testing"
	"time"

	"gin-grocery/infra"
	"gin-grocery/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := infra.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, username string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Username: username, Password: "hash"}
	require.NoError(t, NewAuthRepository(db).CreateUser(context.Background(), user))
	return user
}

// seedGroups は ID 1 と 2 のグループを作る
func seedGroups(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, name := range []string{"One", "Two"} {
		require.NoError(t, db.Create(&models.Group{Name: name}).Error)
	}
}

func TestAuthRepository_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuthRepository(db)
	ctx := context.Background()
	createUser(t, db, "a@x.com", "alice")

	err := repo.CreateUser(ctx, &models.User{Email: "a@x.com", Username: "other", Password: "hash"})
	assert.ErrorIs(t, err, ErrDuplicate)

	err = repo.CreateUser(ctx, &models.User{Email: "other@x.com", Username: "alice", Password: "hash"})
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = repo.FindUser(ctx, "missing@x.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGroupRepository_CreateWithOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()
	alice := createUser(t, db, "a@x.com", "alice")
	createUser(t, db, "b@x.com", "bob")

	group, err := repo.CreateWithOwner(ctx, "Flatmates", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, 0, group.Budget)

	_, err = repo.CreateWithOwner(ctx, "Flatmates", "b@x.com")
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = repo.CreateWithOwner(ctx, "Ghosts", "ghost@x.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.CreateWithOwner(ctx, "Second", "a@x.com")
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
	_, err = repo.FindByName(ctx, "Second")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.AddMember(ctx, group.ID, alice.ID)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
}

func TestGroupRepository_ListMemberNames(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()
	createUser(t, db, "a@x.com", "alice")
	bob := createUser(t, db, "b@x.com", "bob")
	createUser(t, db, "c@x.com", "carol")

	group, err := repo.CreateWithOwner(ctx, "Flatmates", "a@x.com")
	require.NoError(t, err)
	require.NoError(t, repo.AddMember(ctx, group.ID, bob.ID))

	names, err := repo.ListMemberNames(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, names)

	found, err := repo.FindByID(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, "Flatmates", found.Name)
}

func TestCartRepository_AddOrIncrement(t *testing.T) {
	db := setupTestDB(t)
	seedGroups(t, db)
	repo := NewCartRepository(db)
	ctx := context.Background()

	created, err := repo.AddOrIncrement(ctx, models.CartItem{GroupID: 1, Name: "Milk", Category: "Dairy", Quantity: 2, Price: 40})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.AddOrIncrement(ctx, models.CartItem{GroupID: 1, Name: "Milk", Category: "Other", Quantity: 3})
	require.NoError(t, err)
	assert.False(t, created)

	created, err = repo.AddOrIncrement(ctx, models.CartItem{GroupID: 1, Name: "Milk", Quantity: 1, Price: 55})
	require.NoError(t, err)
	assert.False(t, created)

	items, err := repo.FindAll(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 6, items[0].Quantity)
	assert.Equal(t, 55.0, items[0].Price)
	assert.Equal(t, "Dairy", items[0].Category)
}

func TestCartRepository_UniquePerGroup(t *testing.T) {
	db := setupTestDB(t)
	seedGroups(t, db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.CartItem{GroupID: 1, Name: "Milk", Category: "Dairy", Quantity: 1}).Error)
	require.NoError(t, db.Create(&models.CartItem{GroupID: 2, Name: "Milk", Category: "Dairy", Quantity: 1}).Error)

	err := db.WithContext(ctx).Create(&models.CartItem{GroupID: 1, Name: "Milk", Category: "Dairy", Quantity: 1}).Error
	assert.True(t, isDuplicateKey(err))
}

func TestCartRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	seedGroups(t, db)
	repo := NewCartRepository(db)
	ctx := context.Background()
	for _, item := range []models.CartItem{
		{GroupID: 1, Name: "Milk", Category: "Dairy", Quantity: 1},
		{GroupID: 1, Name: "Bread", Category: "Bakery", Quantity: 1},
		{GroupID: 2, Name: "Milk", Category: "Dairy", Quantity: 1},
	} {
		_, err := repo.AddOrIncrement(ctx, item)
		require.NoError(t, err)
	}

	require.NoError(t, repo.DeleteByName(ctx, 1, "Milk"))
	require.NoError(t, repo.DeleteByName(ctx, 1, "Milk"))
	items, err := repo.FindAll(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Bread", items[0].Name)

	require.NoError(t, repo.DeleteAll(ctx, 1))
	items, err = repo.FindAll(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = repo.FindAll(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestTokenRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.AddBlacklistedToken(ctx, "forever", 0))
	require.NoError(t, repo.AddBlacklistedToken(ctx, "forever", 0))
	require.NoError(t, repo.AddBlacklistedToken(ctx, "expired", time.Now().Add(-time.Hour).Unix()))
	require.NoError(t, repo.AddBlacklistedToken(ctx, "valid", time.Now().Add(time.Hour).Unix()))

	blacklisted, err := repo.IsTokenBlacklisted(ctx, "forever")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	blacklisted, err = repo.IsTokenBlacklisted(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	removed, err := repo.CleanExpiredTokens(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	for token, want := range map[string]bool{"forever": true, "valid": true, "expired": false} {
		blacklisted, err := repo.IsTokenBlacklisted(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, want, blacklisted, token)
	}
}

func TestTokenRepository_Retention(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.AddBlacklistedToken(ctx, "stale", 0))
	require.NoError(t, repo.AddBlacklistedToken(ctx, "recent", 0))
	require.NoError(t, repo.AddBlacklistedToken(ctx, "expired", time.Now().Add(-time.Hour).Unix()))
	require.NoError(t, repo.AddBlacklistedToken(ctx, "valid", time.Now().Add(time.Hour).Unix()))
	require.NoError(t, db.Model(&models.BlacklistedToken{}).
		Where("token = ?", "stale").
		UpdateColumn("created_at", time.Now().Add(-48*time.Hour)).Error)

	removed, err := repo.CleanExpiredTokens(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	for token, want := range map[string]bool{"stale": false, "recent": true, "expired": false, "valid": true} {
		blacklisted, err := repo.IsTokenBlacklisted(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, want, blacklisted, token)
	}
}
