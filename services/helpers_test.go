package services

import (
	"context"
	"testing"

	"gin-grocery/infra"
	"gin-grocery/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type fixture struct {
	db     *gorm.DB
	auth   IAuthService
	groups IGroupService
	cart   ICartService
}

func newTestDB(t *testing.T) *gorm.DB {
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

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	authRepository := repositories.NewAuthRepository(db)
	return &fixture{
		db:     db,
		auth:   NewAuthService(authRepository, repositories.NewTokenRepository(db), testSecret, 0),
		groups: NewGroupService(repositories.NewGroupRepository(db), authRepository),
		cart:   NewCartService(repositories.NewCartRepository(db), authRepository),
	}
}

func (f *fixture) signup(t *testing.T, email, username string) {
	t.Helper()
	require.NoError(t, f.auth.Signup(context.Background(), email, "password", username))
}

// grouped は email のユーザーを作成し、groupName のグループに所属させる
func (f *fixture) grouped(t *testing.T, email, username, groupName string) {
	t.Helper()
	f.signup(t, email, username)

	ctx := context.Background()
	if _, err := f.groups.JoinGroup(ctx, groupName, email); err != nil {
		_, err = f.groups.CreateGroup(ctx, groupName, email)
		require.NoError(t, err)
	}
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}
