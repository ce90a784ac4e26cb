package repository

import (
	"context"
	"regexp"
	"testing"

	"blogapp/internal/models"
	"blogapp/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestUserRepository_FindByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	tests := []struct {
		name          string
		userID        uint
		mockBehavior  func()
		expectedUser  *models.User
		expectedFound bool
	}{
		{
			name:   "Success",
			userID: 1,
			mockBehavior: func() {
				rows := sqlmock.NewRows([]string{"id", "name", "email"}).
					AddRow(1, "Alice", "alice@example.com")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 ORDER BY "users"."id" LIMIT $2`)).
					WithArgs(1, 1).
					WillReturnRows(rows)
			},
			expectedUser:  &models.User{ID: 1, Name: "Alice", Email: "alice@example.com"},
			expectedFound: true,
		},
		{
			name:   "Not Found",
			userID: 99,
			mockBehavior: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 ORDER BY "users"."id" LIMIT $2`)).
					WithArgs(99, 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockBehavior()
			user, found, err := repo.FindByID(ctx, tt.userID)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedUser != nil {
				require.NotNil(t, user)
				assert.Equal(t, tt.expectedUser.Name, user.Name)
				assert.Equal(t, tt.expectedUser.Email, user.Email)
			} else {
				assert.Nil(t, user)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.User{Name: "Alice", Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicateEmailSQLite(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Name: "Alice", Email: "dup@example.com", Password: "pw"}))
	err := repo.Create(ctx, &models.User{Name: "Alicia", Email: "dup@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestUserRepository_UpdateAndFindAll(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	testutil.CreateUser(t, db, "bob")

	alice.Name = "Alice Updated"
	alice.About = ""
	require.NoError(t, repo.Update(ctx, alice))

	got, found, err := repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Alice Updated", got.Name)
	assert.Empty(t, got.About)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, alice.ID, all[0].ID)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	testutil.CreateUser(t, db, "carol")
	testutil.CreateUser(t, db, "dave")

	users, total, err := repo.FindByEmail(ctx, "carol@example.com", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, "carol", users[0].Name)

	users, total, err = repo.FindByEmail(ctx, "carol@example.com", 10, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Empty(t, users)

	users, total, err = repo.FindByEmail(ctx, "nobody@example.com", 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, users)
}

func TestUserRepository_DeleteCascadesPostsAndComments(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	author := testutil.CreateUser(t, db, "erin")
	other := testutil.CreateUser(t, db, "frank")
	category := testutil.CreateCategory(t, db, "Travel")
	post := testutil.CreatePost(t, db, author, category, "Lisbon")
	testutil.CreateComment(t, db, post, "great trip")
	kept := testutil.CreatePost(t, db, other, category, "Porto")
	testutil.CreateComment(t, db, kept, "also great")

	require.NoError(t, repo.Delete(ctx, author.ID))

	_, found, err := repo.FindByID(ctx, author.ID)
	require.NoError(t, err)
	assert.False(t, found)

	var posts, comments int64
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)
	assert.Equal(t, int64(1), posts)
	assert.Equal(t, int64(1), comments)
}
