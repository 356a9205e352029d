package tag

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestCreateTag(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("returns the stored row", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("INSERT INTO tags").
			WillReturnResult(sqlmock.NewResult(0, 1))

		created, err := CreateTag(db, "Go", "go", now)
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Go", created.Name)
		assert.Equal(t, "go", created.Slug)
	})

	t.Run("duplicate slug maps to ErrDuplicateSlug", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("INSERT INTO tags").
			WillReturnError(&mysql.MySQLError{Number: 1062})

		_, err := CreateTag(db, "Go", "go", now)
		assert.ErrorIs(t, err, ErrDuplicateSlug)
	})
}

func TestDeleteTag(t *testing.T) {
	t.Run("clears associations before the tag row", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("DELETE FROM content_tags WHERE tag_id").
			WithArgs("tag-1").
			WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectExec("DELETE FROM tags WHERE id").
			WithArgs("tag-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := DeleteTag(db, "tag-1")
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("association delete failure aborts", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("DELETE FROM content_tags WHERE tag_id").
			WillReturnError(sql.ErrConnDone)

		err := DeleteTag(db, "tag-1")
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestFindTagBySlug(t *testing.T) {
	t.Run("miss returns nil without error", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery("SELECT .* FROM tags WHERE slug").
			WithArgs("no-such").
			WillReturnError(sql.ErrNoRows)

		found, err := FindTagBySlug(db, "no-such")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
