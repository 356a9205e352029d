package media

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestFindMediaWithFilters(t *testing.T) {
	columns := []string{
		"id", "filename", "original_name", "mime_type", "size", "url",
		"storage_path", "alt_text", "caption", "uploaded_by", "created_at",
		"uploader_name",
	}

	t.Run("defaults the window and computes total pages", func(t *testing.T) {
		db, mock := newMockDB(t)
		now := time.Now()

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM media").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(41))
		mock.ExpectQuery("SELECT m.id, m.filename").
			WithArgs(20, 0).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("m-1", "a.png", "photo.png", "image/png", 1024, "https://cdn/a.png",
					"uploads/u1/a.png", nil, nil, "u1", now, "Site Admin"))

		result, err := FindMediaWithFilters(db, MediaFilters{})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 20, result.Limit)
		assert.Equal(t, 41, result.Total)
		assert.Equal(t, 3, result.TotalPages)
		assert.Len(t, result.Data, 1)
	})

	t.Run("search and type narrow the query", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM media").
			WithArgs("%logo%", "%logo%", "image/%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("SELECT m.id, m.filename").
			WithArgs("%logo%", "%logo%", "image/%", 20, 0).
			WillReturnRows(sqlmock.NewRows(columns))

		result, err := FindMediaWithFilters(db, MediaFilters{Search: "logo", Type: "image"})
		require.NoError(t, err)
		assert.Empty(t, result.Data)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBulkDeleteMediaByIDs(t *testing.T) {
	t.Run("empty id list short-circuits", func(t *testing.T) {
		db, _ := newMockDB(t)

		deleted, err := BulkDeleteMediaByIDs(db, nil)
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})

	t.Run("reports rows affected", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("DELETE FROM media WHERE id IN").
			WithArgs("a", "b").
			WillReturnResult(sqlmock.NewResult(0, 2))

		deleted, err := BulkDeleteMediaByIDs(db, []string{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
	})
}

func TestFindMediaByID(t *testing.T) {
	t.Run("miss returns nil without error", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery("SELECT id, filename").
			WithArgs("no-such").
			WillReturnError(sql.ErrNoRows)

		item, err := FindMediaByID(db, "no-such")
		require.NoError(t, err)
		assert.Nil(t, item)
	})
}
