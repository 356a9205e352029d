package settings

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

func TestGetSettings(t *testing.T) {
	t.Run("no stored rows yields the defaults", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery("SELECT `key`, `value` FROM settings").
			WillReturnRows(sqlmock.NewRows([]string{"key", "value"}))

		s, err := GetSettings(db)
		require.NoError(t, err)
		assert.Equal(t, DefaultSettings(), s)
	})

	t.Run("stored values merge over defaults", func(t *testing.T) {
		db, mock := newMockDB(t)

		rows := sqlmock.NewRows([]string{"key", "value"}).
			AddRow("site_name", []byte(`"Acme Engineering"`)).
			AddRow("posts_per_page", []byte(`25`)).
			AddRow("comments_enabled", []byte(`true`))
		mock.ExpectQuery("SELECT `key`, `value` FROM settings").
			WillReturnRows(rows)

		s, err := GetSettings(db)
		require.NoError(t, err)
		assert.Equal(t, "Acme Engineering", s.SiteName)
		assert.Equal(t, 25, s.PostsPerPage)
		assert.True(t, s.CommentsEnabled)
		// untouched keys keep their defaults
		assert.Equal(t, "A blog built with OpenDraft", s.SiteDescription)
		assert.True(t, s.CommentsModeration)
	})

	t.Run("malformed value keeps the default for that key", func(t *testing.T) {
		db, mock := newMockDB(t)

		rows := sqlmock.NewRows([]string{"key", "value"}).
			AddRow("posts_per_page", []byte(`"not-a-number"`)).
			AddRow("site_name", []byte(`"Acme"`))
		mock.ExpectQuery("SELECT `key`, `value` FROM settings").
			WillReturnRows(rows)

		s, err := GetSettings(db)
		require.NoError(t, err)
		assert.Equal(t, 10, s.PostsPerPage)
		assert.Equal(t, "Acme", s.SiteName)
	})

	t.Run("read failure falls back to defaults with the error", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery("SELECT `key`, `value` FROM settings").
			WillReturnError(sql.ErrConnDone)

		s, err := GetSettings(db)
		assert.Error(t, err)
		assert.Equal(t, DefaultSettings(), s)
	})
}

func TestUpdateSettings(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("upserts every key", func(t *testing.T) {
		db, mock := newMockDB(t)

		for range settingKeys {
			mock.ExpectExec("INSERT INTO settings").
				WillReturnResult(sqlmock.NewResult(0, 1))
		}

		failed := UpdateSettings(db, DefaultSettings(), now)
		assert.Empty(t, failed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("collects failed keys and keeps going", func(t *testing.T) {
		db, mock := newMockDB(t)

		// first key fails, the rest succeed
		mock.ExpectExec("INSERT INTO settings").
			WillReturnError(sql.ErrConnDone)
		for i := 1; i < len(settingKeys); i++ {
			mock.ExpectExec("INSERT INTO settings").
				WillReturnResult(sqlmock.NewResult(0, 1))
		}

		failed := UpdateSettings(db, DefaultSettings(), now)
		assert.Equal(t, []string{"site_name"}, failed)
	})
}
