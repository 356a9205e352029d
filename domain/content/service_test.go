package content

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

func testContentData(now time.Time) ContentData {
	return ContentData{
		Title:      "My Post",
		Slug:       "my-post",
		Body:       testBody,
		BodyFormat: BodyFormat,
		Type:       TypePost,
		Status:     StatusDraft,
		Visibility: VisibilityPublic,
		AuthorID:   "author-1",
		UpdatedAt:  now,
	}
}

func TestCreateContent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("returns generated id on success", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("INSERT INTO contents").
			WillReturnResult(sqlmock.NewResult(0, 1))

		id, err := CreateContent(db, testContentData(now))
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate slug maps to ErrDuplicateSlug", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("INSERT INTO contents").
			WillReturnError(&mysql.MySQLError{Number: 1062})

		_, err := CreateContent(db, testContentData(now))
		assert.ErrorIs(t, err, ErrDuplicateSlug)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("INSERT INTO contents").
			WillReturnError(sql.ErrConnDone)

		_, err := CreateContent(db, testContentData(now))
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestUpdateContent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("missing id is a no-op, not an error", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("UPDATE contents").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := UpdateContent(db, "no-such-id", testContentData(now))
		assert.NoError(t, err)
	})

	t.Run("duplicate slug maps to ErrDuplicateSlug", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("UPDATE contents").
			WillReturnError(&mysql.MySQLError{Number: 1062})

		err := UpdateContent(db, "content-1", testContentData(now))
		assert.ErrorIs(t, err, ErrDuplicateSlug)
	})
}

func TestUpdateContentStatusByID(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("publishing stamps published_at", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("UPDATE contents SET status = \\?, published_at = \\?").
			WithArgs(StatusPublished, now, "content-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := UpdateContentStatusByID(db, "content-1", StatusPublished, now)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other statuses leave published_at alone", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("UPDATE contents SET status = \\? WHERE").
			WithArgs(StatusArchived, "content-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := UpdateContentStatusByID(db, "content-1", StatusArchived, now)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBulkUpdateContentStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty id list short-circuits", func(t *testing.T) {
		db, _ := newMockDB(t)

		updated, err := BulkUpdateContentStatus(db, nil, StatusDraft, now)
		require.NoError(t, err)
		assert.Zero(t, updated)
	})

	t.Run("publishing stamps the batch with one timestamp", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("UPDATE contents SET status = \\?, published_at = \\?").
			WithArgs(StatusPublished, now, "a", "b").
			WillReturnResult(sqlmock.NewResult(0, 2))

		updated, err := BulkUpdateContentStatus(db, []string{"a", "b"}, StatusPublished, now)
		require.NoError(t, err)
		assert.Equal(t, int64(2), updated)
	})
}

func TestBulkDeleteContentsByIDs(t *testing.T) {
	t.Run("empty id list short-circuits", func(t *testing.T) {
		db, _ := newMockDB(t)

		deleted, err := BulkDeleteContentsByIDs(db, nil)
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})

	t.Run("reports rows affected", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("DELETE FROM contents WHERE id IN").
			WithArgs("a", "b", "c").
			WillReturnResult(sqlmock.NewResult(0, 3))

		deleted, err := BulkDeleteContentsByIDs(db, []string{"a", "b", "c"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
	})
}

func TestSyncContentTags(t *testing.T) {
	t.Run("clears then inserts the new set", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("DELETE FROM content_tags WHERE content_id = \\?").
			WithArgs("content-1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("INSERT INTO content_tags").
			WithArgs("content-1", "tag-1", "content-1", "tag-2").
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := SyncContentTags(db, "content-1", []string{"tag-1", "tag-2"})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty set only clears", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("DELETE FROM content_tags WHERE content_id = \\?").
			WithArgs("content-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := SyncContentTags(db, "content-1", nil)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete failure aborts before insert", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("DELETE FROM content_tags").
			WillReturnError(sql.ErrConnDone)

		err := SyncContentTags(db, "content-1", []string{"tag-1"})
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestUpsertSeoMeta(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("all-empty input stores NULLs", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("INSERT INTO seo_meta").
			WithArgs("content-1", nil, nil, nil, nil, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := UpsertSeoMeta(db, "content-1", SeoInput{}, now)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("writes via upsert keyed on content_id", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("INSERT INTO seo_meta").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := UpsertSeoMeta(db, "content-1", SeoInput{MetaTitle: "Custom Title"}, now)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
