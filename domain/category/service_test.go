package category

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

func TestCreateCategory(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("returns generated id on success", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("INSERT INTO categories").
			WillReturnResult(sqlmock.NewResult(0, 1))

		id, err := CreateCategory(db, "Tutorials", "tutorials", nil, nil, now)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
	})

	t.Run("duplicate slug maps to ErrDuplicateSlug", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("INSERT INTO categories").
			WillReturnError(&mysql.MySQLError{Number: 1062})

		_, err := CreateCategory(db, "Tutorials", "tutorials", nil, nil, now)
		assert.ErrorIs(t, err, ErrDuplicateSlug)
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("blocked while content references it", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM contents WHERE category_id").
			WithArgs("cat-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		err := DeleteCategory(db, "cat-1")
		var contentErr *HasContentError
		require.ErrorAs(t, err, &contentErr)
		assert.Equal(t, 3, contentErr.Count)
		assert.Equal(t, "Cannot delete category with 3 content item(s)", err.Error())
	})

	t.Run("blocked while sub-categories exist", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM contents WHERE category_id").
			WithArgs("cat-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM categories WHERE parent_id").
			WithArgs("cat-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		err := DeleteCategory(db, "cat-1")
		var childErr *HasChildrenError
		require.ErrorAs(t, err, &childErr)
		assert.Equal(t, "Cannot delete category with 2 sub-categories", err.Error())
	})

	t.Run("deletes once both guards pass", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM contents WHERE category_id").
			WithArgs("cat-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM categories WHERE parent_id").
			WithArgs("cat-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec("DELETE FROM categories WHERE id").
			WithArgs("cat-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := DeleteCategory(db, "cat-1")
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindCategoryBySlug(t *testing.T) {
	t.Run("miss returns nil without error", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery("SELECT .* FROM categories WHERE slug").
			WithArgs("no-such").
			WillReturnError(sql.ErrNoRows)

		cat, err := FindCategoryBySlug(db, "no-such")
		require.NoError(t, err)
		assert.Nil(t, cat)
	})

	t.Run("hit returns the row", func(t *testing.T) {
		db, mock := newMockDB(t)
		now := time.Now()

		rows := sqlmock.NewRows([]string{"id", "name", "slug", "description", "parent_id", "created_at", "updated_at"}).
			AddRow("cat-1", "Tutorials", "tutorials", nil, nil, now, now)
		mock.ExpectQuery("SELECT .* FROM categories WHERE slug").
			WithArgs("tutorials").
			WillReturnRows(rows)

		cat, err := FindCategoryBySlug(db, "tutorials")
		require.NoError(t, err)
		require.NotNil(t, cat)
		assert.Equal(t, "Tutorials", cat.Name)
	})
}
