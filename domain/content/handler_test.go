package content

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"opendraft/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSaveRequest(t *testing.T, payload SaveContentRequest) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestSaveContentHandlerPathParamWins(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	config.DB = sqlx.NewDb(mockDB, "sqlmock")

	// The path id must drive an update even when the body omits its id.
	mock.ExpectExec("UPDATE contents").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM content_tags").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO seo_meta").
		WillReturnResult(sqlmock.NewResult(0, 1))

	e := echo.New()
	req := newSaveRequest(t, SaveContentRequest{
		Title: "My Post",
		Body:  string(testBody),
	})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "author-1")
	c.SetParamNames("id")
	c.SetParamValues("content-7")

	require.NoError(t, SaveContentHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var state FormState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.True(t, state.Success)
	assert.Equal(t, "content-7", state.ContentID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
