package middlewares

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestTxMiddleware_Success(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		tx := GetTxFromContext(r.Context())
		assert.NotNil(t, tx)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	})

	handler := TxMiddleware(sqlxDB)(next)
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"ok"}`, rr.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_ErrorStatusRollsBack(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"dup"}`))
	})

	handler := TxMiddleware(sqlxDB)(next)
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"message":"dup"}`, rr.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_BeginError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

	handler := TxMiddleware(sqlxDB)(next)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestTxMiddleware_CommitError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(sql.ErrConnDone)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"saved"}`))
	})

	handler := TxMiddleware(sqlxDB)(next)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "saved")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_Panic(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	handler := TxMiddleware(sqlxDB)(next)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	assert.Panics(t, func() {
		handler.ServeHTTP(rr, req)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_AfterCommit(t *testing.T) {
	t.Run("runs after commit", func(t *testing.T) {
		sqlxDB, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		ran := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			AfterCommit(r.Context(), func() {
				ran = true
				assert.NoError(t, mock.ExpectationsWereMet(), "hook ran before commit")
			})
			assert.False(t, ran)
			w.WriteHeader(http.StatusCreated)
		})

		rr := httptest.NewRecorder()
		TxMiddleware(sqlxDB)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/", nil))

		assert.True(t, ran)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("dropped on rollback", func(t *testing.T) {
		sqlxDB, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		ran := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			AfterCommit(r.Context(), func() { ran = true })
			w.WriteHeader(http.StatusNotFound)
		})

		rr := httptest.NewRecorder()
		TxMiddleware(sqlxDB)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/", nil))

		assert.False(t, ran)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("dropped when commit fails", func(t *testing.T) {
		sqlxDB, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(sql.ErrConnDone)

		ran := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			AfterCommit(r.Context(), func() { ran = true })
		})

		rr := httptest.NewRecorder()
		TxMiddleware(sqlxDB)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/", nil))

		assert.False(t, ran)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("immediate without transaction", func(t *testing.T) {
		ran := false
		AfterCommit(context.Background(), func() { ran = true })
		assert.True(t, ran)
	})
}

func TestGetTxFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetTxFromContext(req.Context()))
}
