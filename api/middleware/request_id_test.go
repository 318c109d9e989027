package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/HasanBocek/KTUTennisCRM/pkg/logger"
)

func passThrough() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestRequestIDEchoesValidInboundID(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test"})
	handler := RequestID(logg)(passThrough())

	inbound := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, inbound)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, inbound, rec.Header().Get(requestIDHeader))
}

func TestRequestIDReplacesNonUUIDInboundID(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test"})
	handler := RequestID(logg)(passThrough())

	for _, inbound := range []string{"", "not-a-uuid", "1; DROP TABLE"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if inbound != "" {
			req.Header.Set(requestIDHeader, inbound)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		got := rec.Header().Get(requestIDHeader)
		require.NotEqual(t, inbound, got)
		_, err := uuid.Parse(got)
		require.NoError(t, err)
	}
}

func TestRecovererTurnsPanicIntoInternalError(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test"})
	handler := Recoverer(logg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panicky", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "boom")
}
