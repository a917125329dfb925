package probe_capacity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	probeCapacity "github.com/m04kA/SMC-PhotoStudioService/internal/usecase/probe_capacity"
)

type fakeUseCase struct {
	resp *probeCapacity.Response
	err  error

	lastReq *probeCapacity.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *probeCapacity.Request) (*probeCapacity.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/capacity", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Allowed(t *testing.T) {
	uc := &fakeUseCase{resp: &probeCapacity.Response{Allowed: true}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, `{"startAt":"2026-09-15T10:00:00+04:00","durationMinutes":90}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ProbeCapacityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Allowed)
	assert.Nil(t, resp.Reason)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, 90, uc.lastReq.DurationMinutes)
	assert.Equal(t, 10, uc.lastReq.StartAt.Hour())
}

func TestHandle_DeniedWithReason(t *testing.T) {
	reason := "На выбранное время нет свободных мест"
	uc := &fakeUseCase{resp: &probeCapacity.Response{Allowed: false, Reason: &reason}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, `{"startAt":"2026-09-15T10:00:00+04:00","durationMinutes":90}`)

	// Отказ по вместимости отдается как 200, а не ошибка
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ProbeCapacityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Allowed)
	require.NotNil(t, resp.Reason)
	assert.Equal(t, reason, *resp.Reason)
}

func TestHandle_InvalidStartAt(t *testing.T) {
	uc := &fakeUseCase{resp: &probeCapacity.Response{Allowed: true}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, `{"startAt":"15.09.2026 10:00","durationMinutes":90}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.lastReq)
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{resp: &probeCapacity.Response{Allowed: true}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDuration(t *testing.T) {
	uc := &fakeUseCase{err: probeCapacity.ErrInvalidInput}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, `{"startAt":"2026-09-15T10:00:00+04:00","durationMinutes":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_StorageFailure(t *testing.T) {
	uc := &fakeUseCase{err: probeCapacity.ErrInternal}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, `{"startAt":"2026-09-15T10:00:00+04:00","durationMinutes":90}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
