package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renthub/internal/errors"
)

func recordedContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	return c, rec
}

func TestFail_DomainMessagePassesThrough(t *testing.T) {
	c, rec := recordedContext(t)

	require.NoError(t, fail(c, http.StatusOK, errors.ErrCarUnavailable))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Car is not available for the given date", resp["message"])
}

func TestFail_InternalErrorsAreMasked(t *testing.T) {
	c, rec := recordedContext(t)
	internal := fmt.Errorf("dial tcp 127.0.0.1:3306: connect: connection refused")

	require.NoError(t, fail(c, http.StatusInternalServerError, internal))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Something went wrong", resp["message"])
	assert.NotContains(t, rec.Body.String(), "dial tcp")
}

func TestFail_WrappedDomainErrorKeepsItsMessage(t *testing.T) {
	c, rec := recordedContext(t)
	wrapped := fmt.Errorf("create booking: %w", errors.ErrCarUnavailable)

	require.NoError(t, fail(c, http.StatusOK, wrapped))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "create booking: Car is not available for the given date", resp["message"])
}

func TestOk_MergesPayloadIntoEnvelope(t *testing.T) {
	c, rec := recordedContext(t)

	require.NoError(t, ok(c, echo.Map{"message": "Car added successfully"}))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Car added successfully", resp["message"])
}
