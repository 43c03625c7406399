package utils_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/skyfarer/flightbook/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testResponse struct {
	Name  string `json:"name" xml:"name"`
	Value int    `json:"value" xml:"value"`
}

func TestJsonDecodeBody(t *testing.T) {
	t.Run("valid json", func(t *testing.T) {
		body := bytes.NewBufferString(`{"name":"test","value":123}`)
		req := httptest.NewRequest(http.MethodPost, "/", body)

		var got testResponse
		require.NoError(t, utils.JsonDecodeBody(req, &got))
		assert.Equal(t, testResponse{Name: "test", Value: 123}, got)
	})

	t.Run("invalid json", func(t *testing.T) {
		body := bytes.NewBufferString(`{"name":`)
		req := httptest.NewRequest(http.MethodPost, "/", body)

		var got testResponse
		assert.Error(t, utils.JsonDecodeBody(req, &got))
	})
}

func TestRenderResponse(t *testing.T) {
	res := testResponse{Name: "test", Value: 42}

	t.Run("defaults to json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		utils.RenderResponse(req, rr, http.StatusOK, res)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		var got testResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, res, got)
	})

	t.Run("renders xml when requested", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept", "application/xml")
		rr := httptest.NewRecorder()

		utils.RenderResponse(req, rr, http.StatusOK, res)

		assert.Equal(t, "application/xml", rr.Header().Get("Content-Type"))
		assert.Equal(t,
			`<response><data><name>test</name><value>42</value></data></response>`,
			rr.Body.String(),
		)
	})

	t.Run("wraps api errors in the xml error element", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept", "application/xml")
		rr := httptest.NewRecorder()

		ae := utils.NewNotFound("Booking not found")
		utils.RenderResponse(req, rr, ae.StatusCode, ae)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t,
			`<response><error>Booking not found</error></response>`,
			rr.Body.String(),
		)
	})

	t.Run("renders api errors with the error field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		ae := utils.NewNotFound("Fare not found")
		utils.RenderResponse(req, rr, ae.StatusCode, ae)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.True(t, strings.Contains(rr.Body.String(), "Fare not found"))
	})

	t.Run("picks a supported type from a weighted accept header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept", "text/html, application/xml;q=0.9")
		rr := httptest.NewRecorder()

		utils.RenderResponse(req, rr, http.StatusOK, res)

		assert.Equal(t, "application/xml", rr.Header().Get("Content-Type"))
	})
}

func TestAllowedContentTypes(t *testing.T) {
	handler := utils.AllowedContentTypes(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, "application/json")

	t.Run("passes allowed type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("rejects other types", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Content-Type", "text/plain")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
	})
}

func TestApiErrorConstructors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, utils.NewBadRequest("x").StatusCode)
	assert.Equal(t, http.StatusNotFound, utils.NewNotFound("x").StatusCode)
	assert.Equal(t, http.StatusInternalServerError, utils.NewInternalServerError("x").StatusCode)

	ae := utils.NewBadRequest("boom")
	assert.Equal(t, "400: boom", ae.Error())
}
