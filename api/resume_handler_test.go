package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadResume(t *testing.T, env *testEnv, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartBody(t, nil, "resume", filename, "application/pdf", data)
	req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+env.token(t))
	return env.do(req)
}

func TestUploadResumeReplacesPrevious(t *testing.T) {
	env := newTestEnv(t)

	rec := uploadResume(t, env, "first.pdf", []byte("first"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = uploadResume(t, env, "second.pdf", []byte("second"))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, env.resumes.resumes, 1)
	assert.Equal(t, "second.pdf", env.resumes.resumes[0].OriginalName)
}

func TestUploadResumeWithoutFileIsBadRequest(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, map[string]string{"note": "no file"}, "", "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+env.token(t))
	rec := env.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, env.resumes.resumes)
}

func TestResumeInfoOmitsBytes(t *testing.T) {
	env := newTestEnv(t)

	rec := uploadResume(t, env, "cv.pdf", []byte("pdf-payload"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(httptest.NewRequest(http.MethodGet, "/api/resume/info", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pdf-payload")

	var info map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "cv.pdf", info["originalName"])
	assert.Equal(t, "application/pdf", info["mimeType"])
	_, present := info["data"]
	assert.False(t, present)
}

func TestResumeInfoNotFoundWhenEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/resume/info", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDownloadResumeSetsAttachmentHeaders(t *testing.T) {
	env := newTestEnv(t)

	rec := uploadResume(t, env, "cv.pdf", []byte("pdf-payload"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(httptest.NewRequest(http.MethodGet, "/api/resume/download", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="cv.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, []byte("pdf-payload"), rec.Body.Bytes())
}

func TestDownloadResumeNotFoundWhenEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/resume/download", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteResumeIsIdempotent(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/resume", nil)
	req.Header.Set("Authorization", "Bearer "+env.token(t))
	rec := env.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
