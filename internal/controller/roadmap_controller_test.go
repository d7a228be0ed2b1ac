package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"odyssey_backend/internal/config"
	"odyssey_backend/internal/model"
	"odyssey_backend/internal/service"
	"odyssey_backend/internal/util"
	"odyssey_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type memStore struct {
	slots map[string]string
}

func (m *memStore) Get(key string) (string, bool, error) {
	v, ok := m.slots[key]
	return v, ok, nil
}

func (m *memStore) Set(key, value string) error {
	m.slots[key] = value
	return nil
}

func (m *memStore) SetMany(slots map[string]string) error {
	for k, v := range slots {
		m.slots[k] = v
	}
	return nil
}

func (m *memStore) Delete(key string) error {
	delete(m.slots, key)
	return nil
}

type stubGenerator struct{}

func (stubGenerator) GenerateTasks(ctx context.Context, idea string) ([]model.ProjectTask, error) {
	return []model.ProjectTask{{ID: "t1", Title: "Task", Category: model.CategoryBackend, Difficulty: model.DifficultyMedium}}, nil
}

func (stubGenerator) GenerateBlueprint(ctx context.Context, idea string, style model.BlueprintStyle) ([]byte, error) {
	return []byte("png"), nil
}

type stubSynth struct{}

func (stubSynth) SynthesizeBriefing(ctx context.Context, text string) ([]byte, error) {
	return []byte{0, 0, 0, 0}, nil
}

func setupRoadmapRouter(t *testing.T) *gin.Engine {
	t.Helper()
	storage := service.NewStorageService(&config.Config{
		Storage: config.StorageConfig{Type: "local", LocalPath: t.TempDir()},
	})
	session := service.NewSessionService(&memStore{slots: map[string]string{}}, stubGenerator{}, storage)
	session.Hydrate()
	briefing := service.NewBriefingService(stubSynth{}, storage, session)

	ctrl := NewRoadmapController(session, briefing)
	router := gin.New()
	router.GET("/api/roadmap", ctrl.GetRoadmap)
	router.POST("/api/roadmap/modules/:id/days/:day/toggle", ctrl.ToggleDay)
	router.POST("/api/roadmap/modules/:id/days/:day/quiz", ctrl.SubmitQuiz)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetRoadmap(t *testing.T) {
	router := setupRoadmapRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/roadmap", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Modules       []model.RoadmapModule `json:"modules"`
			CompletedDays map[string][]int      `json:"completedDays"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Modules, 12)
	assert.Equal(t, []int{1}, resp.Data.CompletedDays["m0"])
}

func TestToggleDayEndpoint(t *testing.T) {
	router := setupRoadmapRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/roadmap/modules/m1/days/1/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Completed bool `json:"completed"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Completed)
}

// TestToggleDayErrors pins the HTTP status mapping for addressing failures.
func TestToggleDayErrors(t *testing.T) {
	router := setupRoadmapRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/roadmap/modules/m99/days/1/toggle", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/roadmap/modules/m1/days/999/toggle", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/roadmap/modules/m1/days/abc/toggle", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitQuizEndpoint(t *testing.T) {
	router := setupRoadmapRouter(t)

	// 答案下标 0 也必须能绑定
	w := doJSON(t, router, http.MethodPost, "/api/roadmap/modules/m0/days/2/quiz", gin.H{"answerIndex": 0})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data service.QuizResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Correct)
	assert.NotEmpty(t, resp.Data.Explanation)

	w = doJSON(t, router, http.MethodPost, "/api/roadmap/modules/m0/days/2/quiz", gin.H{"answerIndex": 3})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Correct)
	assert.Equal(t, 500, resp.Data.AwardedXP)

	// 重复提交同一天
	w = doJSON(t, router, http.MethodPost, "/api/roadmap/modules/m0/days/2/quiz", gin.H{"answerIndex": 3})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubmitQuizBadRequest(t *testing.T) {
	router := setupRoadmapRouter(t)

	// 缺失 answerIndex
	w := doJSON(t, router, http.MethodPost, "/api/roadmap/modules/m0/days/2/quiz", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 下标越界
	w = doJSON(t, router, http.MethodPost, "/api/roadmap/modules/m0/days/2/quiz", gin.H{"answerIndex": 42})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, fmt.Sprint(resp.Message), "out of range")
}
