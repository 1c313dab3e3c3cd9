package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"proposal_forecasting/internal/adapter/http/handlers/mocks"
	"proposal_forecasting/internal/domain/entities"
	"proposal_forecasting/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newStageRouter(h *PipelineStageHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/pipeline/stages", h.ListStages)
	r.POST("/v1/pipeline/stages", h.CreateStage)
	r.POST("/v1/pipeline/stages/defaults", h.InitializeDefaultStages)
	r.PATCH("/v1/pipeline/stages/:id", h.UpdateStage)
	r.DELETE("/v1/pipeline/stages/:id", h.DeleteStage)
	return r
}

func doRequest(r http.Handler, method, path, userID, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(HeaderUserID, userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPipelineStageHandler_ListStages(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineStageUseCase(ctrl)

		w := doRequest(newStageRouter(NewPipelineStageHandler(uc)), http.MethodGet, "/v1/pipeline/stages", "", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineStageUseCase(ctrl)

		stages := entities.DefaultPipelineStages("u-1", time.Now().UTC())
		uc.EXPECT().ListStages(gomock.Any(), "u-1").Return(stages, nil)

		w := doRequest(newStageRouter(NewPipelineStageHandler(uc)), http.MethodGet, "/v1/pipeline/stages", "u-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 6 || body[0]["name"] != "Lead" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineStageUseCase(ctrl)

		uc.EXPECT().ListStages(gomock.Any(), "u-1").Return(nil, errors.New("db down"))

		w := doRequest(newStageRouter(NewPipelineStageHandler(uc)), http.MethodGet, "/v1/pipeline/stages", "u-1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestPipelineStageHandler_CreateStage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineStageUseCase(ctrl)

		w := doRequest(newStageRouter(NewPipelineStageHandler(uc)), http.MethodPost, "/v1/pipeline/stages", "u-1", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("probability out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineStageUseCase(ctrl)

		w := doRequest(newStageRouter(NewPipelineStageHandler(uc)), http.MethodPost, "/v1/pipeline/stages", "u-1", `{"name":"Demo","probability":120}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineStageUseCase(ctrl)

		uc.EXPECT().CreateStage(gomock.Any(), "u-1", usecase.CreatePipelineStageInput{Name: "  ", Probability: 10}).Return(entities.PipelineStage{}, usecase.ErrInvalidStageName)

		w := doRequest(newStageRouter(NewPipelineStageHandler(uc)), http.MethodPost, "/v1/pipeline/stages", "u-1", `{"name":"  ","probability":10}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineStageUseCase(ctrl)

		now := time.Now().UTC()
		uc.EXPECT().CreateStage(gomock.Any(), "u-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, in usecase.CreatePipelineStageInput) (entities.PipelineStage, error) {
				if in.Name != "Demo" || in.Probability != 0 || in.Order == nil || *in.Order != 2 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.PipelineStage{ID: "st-1", UserID: "u-1", Name: "Demo", Order: 2, CreatedAt: now, UpdatedAt: now}, nil
			})

		w := doRequest(newStageRouter(NewPipelineStageHandler(uc)), http.MethodPost, "/v1/pipeline/stages", "u-1", `{"name":"Demo","order":2,"probability":0}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestPipelineStageHandler_UpdateStage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineStageUseCase(ctrl)

		uc.EXPECT().UpdateStage(gomock.Any(), "u-1", "st-9", gomock.Any()).Return(entities.PipelineStage{}, usecase.ErrPipelineStageNotFound)

		w := doRequest(newStageRouter(NewPipelineStageHandler(uc)), http.MethodPatch, "/v1/pipeline/stages/st-9", "u-1", `{"probability":80}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineStageUseCase(ctrl)

		prob := 80
		uc.EXPECT().UpdateStage(gomock.Any(), "u-1", "st-1", entities.PipelineStageUpdate{Probability: &prob}).
			Return(entities.PipelineStage{ID: "st-1", UserID: "u-1", Name: "Lead", Probability: 80}, nil)

		w := doRequest(newStageRouter(NewPipelineStageHandler(uc)), http.MethodPatch, "/v1/pipeline/stages/st-1", "u-1", `{"probability":80}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["probability"] != float64(80) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPipelineStageHandler_DeleteStage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPipelineStageUseCase(ctrl)

	uc.EXPECT().DeleteStage(gomock.Any(), "u-1", "st-1").Return(nil)
	uc.EXPECT().DeleteStage(gomock.Any(), "u-2", "st-1").Return(usecase.ErrPipelineStageNotFound)

	r := newStageRouter(NewPipelineStageHandler(uc))
	if w := doRequest(r, http.MethodDelete, "/v1/pipeline/stages/st-1", "u-1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodDelete, "/v1/pipeline/stages/st-1", "u-2", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPipelineStageHandler_InitializeDefaultStages(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPipelineStageUseCase(ctrl)

	uc.EXPECT().InitializeDefaultStages(gomock.Any(), "u-1").Return(entities.DefaultPipelineStages("u-1", time.Now().UTC()), nil)

	w := doRequest(newStageRouter(NewPipelineStageHandler(uc)), http.MethodPost, "/v1/pipeline/stages/defaults", "u-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
