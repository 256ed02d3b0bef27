package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/x17green/realest-sub003/internal/adapter/http/handlers/mocks"
	"github.com/x17green/realest-sub003/internal/domain/entities"
	"github.com/x17green/realest-sub003/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_UpdatePropertyStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		props := mocks.NewMockIPropertyUseCase(ctrl)
		h := NewAdminHandler(props, mocks.NewMockIAnalyticsUseCase(ctrl))

		props.EXPECT().UpdateStatus(gomock.Any(), "admin-1", "prop-1", entities.PropertyStatusLive).
			Return(entities.Property{ID: "prop-1", Status: entities.PropertyStatusLive}, nil)

		r := gin.New()
		r.PATCH("/api/admin/properties/:id/status", asUser("admin-1", "admin"), h.UpdatePropertyStatus)

		req := httptest.NewRequest(http.MethodPatch, "/api/admin/properties/prop-1/status", bytes.NewBufferString(`{"status":"live"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"status":"live"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown status value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		props := mocks.NewMockIPropertyUseCase(ctrl)
		h := NewAdminHandler(props, mocks.NewMockIAnalyticsUseCase(ctrl))

		r := gin.New()
		r.PATCH("/api/admin/properties/:id/status", asUser("admin-1", "admin"), h.UpdatePropertyStatus)

		req := httptest.NewRequest(http.MethodPatch, "/api/admin/properties/prop-1/status", bytes.NewBufferString(`{"status":"archived"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("lost race returns 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		props := mocks.NewMockIPropertyUseCase(ctrl)
		h := NewAdminHandler(props, mocks.NewMockIAnalyticsUseCase(ctrl))

		props.EXPECT().UpdateStatus(gomock.Any(), "admin-1", "prop-1", entities.PropertyStatusLive).
			Return(entities.Property{}, usecase.ErrInvalidTransition)

		r := gin.New()
		r.PATCH("/api/admin/properties/:id/status", asUser("admin-1", "admin"), h.UpdatePropertyStatus)

		req := httptest.NewRequest(http.MethodPatch, "/api/admin/properties/prop-1/status", bytes.NewBufferString(`{"status":"live"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestAdminHandler_UpdatePropertyVerification(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	props := mocks.NewMockIPropertyUseCase(ctrl)
	h := NewAdminHandler(props, mocks.NewMockIAnalyticsUseCase(ctrl))

	props.EXPECT().UpdateVerification(gomock.Any(), "admin-1", "prop-1", entities.VerificationStatusVerified).
		Return(entities.Property{ID: "prop-1", Verification: entities.VerificationStatusVerified}, nil)

	r := gin.New()
	r.PATCH("/api/admin/properties/:id/verification", asUser("admin-1", "admin"), h.UpdatePropertyVerification)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/properties/prop-1/verification", bytes.NewBufferString(`{"status":"verified"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"verification":"verified"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAdminHandler_AnalyticsOverview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults to 30d without trends", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		analytics := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAdminHandler(mocks.NewMockIPropertyUseCase(ctrl), analytics)

		analytics.EXPECT().Overview(gomock.Any(), "30d", false).
			Return(usecase.AnalyticsOverview{
				Period: "30d",
				Users:  usecase.UserMetrics{Total: 12, ByType: map[string]int{"buyer": 8, "owner": 4}},
				Properties: usecase.PropertyMetrics{
					Total:            20,
					VerifiedCount:    10,
					VerificationRate: 0.5,
				},
				Summary: usecase.AnalyticsSummary{NewListings: 20, NewUsers: 12},
			}, nil)

		r := gin.New()
		r.GET("/api/admin/analytics/overview", asUser("admin-1", "admin"), h.AnalyticsOverview)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/analytics/overview", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			Period     string `json:"period"`
			Properties struct {
				VerificationRate float64 `json:"verification_rate"`
			} `json:"properties"`
			Trends []any `json:"trends"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if body.Period != "30d" || body.Properties.VerificationRate != 0.5 {
			t.Fatalf("unexpected body: %+v", body)
		}
		if body.Trends != nil {
			t.Fatalf("trends must be omitted when not requested")
		}
	})

	t.Run("trends requested", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		analytics := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAdminHandler(mocks.NewMockIPropertyUseCase(ctrl), analytics)

		analytics.EXPECT().Overview(gomock.Any(), "7d", true).
			Return(usecase.AnalyticsOverview{
				Period: "7d",
				Trends: []usecase.TrendPoint{{Date: "2026-08-22"}, {Date: "2026-08-23"}},
			}, nil)

		r := gin.New()
		r.GET("/api/admin/analytics/overview", asUser("admin-1", "admin"), h.AnalyticsOverview)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/analytics/overview?period=7d&include_trends=true", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "2026-08-22") {
			t.Fatalf("expected trend points, got %s", w.Body.String())
		}
	})

	t.Run("unknown period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		analytics := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAdminHandler(mocks.NewMockIPropertyUseCase(ctrl), analytics)

		analytics.EXPECT().Overview(gomock.Any(), "2w", false).
			Return(usecase.AnalyticsOverview{}, usecase.ErrInvalidPeriod)

		r := gin.New()
		r.GET("/api/admin/analytics/overview", asUser("admin-1", "admin"), h.AnalyticsOverview)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/analytics/overview?period=2w", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
