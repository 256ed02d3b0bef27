package handlers

import (
	"bytes"
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

func TestInquiryHandler_CreateInquiry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		h := NewInquiryHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "buyer-1", "prop-1", "Is this property still available for viewing this weekend?").
			Return(entities.Inquiry{
				ID:         "inq-1",
				PropertyID: "prop-1",
				SenderID:   "buyer-1",
				ReceiverID: "owner-1",
				Status:     entities.InquiryStatusPending,
			}, nil)

		r := gin.New()
		r.POST("/api/properties/:id/inquiries", asUser("buyer-1", "buyer"), h.CreateInquiry)

		body := `{"message":"Is this property still available for viewing this weekend?"}`
		req := httptest.NewRequest(http.MethodPost, "/api/properties/prop-1/inquiries", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"status":"pending"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("message too short", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		h := NewInquiryHandler(uc)

		r := gin.New()
		r.POST("/api/properties/:id/inquiries", asUser("buyer-1", "buyer"), h.CreateInquiry)

		req := httptest.NewRequest(http.MethodPost, "/api/properties/prop-1/inquiries", bytes.NewBufferString(`{"message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("own listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		h := NewInquiryHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "owner-1", "prop-1", gomock.Any()).
			Return(entities.Inquiry{}, usecase.ErrInquiryToOwnListing)

		r := gin.New()
		r.POST("/api/properties/:id/inquiries", asUser("owner-1", "owner"), h.CreateInquiry)

		body := `{"message":"Checking in on my own beautiful listing today."}`
		req := httptest.NewRequest(http.MethodPost, "/api/properties/prop-1/inquiries", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("hidden listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		h := NewInquiryHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "buyer-1", "prop-9", gomock.Any()).
			Return(entities.Inquiry{}, usecase.ErrPropertyNotFound)

		r := gin.New()
		r.POST("/api/properties/:id/inquiries", asUser("buyer-1", "buyer"), h.CreateInquiry)

		body := `{"message":"Is this delisted property still on the market?"}`
		req := httptest.NewRequest(http.MethodPost, "/api/properties/prop-9/inquiries", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInquiryHandler_ListReceivedInquiries(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInquiryUseCase(ctrl)
	h := NewInquiryHandler(uc)

	uc.EXPECT().ListReceived(gomock.Any(), "owner-1").
		Return([]entities.Inquiry{{ID: "inq-2"}, {ID: "inq-1"}}, nil)

	r := gin.New()
	r.GET("/api/inquiries", asUser("owner-1", "owner"), h.ListReceivedInquiries)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/inquiries", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "inq-2") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestInquiryHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("respond", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		h := NewInquiryHandler(uc)

		uc.EXPECT().Respond(gomock.Any(), "owner-1", "inq-1").
			Return(entities.Inquiry{ID: "inq-1", Status: entities.InquiryStatusResponded}, nil)

		r := gin.New()
		r.PATCH("/api/inquiries/:id/respond", asUser("owner-1", "owner"), h.RespondInquiry)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/inquiries/inq-1/respond", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"status":"responded"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not the receiver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		h := NewInquiryHandler(uc)

		uc.EXPECT().Respond(gomock.Any(), "other", "inq-1").
			Return(entities.Inquiry{}, usecase.ErrNotInquiryReceiver)

		r := gin.New()
		r.PATCH("/api/inquiries/:id/respond", asUser("other", "owner"), h.RespondInquiry)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/inquiries/inq-1/respond", nil))

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("close already closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		h := NewInquiryHandler(uc)

		uc.EXPECT().Close(gomock.Any(), "owner-1", "inq-1").
			Return(entities.Inquiry{}, usecase.ErrInvalidTransition)

		r := gin.New()
		r.PATCH("/api/inquiries/:id/close", asUser("owner-1", "owner"), h.CloseInquiry)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/inquiries/inq-1/close", nil))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
