package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/handler"
	"github.com/Astemirdum/lending-service/internal/model"
	"github.com/Astemirdum/lending-service/pkg/auth"
	"github.com/Astemirdum/lending-service/pkg/validate"

	service_mocks "github.com/Astemirdum/lending-service/internal/handler/mocks"
)

func TestHandler_ItemAvailability(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		query        string
		response     response
		wantErr      bool
	}{
		{
			name: "ok. available",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					IsAvailable(gomock.Any(), int64(1), testStart, testDue, 2, "").
					Return(true)
			},
			query: "?start=2025-10-01T10:00:00Z&end=2025-10-08T10:00:00Z&quantity=2",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"itemId":1,"startDate":"2025-10-01T10:00:00Z","endDate":"2025-10-08T10:00:00Z","quantity":2,"available":true}`,
			},
			wantErr: false,
		},
		{
			name: "ok. not available",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					IsAvailable(gomock.Any(), int64(1), testStart, testDue, 5, "").
					Return(false)
			},
			query: "?start=2025-10-01T10:00:00Z&end=2025-10-08T10:00:00Z&quantity=5",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"itemId":1,"startDate":"2025-10-01T10:00:00Z","endDate":"2025-10-08T10:00:00Z","quantity":5,"available":false}`,
			},
			wantErr: false,
		},
		{
			name:         "err. non positive quantity",
			mockBehavior: func(r *service_mocks.MockLendingService) {},
			query:        "?start=2025-10-01T10:00:00Z&end=2025-10-08T10:00:00Z&quantity=0",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid quantity"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. invalid start",
			mockBehavior: func(r *service_mocks.MockLendingService) {},
			query:        "?start=yesterday&end=2025-10-08T10:00:00Z&quantity=1",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid start"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLendingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/items/:id/availability", h.ItemAvailability)

			r := httptest.NewRequest(http.MethodGet, "/items/1/availability"+tt.query, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r = r.WithContext(auth.SetAuthContext(r.Context(), "alice", auth.RoleUser))
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ListItems(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		query        string
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					ListItems(gomock.Any(), true, 1, 10).
					Return(model.ListItems{
						Paging: model.Paging{Page: 1, PageSize: 10, TotalElements: 0},
						Items:  []model.Item{},
					}, nil)
			},
			query: "?page=1&size=10&showAll=true",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"page":1,"pageSize":10,"totalElements":0,"items":[]}`,
			},
			wantErr: false,
		},
		{
			name:         "err. page is invalid",
			mockBehavior: func(r *service_mocks.MockLendingService) {},
			query:        "?page=abc",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"page is invalid"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. showAll is invalid",
			mockBehavior: func(r *service_mocks.MockLendingService) {},
			query:        "?showAll=maybe",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"showAll is invalid"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLendingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/items", h.ListItems)

			r := httptest.NewRequest(http.MethodGet, "/items"+tt.query, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r = r.WithContext(auth.SetAuthContext(r.Context(), "alice", auth.RoleUser))
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateCategory(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService)

	createReq := model.CreateCategoryRequest{Name: "Cameras"}

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					CreateCategory(gomock.Any(), createReq).
					Return(model.Category{
						ID:           1,
						Name:         "Cameras",
						CategoryCode: "CAT-0001",
						CreatedAt:    testCreated,
						UpdatedAt:    testCreated,
					}, nil)
			},
			body: `{"name":"Cameras"}`,
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"name":"Cameras","categoryCode":"CAT-0001","createdAt":"2025-09-20T12:00:00Z","updatedAt":"2025-09-20T12:00:00Z"}`,
			},
			wantErr: false,
		},
		{
			name: "err. duplicate name",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					CreateCategory(gomock.Any(), createReq).
					Return(model.Category{}, errs.ErrAlreadyExists)
			},
			body: `{"name":"Cameras"}`,
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"already exists"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. name required",
			mockBehavior: func(r *service_mocks.MockLendingService) {},
			body:         `{}`,
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLendingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/categories", h.CreateCategory)

			r := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r = r.WithContext(auth.SetAuthContext(r.Context(), "bob", auth.RoleAdmin))
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_DeleteCategory(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		id           string
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					DeleteCategory(gomock.Any(), int64(1)).
					Return(nil)
			},
			id: "1",
			response: response{
				expectedCode: http.StatusNoContent,
				expectedBody: "",
			},
			wantErr: false,
		},
		{
			name: "err. category has items",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					DeleteCategory(gomock.Any(), int64(1)).
					Return(errs.ErrInUse)
			},
			id: "1",
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"category has items"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. invalid id",
			mockBehavior: func(r *service_mocks.MockLendingService) {},
			id:           "zero",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid id"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLendingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.DELETE("/categories/:id", h.DeleteCategory)

			r := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/categories/%s", tt.id), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r = r.WithContext(auth.SetAuthContext(r.Context(), "bob", auth.RoleAdmin))
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
