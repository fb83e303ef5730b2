package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
	"github.com/sbilibin2017/gw-career-opportunities/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestApplyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, oppID := uuid.New(), uuid.New()

	tests := []struct {
		name         string
		param        string
		mockSetup    func(m *MockApplier)
		expectedCode int
		expectedMsg  string
	}{
		{
			name:  "success",
			param: oppID.String(),
			mockSetup: func(m *MockApplier) {
				m.EXPECT().Apply(gomock.Any(), userID, oppID).Return(&models.Application{
					ID:            uuid.New(),
					UserID:        userID,
					OpportunityID: oppID,
					Status:        models.ApplicationApplied,
				}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedMsg:  "Application submitted successfully",
		},
		{
			name:  "not active",
			param: oppID.String(),
			mockSetup: func(m *MockApplier) {
				m.EXPECT().Apply(gomock.Any(), userID, oppID).Return(nil, services.ErrOpportunityNotActive)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Opportunity not found or not active",
		},
		{
			name:  "duplicate",
			param: oppID.String(),
			mockSetup: func(m *MockApplier) {
				m.EXPECT().Apply(gomock.Any(), userID, oppID).Return(nil, services.ErrAlreadyApplied)
			},
			expectedCode: http.StatusConflict,
			expectedMsg:  "You have already applied to this opportunity",
		},
		{
			name:         "malformed id",
			param:        "not-a-uuid",
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid opportunity id",
		},
		{
			name:  "store failure",
			param: oppID.String(),
			mockSetup: func(m *MockApplier) {
				m.EXPECT().Apply(gomock.Any(), userID, oppID).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockApplier(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := withURLParam(withClaims(httptest.NewRequest(http.MethodPost, "/", nil), userID, models.RoleStudent), "opportunityId", tt.param)
			rr := httptest.NewRecorder()

			NewApplyHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedMsg, decodeBody(t, rr)["message"])
		})
	}
}

func TestListApplicationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockSvc := NewMockApplicationLister(ctrl)

	mockSvc.EXPECT().ListMine(gomock.Any(), userID).Return([]models.ApplicationSummary{
		{ID: uuid.New(), Status: models.ApplicationApplied, Title: "Backend Intern"},
	}, nil)

	req := withClaims(httptest.NewRequest(http.MethodGet, "/applications", nil), userID, models.RoleStudent)
	rr := httptest.NewRecorder()
	NewListApplicationsHandler(mockSvc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	apps := decodeBody(t, rr)["applications"].([]any)
	assert.Len(t, apps, 1)
	assert.Equal(t, "Backend Intern", apps[0].(map[string]any)["title"])
}

func TestUpdateApplicationStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, appID := uuid.New(), uuid.New()

	tests := []struct {
		name         string
		body         any
		mockSetup    func(m *MockApplicationStatusUpdater)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			body: map[string]string{"status": "withdrawn"},
			mockSetup: func(m *MockApplicationStatusUpdater) {
				m.EXPECT().UpdateStatus(gomock.Any(), userID, appID, models.ApplicationWithdrawn).
					Return(&models.Application{ID: appID, Status: models.ApplicationWithdrawn}, nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Status updated",
		},
		{
			name:         "missing status",
			body:         map[string]string{"status": " "},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Status is required",
		},
		{
			name:         "unknown status",
			body:         map[string]string{"status": "hired"},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid status",
		},
		{
			name:         "invalid json",
			body:         "{",
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid request body",
		},
		{
			name: "not the caller's application",
			body: map[string]string{"status": "SELECTED"},
			mockSetup: func(m *MockApplicationStatusUpdater) {
				m.EXPECT().UpdateStatus(gomock.Any(), userID, appID, models.ApplicationSelected).
					Return(nil, services.ErrApplicationNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Application not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockApplicationStatusUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := withURLParam(withClaims(newJSONRequest(t, http.MethodPatch, "/", tt.body), userID, models.RoleStudent), "applicationId", appID.String())
			rr := httptest.NewRecorder()

			NewUpdateApplicationStatusHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedMsg, decodeBody(t, rr)["message"])
		})
	}
}
