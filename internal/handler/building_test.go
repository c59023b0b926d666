package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/virelli/ArenaForge_Go/internal/account"
	"github.com/virelli/ArenaForge_Go/internal/domain"
	"github.com/virelli/ArenaForge_Go/internal/economy"
)

func TestHandleUpgradeBuilding(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockAccountService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: UpgradeBuildingRequest{PlayerID: "tg-1001", Building: "barracks"},
			setupMock: func(m *MockAccountService) {
				m.On("UpgradeBuilding", mock.Anything, "tg-1001", domain.BuildingBarracks).Return(&account.UpgradeOutcome{
					UpgradeResult: economy.UpgradeResult{Building: domain.BuildingBarracks, Level: 2, Cost: 1000},
					NewGold:       500,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"level":2`,
		},
		{
			name:           "Unknown building rejected",
			requestBody:    UpgradeBuildingRequest{PlayerID: "tg-1001", Building: "tavern"},
			setupMock:      func(m *MockAccountService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid building",
		},
		{
			name:        "Not enough gold",
			requestBody: UpgradeBuildingRequest{PlayerID: "tg-1001", Building: "arena"},
			setupMock: func(m *MockAccountService) {
				m.On("UpgradeBuilding", mock.Anything, "tg-1001", domain.BuildingArena).Return(nil, domain.ErrInsufficientGold)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNotEnoughGoldError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockAccountService{}
			tt.setupMock(mockSvc)

			handler := HandleUpgradeBuilding(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/building/upgrade", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}
