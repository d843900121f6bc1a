package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"concord/apperrors"
	"concord/models"
)

type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) List(ctx context.Context, channelID string) ([]models.Message, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageService) Create(ctx context.Context, channelID, serverID string, input models.CreateMessageInput) (models.Message, error) {
	args := m.Called(ctx, channelID, serverID, input)
	return args.Get(0).(models.Message), args.Error(1)
}

func (m *MockMessageService) Delete(ctx context.Context, channelID, messageID, authorID, serverID string) error {
	args := m.Called(ctx, channelID, messageID, authorID, serverID)
	return args.Error(0)
}

func setupMessageTestRouter() (*gin.Engine, *MockMessageService) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockMessageService)
	SetMessageService(mockService)

	router := gin.New()
	router.GET("/channels/:channelId/messages", GetMessages)
	router.POST("/channels/:channelId/messages", CreateMessage)
	router.DELETE("/channels/:channelId/messages/:messageId", DeleteMessage)
	return router, mockService
}

func deleteJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodDelete, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateMessageReturns201(t *testing.T) {
	router, mockService := setupMessageTestRouter()

	input := models.CreateMessageInput{AuthorID: "u1", AuthorName: "alice", Content: "hello"}
	created := models.Message{ID: "m1", ChannelID: "ch1", AuthorID: "u1", AuthorName: "alice", Content: "hello"}
	mockService.On("Create", mock.Anything, "ch1", "s1", input).Return(created, nil)

	w := postJSON(router, "/channels/ch1/messages", gin.H{
		"authorId":   "u1",
		"authorName": "alice",
		"content":    "hello",
		"serverId":   "s1",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestCreateMessageRequiresServerID(t *testing.T) {
	router, _ := setupMessageTestRouter()

	w := postJSON(router, "/channels/ch1/messages", gin.H{
		"authorId":   "u1",
		"authorName": "alice",
		"content":    "hello",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteMessageWrongAuthorMapsTo403(t *testing.T) {
	router, mockService := setupMessageTestRouter()

	mockService.On("Delete", mock.Anything, "ch1", "m1", "u2", "s1").
		Return(apperrors.Unauthorized("Unauthorized: you can only delete your own messages"))

	w := deleteJSON(router, "/channels/ch1/messages/m1", gin.H{"authorId": "u2", "serverId": "s1"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"Forbidden"`)
	assert.Contains(t, w.Body.String(), "Unauthorized: you can only delete your own messages")
}

func TestDeleteMessageNotFoundMapsTo404(t *testing.T) {
	router, mockService := setupMessageTestRouter()

	mockService.On("Delete", mock.Anything, "ch1", "missing", "u1", "s1").
		Return(apperrors.NotFound("Message not found"))

	w := deleteJSON(router, "/channels/ch1/messages/missing", gin.H{"authorId": "u1", "serverId": "s1"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMessageSuccess(t *testing.T) {
	router, mockService := setupMessageTestRouter()

	mockService.On("Delete", mock.Anything, "ch1", "m1", "u1", "s1").Return(nil)

	w := deleteJSON(router, "/channels/ch1/messages/m1", gin.H{"authorId": "u1", "serverId": "s1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Message deleted successfully")
}
