package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"unovation-backend/repositories"
	"unovation-backend/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newMockController wires a controller to a sqlmock-backed store. Queries
// without an expectation fail, which drives the handlers' error paths.
func newMockController(t *testing.T) (*Controller, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return New(repositories.NewStore(db), nil, nil), mock
}

func newContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	var raw []byte
	if body != nil {
		raw, _ = json.Marshal(body)
	}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestStoreFailuresAnswer500(t *testing.T) {
	utils.RegisterValidators()
	ctl, _ := newMockController(t)

	tests := []struct {
		name    string
		handler gin.HandlerFunc
		method  string
		body    interface{}
		params  gin.Params
	}{
		{name: "list clients", handler: ctl.GetClients, method: http.MethodGet},
		{name: "get client", handler: ctl.GetClient, method: http.MethodGet, params: gin.Params{{Key: "id", Value: "c-1"}}},
		{
			name:    "create client",
			handler: ctl.CreateClient,
			method:  http.MethodPost,
			body: map[string]interface{}{
				"name": "Acme", "phone": "+14155550100", "serviceNeeded": "SEO", "source": "Call",
			},
		},
		{name: "delete client", handler: ctl.DeleteClient, method: http.MethodDelete, params: gin.Params{{Key: "id", Value: "c-1"}}},
		{
			name:    "contact form",
			handler: ctl.SubmitContact,
			method:  http.MethodPost,
			body: map[string]interface{}{
				"name": "Sam", "email": "sam@example.com", "message": "hi", "page": "/contact",
			},
		},
		{name: "lead data", handler: ctl.GetLeadData, method: http.MethodGet},
		{name: "dashboard", handler: ctl.GetDashboard, method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext(tt.method, "/", tt.body)
			c.Params = tt.params

			tt.handler(c)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, utils.MsgInternalError, errorOf(t, w))
		})
	}
}

func TestHealth_Unavailable(t *testing.T) {
	ctl, mock := newMockController(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	c, w := newContext(http.MethodGet, "/health", nil)
	ctl.Health(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNilIfEmpty(t *testing.T) {
	blank := "  "
	value := "x"

	assert.Nil(t, nilIfEmpty(nil))
	assert.Nil(t, nilIfEmpty(&blank))
	assert.Equal(t, &value, nilIfEmpty(&value))
}
