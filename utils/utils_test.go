package utils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{"+919876543210", "+91 98765 43210", "(415) 555-0100", "14155550100"}
	for _, p := range valid {
		assert.True(t, ValidatePhone(p), p)
	}
	invalid := []string{"", "abc", "+0123", "+1234567890123456", "0"}
	for _, p := range invalid {
		assert.False(t, ValidatePhone(p), p)
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var in struct {
		A Date  `json:"a"`
		B Date  `json:"b"`
		C *Date `json:"c"`
		D *Date `json:"d"`
		E Date  `json:"e"`
	}
	err := json.Unmarshal([]byte(`{"a":"2026-03-10","b":"2026-03-10T14:30:00+05:30","c":"","d":null,"e":"2026-03-10T09:15"}`), &in)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), in.A.Time)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), in.B.UTC())
	require.NotNil(t, in.C)
	assert.Nil(t, in.C.TimePtr())
	assert.Nil(t, in.D)
	assert.Nil(t, in.D.TimePtr())
	assert.Equal(t, 15, in.E.Minute())

	var bad struct {
		A Date `json:"a"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"a":"10/03/2026"}`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`{"a":20260310}`), &bad))
}

func TestDayBounds(t *testing.T) {
	ts := time.Date(2026, 3, 10, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), BeginningOfDay(ts))
	assert.True(t, EndOfDay(ts).Before(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)))
	assert.True(t, EndOfDay(ts).After(time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)))
}

func TestCustomValidators(t *testing.T) {
	v := validator.New()
	RegisterOn(v)

	type input struct {
		Phone string  `validate:"required,phone"`
		Email *string `validate:"omitempty,optemail"`
		When  Date    `validate:"required"`
	}

	email := func(s string) *string { return &s }
	when, err := ParseDate("2026-03-10")
	require.NoError(t, err)

	assert.NoError(t, v.Struct(input{Phone: "+14155550100", When: when}))
	assert.NoError(t, v.Struct(input{Phone: "+14155550100", Email: email(""), When: when}))
	assert.NoError(t, v.Struct(input{Phone: "+14155550100", Email: email("a@b.co"), When: when}))

	err = v.Struct(input{Phone: "nope", Email: email("bad"), When: when})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"Phone:phone", "Email:optemail"}, FieldErrors(err))

	err = v.Struct(input{Phone: "+14155550100"})
	require.Error(t, err)
	assert.Equal(t, []string{"When:required"}, FieldErrors(err))
}

func TestTokenRoundTrip(t *testing.T) {
	expires := time.Now().Add(time.Hour)
	token, err := GenerateToken("admin-1", "session-1", "secret", expires)
	require.NoError(t, err)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.Subject)
	assert.Equal(t, "session-1", claims.ID)

	_, err = ParseToken(token, "other")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := GenerateToken("admin-1", "session-1", "secret", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	_, err = ParseToken(expired, "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = GenerateToken("admin-1", "session-1", "", expires)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

type stubSessions struct {
	active bool
	err    error
}

func (s stubSessions) SessionActive(context.Context, string) (bool, error) {
	return s.active, s.err
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	token, err := GenerateToken("admin-1", "session-1", "secret", time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		sessions SessionValidator
		want     int
	}{
		{name: "no header", sessions: stubSessions{active: true}, want: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer abc", sessions: stubSessions{active: true}, want: http.StatusUnauthorized},
		{name: "revoked", header: "Bearer " + token, sessions: stubSessions{}, want: http.StatusUnauthorized},
		{name: "lookup error", header: "Bearer " + token, sessions: stubSessions{err: errors.New("db down")}, want: http.StatusInternalServerError},
		{name: "ok", header: "Bearer " + token, sessions: stubSessions{active: true}, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", AuthMiddleware("secret", tt.sessions), func(c *gin.Context) {
				assert.Equal(t, "admin-1", c.GetString(ContextAdminID))
				assert.Equal(t, "session-1", c.GetString(ContextSessionID))
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
