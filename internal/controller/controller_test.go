package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examdesk/internal/apperror"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", apperror.NotFound("subject x not found"), http.StatusNotFound, apperror.CodeNotFound},
		{"no exam", apperror.New(apperror.KindNotFound, apperror.CodeNoExamFound, "no exam"), http.StatusNotFound, apperror.CodeNoExamFound},
		{"duplicate assignment", apperror.Conflict(apperror.CodeDuplicateAssignment, "dup"), http.StatusConflict, apperror.CodeDuplicateAssignment},
		{"already submitted", apperror.Conflict(apperror.CodeAlreadySubmitted, "done"), http.StatusConflict, apperror.CodeAlreadySubmitted},
		{"duplicate set name", apperror.Conflict(apperror.CodeDuplicateSetName, "dup set"), http.StatusBadRequest, apperror.CodeDuplicateSetName},
		{"count mismatch", apperror.CountMismatch(20, 25), http.StatusBadRequest, apperror.CodeCountMismatch},
		{"precondition", apperror.Precondition(apperror.CodeSetNotAssigned, "no set"), http.StatusBadRequest, apperror.CodeSetNotAssigned},
		{"store", apperror.Store(errors.New("disk full"), "save"), http.StatusInternalServerError, apperror.CodeStore},
		{"foreign error", errors.New("boom"), http.StatusInternalServerError, apperror.CodeStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			RespondError(ctx, tt.err, "test")

			assert.Equal(t, tt.status, w.Code)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestRespondErrorKeepsDetails(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	RespondError(ctx, apperror.CountMismatch(20, 25), "create subject")

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(apperror.KindValidation), body.Kind)
	assert.Equal(t, []string{"declared=20", "sum=25"}, body.Details)
}

func TestRespondBindError(t *testing.T) {
	type payload struct {
		Name string `json:"name" binding:"required"`
	}
	r := gin.New()
	r.POST("/", func(ctx *gin.Context) {
		var p payload
		if err := ctx.ShouldBindJSON(&p); err != nil {
			RespondBindError(ctx, err, "test")
			return
		}
		ctx.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apperror.CodeInvalidInput, body.Code)
	assert.Equal(t, []string{"payload.Name failed on the 'required' rule"}, body.Details)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), RequestLogger())
	var seen string
	r.GET("/ping", func(ctx *gin.Context) {
		seen = RequestIDFrom(ctx)
		ctx.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
