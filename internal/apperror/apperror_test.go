package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"not found", NotFound("subject %s not found", "SUB-1"), http.StatusNotFound},
		{"no exam", New(KindNotFound, CodeNoExamFound, "no exam"), http.StatusNotFound},
		{"duplicate set name", Conflict(CodeDuplicateSetName, "dup"), http.StatusBadRequest},
		{"already submitted", Conflict(CodeAlreadySubmitted, "done"), http.StatusConflict},
		{"count mismatch", CountMismatch(20, 25), http.StatusBadRequest},
		{"inactive", Precondition(CodeInactiveSubject, "inactive"), http.StatusBadRequest},
		{"store", Store(errors.New("disk"), "save"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestCountMismatchCarriesBothValues(t *testing.T) {
	err := CountMismatch(20, 25)
	assert.Equal(t, CodeCountMismatch, err.Code)
	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, []string{"declared=20", "sum=25"}, err.Details)
	assert.Contains(t, err.Error(), "(20)")
	assert.Contains(t, err.Error(), "(25)")
}

func TestKindOfWrapped(t *testing.T) {
	base := Precondition(CodeSetNotAssigned, "no set")
	wrapped := fmt.Errorf("submit: %w", base)

	assert.Equal(t, KindPreconditionFailed, KindOf(wrapped))
	assert.True(t, HasCode(wrapped, CodeSetNotAssigned))
	assert.Equal(t, KindStore, KindOf(errors.New("boom")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestStoreUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := Store(cause, "persist student %s", "STD-1")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "persist student STD-1: connection reset", err.Error())
}
