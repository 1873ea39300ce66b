package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("page not found")))
	assert.True(t, IsNotFound(NewDatabaseError("find", "project", gorm.ErrRecordNotFound)))
	assert.False(t, IsNotFound(NewBadRequestError("malformed form body")))
	assert.False(t, IsNotFound(NewValidationError([]string{"problem"})))
	assert.False(t, IsNotFound(errors.New("plain failure")))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(NewValidationError([]string{"problem"})))
	assert.False(t, IsValidation(NewNotFoundError("page not found")))
}

func TestDatabaseErrorClassification(t *testing.T) {
	cases := []struct {
		cause error
		want  int
	}{
		{errors.New(`UNIQUE constraint failed: tech_tags.name`), http.StatusConflict},
		{errors.New(`duplicate key value violates unique constraint`), http.StatusConflict},
		{gorm.ErrRecordNotFound, http.StatusNotFound},
		{errors.New("connection refused"), http.StatusServiceUnavailable},
		{errors.New("syntax error"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		got := NewDatabaseError("find", "project", tc.cause)
		assert.Equal(t, tc.want, got.StatusCode, "cause=%v", tc.cause)
		assert.Equal(t, tc.cause, got.Cause, "cause=%v", tc.cause)
	}
}
