package validation

import (
	"testing"

	"blogapp/internal/dto"
	"blogapp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_ValidUserPasses(t *testing.T) {
	v := New()
	err := v.Struct(dto.UserDTO{Name: "Alice", Email: "alice@example.com", Password: "pw", About: "hi"})
	assert.NoError(t, err)
}

func TestStruct_UserFieldMessages(t *testing.T) {
	v := New()
	err := v.Struct(&dto.UserDTO{Name: "Bob", Email: "not-an-email", Password: "pw", About: "hi"})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	assert.Equal(t, models.ValidationFailsMessage, appErr.Message)
	require.Len(t, appErr.Fields, 2)
	assert.Equal(t, models.FieldError{Field: "name", Message: "User name must be greater than 4 characters"}, appErr.Fields[0])
	assert.Equal(t, models.FieldError{Field: "email", Message: "Email is not valid!"}, appErr.Fields[1])
	assert.Equal(t, "name:User name must be greater than 4 characters.email:Email is not valid!.", appErr.Details())
}

func TestStruct_DefaultMessages(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		field   string
		message string
	}{
		{
			name:    "missing category title",
			input:   dto.CategoryDTO{CategoryDescription: "long enough description"},
			field:   "categoryTitle",
			message: "must not be empty",
		},
		{
			name:    "short category description",
			input:   dto.CategoryDTO{CategoryTitle: "Travel", CategoryDescription: "short"},
			field:   "categoryDescription",
			message: "size must be at least 10",
		},
		{
			name:    "missing post title",
			input:   dto.PostDTO{Content: "body"},
			field:   "title",
			message: "must not be empty",
		},
		{
			name:    "null password",
			input:   dto.UserDTO{Name: "Alice", Email: "a@example.com", About: "x"},
			field:   "password",
			message: "must not be null",
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			require.Len(t, appErr.Fields, 1)
			assert.Equal(t, tt.field, appErr.Fields[0].Field)
			assert.Equal(t, tt.message, appErr.Fields[0].Message)
		})
	}
}

func TestLookupOverride(t *testing.T) {
	msg, ok := lookupOverride("min=too short|email=bad", "email")
	assert.True(t, ok)
	assert.Equal(t, "bad", msg)

	_, ok = lookupOverride("min=too short", "required")
	assert.False(t, ok)

	_, ok = lookupOverride("", "min")
	assert.False(t, ok)
}
