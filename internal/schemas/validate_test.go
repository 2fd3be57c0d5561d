package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFeedback_Valid(t *testing.T) {
	payload := `{"feedback": ["Add React experience.", "Quantify achievements."]}`
	assert.NoError(t, ValidateFeedback(payload))
}

func TestValidateFeedback_MissingField(t *testing.T) {
	err := ValidateFeedback(`{"notes": ["something"]}`)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateFeedback_EmptyArray(t *testing.T) {
	err := ValidateFeedback(`{"feedback": []}`)
	require.Error(t, err)
}

func TestValidateFeedback_TooManyItems(t *testing.T) {
	payload := `{"feedback": ["a","b","c","d","e","f","g","h","i","j","k"]}`
	assert.Error(t, ValidateFeedback(payload))
}

func TestValidateFeedback_EmptyString(t *testing.T) {
	assert.Error(t, ValidateFeedback(`{"feedback": [""]}`))
}

func TestValidateFeedback_WrongItemType(t *testing.T) {
	err := ValidateFeedback(`{"feedback": [42]}`)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
}

func TestValidateFeedback_AdditionalProperties(t *testing.T) {
	assert.Error(t, ValidateFeedback(`{"feedback": ["ok"], "extra": true}`))
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(FeedbackSchema, `{not json`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidationError_Message(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "feedback", Message: "is required"},
	}}
	assert.Contains(t, ve.Error(), "feedback")
	assert.Contains(t, ve.Error(), "is required")
}
