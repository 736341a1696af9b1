package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_CreateUserRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr string
	}{
		{"valid", CreateUserRequest{Name: "Alice", Email: "alice@example.com", PrimaryLanguage: "en"}, ""},
		{"region subtag", CreateUserRequest{Name: "Ana", Email: "ana@example.com", PrimaryLanguage: "pt-BR"}, ""},
		{"missing name", CreateUserRequest{Email: "a@example.com", PrimaryLanguage: "en"}, "Name is required"},
		{"bad email", CreateUserRequest{Name: "A", Email: "not-an-email", PrimaryLanguage: "en"}, "Email must be a valid email address"},
		{"bad language", CreateUserRequest{Name: "A", Email: "a@example.com", PrimaryLanguage: "english!"}, "PrimaryLanguage must be a language code"},
		{"long name", CreateUserRequest{Name: strings.Repeat("x", 101), Email: "a@example.com", PrimaryLanguage: "en"}, "Name must be at most 100 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidate_CreateGlossaryRequest(t *testing.T) {
	industry := strings.Repeat("i", 51)

	err := Validate(CreateGlossaryRequest{
		Name:           "Legal",
		Industry:       &industry,
		SourceLanguage: "en",
		TargetLanguage: "de",
		Terms:          []GlossaryTermRequest{{SourceTerm: "contract"}},
	})

	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "Industry must be at most 50 characters")
		assert.Contains(t, err.Error(), "Terms[0].TargetTranslation is required")
	}

	assert.NoError(t, Validate(CreateGlossaryRequest{
		Name:           "Legal",
		SourceLanguage: "en",
		TargetLanguage: "de",
	}))
}

func TestValidate_TranslateRequest(t *testing.T) {
	assert.NoError(t, Validate(TranslateRequest{UserId: 1, Text: "hello", SourceLanguage: "en", TargetLanguage: "fr"}))

	err := Validate(TranslateRequest{Text: "hello", SourceLanguage: "en", TargetLanguage: "fr"})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "UserId is required")
	}
}
