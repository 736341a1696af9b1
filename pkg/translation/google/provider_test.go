package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleProvider_TranslateV2(t *testing.T) {
	var got v2Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/language/translate/v2", r.URL.Path)
		assert.Equal(t, "secret key", r.URL.Query().Get("key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"bonjour le monde"}]}}`))
	}))
	defer server.Close()

	p := NewAPIKeyProvider("secret key", server.URL+"/")

	out, err := p.Translate(context.Background(), "hello world", "en", "fr")
	require.NoError(t, err)
	assert.Equal(t, "bonjour le monde", out)
	assert.Equal(t, []string{"hello world"}, got.Q)
	assert.Equal(t, "en", got.Source)
	assert.Equal(t, "fr", got.Target)
	assert.Equal(t, "text", got.Format)
}

func TestGoogleProvider_TranslateV3(t *testing.T) {
	var got v3Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/projects/my-project/locations/global:translateText", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(`{"translations":[{"translatedText":"hola"}]}`))
	}))
	defer server.Close()

	p := NewProjectProviderWithClient(server.Client(), "my-project", "", server.URL)

	out, err := p.Translate(context.Background(), "hello", "en", "es")
	require.NoError(t, err)
	assert.Equal(t, "hola", out)
	assert.Equal(t, []string{"hello"}, got.Contents)
	assert.Equal(t, "text/plain", got.MimeType)
	assert.Equal(t, "en", got.SourceLanguageCode)
	assert.Equal(t, "es", got.TargetLanguageCode)
}

func TestGoogleProvider_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"api error", http.StatusForbidden, `{"error":{"code":403,"message":"API key not valid"}}`, "API key not valid"},
		{"plain error", http.StatusBadGateway, `upstream down`, "upstream down"},
		{"empty translations", http.StatusOK, `{"data":{"translations":[]}}`, "empty translations"},
		{"bad json", http.StatusOK, `{"data":`, "failed to decode response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			p := NewAPIKeyProvider("key", server.URL)
			_, err := p.Translate(context.Background(), "hello", "en", "fr")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGoogleProvider_MissingProject(t *testing.T) {
	p := NewProjectProviderWithClient(http.DefaultClient, "", "global", "")

	_, err := p.Translate(context.Background(), "hello", "en", "fr")
	assert.Error(t, err)
}
