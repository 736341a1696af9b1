package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2/google"
)

const (
	DefaultBaseURL  = "https://translation.googleapis.com"
	DefaultLocation = "global"

	// CloudTranslationScope is the OAuth scope required by the v3 API.
	CloudTranslationScope = "https://www.googleapis.com/auth/cloud-translation"
)

// GoogleProvider talks to Cloud Translation over REST. With an API key it
// uses the v2 endpoint; with a project id and an authorized client it uses
// v3 translateText.
type GoogleProvider struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	projectID string
	location  string
}

// NewAPIKeyProvider targets the v2 endpoint authenticated by API key.
func NewAPIKeyProvider(apiKey, baseURL string) *GoogleProvider {
	return &GoogleProvider{
		client:  &http.Client{},
		baseURL: normalizeBaseURL(baseURL),
		apiKey:  apiKey,
	}
}

// NewProjectProvider targets the v3 endpoint with Application Default
// Credentials. It fails when no credentials can be found.
func NewProjectProvider(ctx context.Context, projectID, location, baseURL string) (*GoogleProvider, error) {
	client, err := google.DefaultClient(ctx, CloudTranslationScope)
	if err != nil {
		return nil, fmt.Errorf("find default credentials: %w", err)
	}
	return NewProjectProviderWithClient(client, projectID, location, baseURL), nil
}

// NewProjectProviderWithClient uses client as is; it must already add
// authorization to outgoing requests.
func NewProjectProviderWithClient(client *http.Client, projectID, location, baseURL string) *GoogleProvider {
	if location == "" {
		location = DefaultLocation
	}
	return &GoogleProvider{
		client:    client,
		baseURL:   normalizeBaseURL(baseURL),
		projectID: projectID,
		location:  location,
	}
}

func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return strings.TrimRight(baseURL, "/")
}

func (p *GoogleProvider) Name() string {
	return "google"
}

func (p *GoogleProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if p.apiKey != "" {
		return p.translateV2(ctx, text, sourceLang, targetLang)
	}
	return p.translateV3(ctx, text, sourceLang, targetLang)
}

// v2 payloads

type v2Request struct {
	Q      []string `json:"q"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Format string   `json:"format"`
}

type v2Response struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// v3 payloads

type v3Request struct {
	Contents           []string `json:"contents"`
	MimeType           string   `json:"mimeType"`
	SourceLanguageCode string   `json:"sourceLanguageCode"`
	TargetLanguageCode string   `json:"targetLanguageCode"`
}

type v3Response struct {
	Translations []struct {
		TranslatedText string `json:"translatedText"`
	} `json:"translations"`
}

type errorResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (p *GoogleProvider) translateV2(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	endpoint := fmt.Sprintf("%s/language/translate/v2?key=%s", p.baseURL, url.QueryEscape(p.apiKey))

	var resp v2Response
	err := p.post(ctx, endpoint, v2Request{
		Q:      []string{text},
		Source: sourceLang,
		Target: targetLang,
		Format: "text",
	}, &resp)
	if err != nil {
		return "", err
	}

	if len(resp.Data.Translations) == 0 {
		return "", fmt.Errorf("empty translations from google api")
	}
	return resp.Data.Translations[0].TranslatedText, nil
}

func (p *GoogleProvider) translateV3(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if p.projectID == "" {
		return "", fmt.Errorf("google project id is not set")
	}

	endpoint := fmt.Sprintf("%s/v3/projects/%s/locations/%s:translateText",
		p.baseURL, url.PathEscape(p.projectID), url.PathEscape(p.location))

	var resp v3Response
	err := p.post(ctx, endpoint, v3Request{
		Contents:           []string{text},
		MimeType:           "text/plain",
		SourceLanguageCode: sourceLang,
		TargetLanguageCode: targetLang,
	}, &resp)
	if err != nil {
		return "", err
	}

	if len(resp.Translations) == 0 {
		return "", fmt.Errorf("empty translations from google api")
	}
	return resp.Translations[0].TranslatedText, nil
}

func (p *GoogleProvider) post(ctx context.Context, endpoint string, payload, out interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Error != nil {
			return fmt.Errorf("google api error (status %d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return fmt.Errorf("google api error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
