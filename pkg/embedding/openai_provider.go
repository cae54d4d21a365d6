package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"ai-council-be/pkg/upstream"
)

const (
	openAIProviderName     = "openai"
	openAIDefaultBaseURL   = "https://api.openai.com/v1"
	openAIDefaultModel     = "text-embedding-3-small"
	openAIDefaultDimension = 1536
)

// OpenAIProvider calls the hosted embeddings endpoint, one text per request.
type OpenAIProvider struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

func NewOpenAIProvider(apiKey, baseURL, model string) (EmbeddingProvider, error) {
	if err := upstream.CheckCredential(openAIProviderName, apiKey); err != nil {
		return nil, err
	}
	if baseURL == "" {
		baseURL = openAIDefaultBaseURL
	}
	if model == "" {
		model = openAIDefaultModel
	}
	return &OpenAIProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type openAIEmbeddingRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	EncodingFormat string `json:"encoding_format"`
}

type openAIEmbeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

func (p *OpenAIProvider) Name() string {
	return openAIProviderName
}

func (p *OpenAIProvider) Dimensions() int {
	return openAIDefaultDimension
}

func (p *OpenAIProvider) Generate(ctx context.Context, text string) ([]float32, error) {
	body, err := json.Marshal(openAIEmbeddingRequest{
		Model:          p.Model,
		Input:          text,
		EncodingFormat: "float",
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, upstream.Transport(openAIProviderName, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, upstream.Transport(openAIProviderName, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, upstream.FromStatus(openAIProviderName, resp.StatusCode, respBody)
	}

	var parsed openAIEmbeddingResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, &upstream.Error{Provider: openAIProviderName, Kind: upstream.ErrBadResponse, Detail: err.Error()}
	}
	if len(parsed.Data) == 0 || len(parsed.Data[0].Embedding) == 0 {
		return nil, &upstream.Error{Provider: openAIProviderName, Kind: upstream.ErrBadResponse, Detail: "empty embedding"}
	}
	return parsed.Data[0].Embedding, nil
}
