package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

type MyMemoryClient struct {
	*BaseClient
	baseURL string
}

// Translation is the outcome of one translation request.
type Translation struct {
	Text       string
	SourceLang string
	TargetLang string
}

func NewMyMemoryClient(config ClientConfig, logger *zap.Logger) *MyMemoryClient {
	baseClient := NewBaseClient("mymemory", config, logger)
	return &MyMemoryClient{
		BaseClient: baseClient,
		baseURL:    "https://api.mymemory.translated.net",
	}
}

type myMemoryResponse struct {
	ResponseStatus  json.Number `json:"responseStatus"`
	ResponseDetails string      `json:"responseDetails"`
	ResponseData    struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

// Translate requests a translation for an explicit ISO language pair.
func (c *MyMemoryClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (*Translation, error) {
	u := fmt.Sprintf("%s/get?q=%s&langpair=%s", c.baseURL,
		url.QueryEscape(text), url.QueryEscape(sourceLang+"|"+targetLang))

	data, err := c.GetWithRetry(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("requesting translation: %w", err)
	}

	var resp myMemoryResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing translation response: %w", err)
	}

	// The API reports its own status inside a 200 response, sometimes as a
	// string and sometimes as a number.
	if status, _ := resp.ResponseStatus.Int64(); status != 200 {
		return nil, fmt.Errorf("translation failed: %s", resp.ResponseDetails)
	}

	return &Translation{
		Text:       resp.ResponseData.TranslatedText,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	}, nil
}
