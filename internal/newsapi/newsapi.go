package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	baseURL          = "https://newsapi.org/v2"
	clientTimeout    = 30 * time.Second
	maxResponseBytes = 4 << 20 // 4MB
)

// Article is one item from the /v2/everything response. Fields the API may
// omit stay as empty strings; callers must not assume Description or Content
// are present.
type Article struct {
	SourceID    string    `json:"sourceId"`
	SourceName  string    `json:"sourceName"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"imageUrl"`
	PublishedAt time.Time `json:"publishedAt"`
	Content     string    `json:"content"`
}

// Query mirrors the parameters of GET /v2/everything.
type Query struct {
	Q        string
	Language string
	SortBy   string // publishedAt / relevancy / popularity
	PageSize int
}

type Client struct {
	apiKey string
	client *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		client: &http.Client{Timeout: clientTimeout},
	}
}

type everythingResponse struct {
	Status       string `json:"status"`
	Code         string `json:"code"`
	Message      string `json:"message"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Source struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"source"`
		Author      string    `json:"author"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		URL         string    `json:"url"`
		URLToImage  string    `json:"urlToImage"`
		PublishedAt time.Time `json:"publishedAt"`
		Content     string    `json:"content"`
	} `json:"articles"`
}

// SearchEverything queries /v2/everything and returns the article list.
func (c *Client) SearchEverything(ctx context.Context, q Query) ([]Article, error) {
	params := url.Values{}
	params.Set("q", q.Q)
	if q.Language != "" {
		params.Set("language", q.Language)
	}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi: build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi: fetch everything: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("newsapi: read response: %w", err)
	}

	var out everythingResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("newsapi: unmarshal response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || out.Status != "ok" {
		return nil, fmt.Errorf("newsapi: status %d (%s: %s)", resp.StatusCode, out.Code, out.Message)
	}

	articles := make([]Article, 0, len(out.Articles))
	for _, a := range out.Articles {
		articles = append(articles, Article{
			SourceID:    a.Source.ID,
			SourceName:  a.Source.Name,
			Author:      a.Author,
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			PublishedAt: a.PublishedAt,
			Content:     a.Content,
		})
	}
	return articles, nil
}
