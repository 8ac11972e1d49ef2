// Package scraper pulls article bodies and page metadata out of arbitrary
// news pages for the in-app reader and the fake-URL analyzer.
package scraper

import (
	"fmt"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

const (
	fetchTimeout = 10 * time.Second
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// Paragraphs at or below this length are boilerplate (nav, captions,
	// cookie banners) and are skipped.
	minParagraphLen = 50

	// analyzeParagraphs caps how much body text feeds the URL analyzer.
	analyzeParagraphs = 15
)

// ArticleBody is the readable extraction of a news page.
type ArticleBody struct {
	Content  string
	ImageURL string
}

// PageSummary is the lightweight metadata extraction used before scoring a
// submitted URL.
type PageSummary struct {
	Title       string
	Description string
	Body        string
}

type Fetcher struct{}

func New() *Fetcher {
	return &Fetcher{}
}

func (f *Fetcher) newCollector() *colly.Collector {
	c := colly.NewCollector(colly.UserAgent(userAgent))
	c.SetRequestTimeout(fetchTimeout)
	return c
}

// FetchArticle extracts the main body text (paragraph blocks longer than 50
// characters joined by blank lines) and the Open Graph image of pageURL.
func (f *Fetcher) FetchArticle(pageURL string) (ArticleBody, error) {
	var (
		paragraphs []string
		imageURL   string
		fetchErr   error
	)

	c := f.newCollector()
	c.OnHTML("p", func(e *colly.HTMLElement) {
		text := strings.TrimSpace(e.Text)
		if len(text) > minParagraphLen {
			paragraphs = append(paragraphs, text)
		}
	})
	c.OnHTML(`meta[property="og:image"]`, func(e *colly.HTMLElement) {
		if imageURL == "" {
			imageURL = e.Attr("content")
		}
	})
	c.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(pageURL); err != nil {
		return ArticleBody{}, fmt.Errorf("scraper: visit %s: %w", pageURL, err)
	}
	if fetchErr != nil {
		return ArticleBody{}, fmt.Errorf("scraper: fetch %s: %w", pageURL, fetchErr)
	}

	return ArticleBody{
		Content:  strings.Join(paragraphs, "\n\n"),
		ImageURL: imageURL,
	}, nil
}

// FetchPage extracts title, meta description, and the first paragraphs of
// pageURL for credibility analysis.
func (f *Fetcher) FetchPage(pageURL string) (PageSummary, error) {
	var (
		out      PageSummary
		ogDesc   string
		body     []string
		fetchErr error
	)

	c := f.newCollector()
	c.OnHTML("title", func(e *colly.HTMLElement) {
		if out.Title == "" {
			out.Title = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML(`meta[name="description"]`, func(e *colly.HTMLElement) {
		if out.Description == "" {
			out.Description = strings.TrimSpace(e.Attr("content"))
		}
	})
	c.OnHTML(`meta[property="og:description"]`, func(e *colly.HTMLElement) {
		if ogDesc == "" {
			ogDesc = strings.TrimSpace(e.Attr("content"))
		}
	})
	c.OnHTML("p", func(e *colly.HTMLElement) {
		if len(body) < analyzeParagraphs {
			body = append(body, strings.TrimSpace(e.Text))
		}
	})
	c.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(pageURL); err != nil {
		return PageSummary{}, fmt.Errorf("scraper: visit %s: %w", pageURL, err)
	}
	if fetchErr != nil {
		return PageSummary{}, fmt.Errorf("scraper: fetch %s: %w", pageURL, fetchErr)
	}

	if out.Title == "" {
		out.Title = "Unknown Title"
	}
	if out.Description == "" {
		out.Description = ogDesc
	}
	out.Body = strings.Join(body, " ")
	return out, nil
}
