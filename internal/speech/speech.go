// Package speech fetches spoken MP3 audio for short text via the public
// Google Translate TTS endpoint.
package speech

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	maxResponseBytes = 2 << 20 // 2MB of audio
	maxInputRunes    = 200     // the endpoint rejects long inputs
	clientTimeout    = 20 * time.Second
)

type Synthesizer struct {
	client *http.Client
}

func New() *Synthesizer {
	return &Synthesizer{client: &http.Client{Timeout: clientTimeout}}
}

// Synthesize returns MP3 bytes for text in the given language code
// ("en", "tl", ...). Unlike translation this surfaces errors: the caller has
// no sensible fallback for missing audio.
func (s *Synthesizer) Synthesize(text, lang string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("speech: empty text")
	}
	if lang == "" {
		lang = "en"
	}
	if rs := []rune(text); len(rs) > maxInputRunes {
		text = string(rs[:maxInputRunes])
	}

	apiURL := fmt.Sprintf(
		"https://translate.google.com/translate_tts?ie=UTF-8&client=tw-ob&tl=%s&q=%s",
		url.QueryEscape(lang), url.QueryEscape(text),
	)
	req, err := http.NewRequest(http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("speech: build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("speech: fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("speech: status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("speech: read audio: %w", err)
	}
	return audio, nil
}
