// Package translate provides best-effort text translation via the public
// Google Translate gtx endpoint, with MyMemory as fallback. On any failure
// the original text comes back unchanged; callers never see an error.
package translate

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	maxResponseBytes = 256 * 1024
	maxInputRunes    = 4500
	clientTimeout    = 20 * time.Second
)

// TargetFilipino is the language code used for the in-feed translation.
const TargetFilipino = "tl"

type Translator struct {
	client *http.Client
}

func New() *Translator {
	return &Translator{client: &http.Client{Timeout: clientTimeout}}
}

// Translate converts text to the target language code, trying the Google gtx
// endpoint first and MyMemory second. Input is truncated to a safe length.
func (t *Translator) Translate(text, target string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}
	if target == "" {
		target = TargetFilipino
	}
	if rs := []rune(text); len(rs) > maxInputRunes {
		text = string(rs[:maxInputRunes])
	}

	if out := t.viaGoogle(text, target); out != "" {
		return out
	}
	if out := t.viaMyMemory(text, target); out != "" {
		return out
	}
	return text
}

// viaGoogle uses the public gtx client of Google Translate (no key needed).
func (t *Translator) viaGoogle(text, target string) string {
	apiURL := fmt.Sprintf(
		"https://translate.googleapis.com/translate_a/single?client=gtx&sl=auto&tl=%s&dt=t&q=%s",
		url.QueryEscape(target), url.QueryEscape(text),
	)
	req, err := http.NewRequest(http.MethodGet, apiURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := t.client.Do(req)
	if err != nil {
		log.Printf("translate (google-gtx): %v", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("translate (google-gtx): status %d", resp.StatusCode)
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return ""
	}

	return parseGtxResponse(body)
}

// parseGtxResponse joins the translated segments of the gtx response, which
// has the shape [[["translated","original",...],...],...].
func parseGtxResponse(body []byte) string {
	var raw []any
	if err := json.Unmarshal(body, &raw); err != nil {
		log.Printf("translate (google-gtx): decode error: %v", err)
		return ""
	}
	if len(raw) == 0 {
		return ""
	}

	outer, ok := raw[0].([]any)
	if !ok {
		return ""
	}

	var result strings.Builder
	for _, seg := range outer {
		pair, ok := seg.([]any)
		if !ok || len(pair) < 1 {
			continue
		}
		if s, ok := pair[0].(string); ok {
			result.WriteString(s)
		}
	}
	return strings.TrimSpace(result.String())
}

func (t *Translator) viaMyMemory(text, target string) string {
	apiURL := "https://api.mymemory.translated.net/get?langpair=en|" + url.QueryEscape(target) + "&q=" + url.QueryEscape(text)
	req, err := http.NewRequest(http.MethodGet, apiURL, nil)
	if err != nil {
		return ""
	}
	resp, err := t.client.Do(req)
	if err != nil {
		log.Printf("translate (mymemory): %v", err)
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("translate (mymemory): status %d", resp.StatusCode)
		return ""
	}
	var out struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return ""
	}
	return strings.TrimSpace(out.ResponseData.TranslatedText)
}
