// Package permalink embeds a generate-link response into a shareable URL and
// reads it back. Nothing is stored server-side: the link is the data.
package permalink

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultBaseURL = "https://linkylink.lol/"
	DataParam      = "data"
)

var (
	ErrEmptyData   = errors.New("permalink data is empty")
	ErrInvalidData = errors.New("permalink data is not a JSON object")
)

// Builder creates permalinks under a fixed base URL.
type Builder struct {
	baseURL string
}

// New returns a Builder for baseURL, or DefaultBaseURL when empty.
func New(baseURL string) Builder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Builder{baseURL: baseURL}
}

// Build appends the escaped body as the data parameter. An empty body gives "".
func (b Builder) Build(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sep := "?"
	if strings.Contains(b.baseURL, "?") {
		sep = "&"
	}
	return b.baseURL + sep + DataParam + "=" + Escape(string(body))
}

// componentUnescaper restores what encodeURIComponent leaves alone but
// url.QueryEscape encodes.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// Escape percent-encodes s the way JavaScript's encodeURIComponent does.
func Escape(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// Decode validates an already unescaped data value and returns it compacted.
func Decode(data string) (json.RawMessage, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return nil, ErrEmptyData
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &obj); err != nil || obj == nil {
		return nil, ErrInvalidData
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(data)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return buf.Bytes(), nil
}

// Parse extracts and decodes the data parameter of a full permalink.
func Parse(link string) (json.RawMessage, error) {
	u, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return Decode(u.Query().Get(DataParam))
}
