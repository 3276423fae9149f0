package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/hundred/internal/model"
)

const fetchTimeout = 30 * time.Second

// Load reads the data document from a local path or an http(s) URL.
// YAML is used for .yaml/.yml sources, JSON otherwise.
func Load(ctx context.Context, source string) (model.Document, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return model.Document{}, fmt.Errorf("question source is empty")
	}
	var (
		data []byte
		err  error
		name = source
	)
	if isRemote(source) {
		data, err = fetch(ctx, source)
		if u, perr := url.Parse(source); perr == nil {
			name = u.Path
		}
	} else {
		data, err = os.ReadFile(source)
		if err != nil {
			err = fmt.Errorf("failed to read questions: %w", err)
		}
	}
	if err != nil {
		return model.Document{}, err
	}
	return Decode(data, formatFor(name))
}

// Format selects the document decoder.
type Format int

const (
	// FormatJSON decodes with encoding/json.
	FormatJSON Format = iota
	// FormatYAML decodes with yaml.v3.
	FormatYAML
)

// Decode parses a document in the given format.
func Decode(data []byte, format Format) (model.Document, error) {
	var doc model.Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return model.Document{}, fmt.Errorf("failed to decode questions: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil {
			return model.Document{}, fmt.Errorf("failed to decode questions: %w", err)
		}
	}
	return doc, nil
}

func formatFor(name string) Format {
	ext := strings.ToLower(filepath.Ext(path.Base(name)))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func fetch(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := httpRequest(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected questions status: %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read questions: %w", err)
	}
	return data, nil
}

func httpRequest(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}
