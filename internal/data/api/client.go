// Package api is the HTTP client for the picture-book REST service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/zukan/internal/core/catalog"
	"github.com/colonyops/zukan/internal/core/logging"
)

// DefaultTimeout bounds a single request when none is configured.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of a failed response body is kept on StatusError.
const maxErrorBody = 512

// EntryInput is the request body for creating and updating entries.
type EntryInput struct {
	CollectionID int64  `json:"collectionId"`
	Name         string `json:"name"`
	CategoryID   *int64 `json:"categoryId"`
	Description  string `json:"description"`
}

type nameInput struct {
	Name string `json:"name"`
}

// Client talks to the REST service relative to a base URL.
type Client struct {
	base *url.URL
	http *http.Client
	log  zerolog.Logger
}

// New creates a client for baseURL. A zero timeout uses DefaultTimeout.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		base: base,
		http: &http.Client{Timeout: timeout},
		log:  log.With().Str("component", "api").Logger(),
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// ResolveRef turns an image locator into something a user can open. Absolute
// URLs are returned unchanged; relative ones are resolved against the base URL.
// Placeholder refs resolve to "".
func (c *Client) ResolveRef(ref string) string {
	if ref == "" || ref == catalog.NoImageRef {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if u.IsAbs() {
		return ref
	}
	return c.base.ResolveReference(u).String()
}

// ListCollections returns every collection as a list-view row.
func (c *Client) ListCollections(ctx context.Context) ([]catalog.CollectionSummary, error) {
	var out []catalog.CollectionSummary
	if err := c.doJSON(ctx, http.MethodGet, "/collections", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCollection fetches one collection with its categories, entries and
// images. An empty entry list is returned as-is; callers normalise it.
func (c *Client) GetCollection(ctx context.Context, id int64) (catalog.Collection, error) {
	var out catalog.Collection
	if err := c.doJSON(ctx, http.MethodGet, "/collections/"+itoa(id), nil, &out); err != nil {
		return catalog.Collection{}, err
	}
	return out, nil
}

// CreateCollection creates an empty collection named name.
func (c *Client) CreateCollection(ctx context.Context, name string) (catalog.CollectionSummary, error) {
	var out catalog.CollectionSummary
	if err := c.doJSON(ctx, http.MethodPost, "/collections", nameInput{Name: name}, &out); err != nil {
		return catalog.CollectionSummary{}, err
	}
	return out, nil
}

// RenameCollection changes the name of collection id.
func (c *Client) RenameCollection(ctx context.Context, id int64, name string) error {
	return c.doJSON(ctx, http.MethodPut, "/collections/"+itoa(id), nameInput{Name: name}, nil)
}

// SetThumbnail uploads f as the thumbnail of collection id.
func (c *Client) SetThumbnail(ctx context.Context, id int64, f catalog.File) error {
	return c.doMultipart(ctx, "/collections/"+itoa(id)+"/thumbnail", f, nil)
}

// CreateEntry adds an entry to in.CollectionID.
func (c *Client) CreateEntry(ctx context.Context, in EntryInput) error {
	return c.doJSON(ctx, http.MethodPost, "/entries", in, nil)
}

// UpdateEntry overwrites the fields of entry id.
func (c *Client) UpdateEntry(ctx context.Context, id int64, in EntryInput) error {
	return c.doJSON(ctx, http.MethodPut, "/entries/"+itoa(id), in, nil)
}

// DeleteEntry removes entry id and its images.
func (c *Client) DeleteEntry(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, "/entries/"+itoa(id), nil, nil)
}

// CreateImage appends f to the images of entryID.
func (c *Client) CreateImage(ctx context.Context, entryID int64, f catalog.File) error {
	return c.doMultipart(ctx, "/images", f, map[string]string{"entryId": itoa(entryID)})
}

// ReplaceImage swaps the file behind image id.
func (c *Client) ReplaceImage(ctx context.Context, id, entryID int64, f catalog.File) error {
	return c.doMultipart(ctx, "/images/"+itoa(id)+"/replace", f, map[string]string{"entryId": itoa(entryID)})
}

// DeleteImage removes image id.
func (c *Client) DeleteImage(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, "/images/"+itoa(id), nil, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		bits, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(bits)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, body, contentType, out)
}

func (c *Client) doMultipart(ctx context.Context, path string, f catalog.File, fields map[string]string) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("write field %s: %w", k, err)
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, f.Name))
	h.Set("Content-Type", f.ContentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create image part: %w", err)
	}
	if _, err := part.Write(f.Data); err != nil {
		return fmt.Errorf("write image part: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart body: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, &buf, w.FormDataContentType(), nil)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	requestID := uuid.NewString()
	ctx = logging.WithRequestID(ctx, requestID)

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, body)
	if err != nil {
		return fmt.Errorf("create request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Ctx(ctx).Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	bits, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response %s %s: %w", method, path, err)
	}

	c.log.Debug().Ctx(ctx).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request complete")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text := strings.TrimSpace(string(bits))
		if len(text) > maxErrorBody {
			text = text[:maxErrorBody]
		}
		return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: text}
	}

	if out == nil || len(bytes.TrimSpace(bits)) == 0 {
		return nil
	}
	if err := json.Unmarshal(bits, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
