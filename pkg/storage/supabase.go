package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client uploads resume files to Supabase Storage over its REST API.
type Client struct {
	baseURL    string // e.g. https://xyz.supabase.co
	serviceKey string
	bucket     string
	httpClient *http.Client
}

func NewClient(baseURL, serviceKey, bucket string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether the client has enough configuration to talk to
// storage. Uploads are rejected up front when it doesn't.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.serviceKey != ""
}

// Upload stores an object and returns its public URL. Existing objects with
// the same name are overwritten (x-upsert).
func (c *Client) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("storage: missing Supabase credentials")
	}

	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, objectName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("storage: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage: upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("storage: upload failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	return c.PublicURL(objectName), nil
}

// Delete removes a previously uploaded object, given its public URL. A
// failure to delete an old file is not fatal for callers replacing it.
func (c *Client) Delete(ctx context.Context, publicURL string) error {
	bucket, objectName, ok := splitPublicURL(publicURL)
	if !ok {
		return fmt.Errorf("storage: unrecognized public URL: %s", publicURL)
	}

	deleteURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, objectName)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, deleteURL, nil)
	if err != nil {
		return fmt.Errorf("storage: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("storage: delete failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("storage: delete failed: status=%d", resp.StatusCode)
	}
	return nil
}

// PublicURL builds the public URL for an object in the client's bucket.
func (c *Client) PublicURL(objectName string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, objectName)
}

// splitPublicURL extracts bucket and object name from a Supabase public URL:
// https://xxx.supabase.co/storage/v1/object/public/BUCKET/OBJECT
func splitPublicURL(publicURL string) (bucket, objectName string, ok bool) {
	const marker = "/storage/v1/object/public/"
	idx := strings.Index(publicURL, marker)
	if idx < 0 {
		return "", "", false
	}
	rest := publicURL[idx+len(marker):]
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// SanitizeFilename strips non-ASCII characters and replaces spaces with
// underscores. Supabase requires ASCII-only object names.
func SanitizeFilename(filename string) string {
	ext := ""
	if dot := strings.LastIndex(filename, "."); dot >= 0 {
		ext = filename[dot+1:]
		filename = filename[:dot]
	}

	baseName := strings.ReplaceAll(filename, " ", "_")

	var result strings.Builder
	for _, r := range baseName {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			result.WriteRune(r)
		}
	}

	name := result.String()
	if name == "" {
		name = "file"
	}
	if ext != "" {
		return name + "." + strings.ToLower(ext)
	}
	return name
}
