package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// Uploader stores an image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, fileName, folder string) (string, error)
}

// ImageKit is a minimal client for the ImageKit upload REST API.
type ImageKit struct {
	uploadURL  string
	privateKey string
	httpClient *http.Client
}

// NewImageKit creates an ImageKit client authenticated with the private key.
func NewImageKit(uploadURL, privateKey string) *ImageKit {
	return &ImageKit{
		uploadURL:  uploadURL,
		privateKey: privateKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type uploadResponse struct {
	URL     string `json:"url"`
	FileID  string `json:"fileId"`
	Message string `json:"message"`
}

// Upload sends the file as multipart form data and returns the hosted URL.
// The stored object name is a slug of the original base name.
func (k *ImageKit) Upload(ctx context.Context, file io.Reader, fileName, folder string) (string, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", fileName)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		_ = mw.WriteField("fileName", objectName(fileName))
		_ = mw.WriteField("folder", folder)
		_ = mw.WriteField("useUniqueFileName", "true")
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, k.uploadURL, pr)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.SetBasicAuth(k.privateKey, "")

	resp, err := k.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	defer resp.Body.Close()

	var body uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload image: status %d: %s", resp.StatusCode, body.Message)
	}
	if body.URL == "" {
		return "", fmt.Errorf("upload image: empty url in response")
	}
	return body.URL, nil
}

// objectName slugs the base name and keeps the extension.
func objectName(fileName string) string {
	ext := path.Ext(fileName)
	base := strings.TrimSuffix(path.Base(fileName), ext)
	if s := slug.Make(base); s != "" {
		base = s
	}
	return base + strings.ToLower(ext)
}
