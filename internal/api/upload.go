package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
)

// maxUploadSize caps file uploads client-side, mirroring the backend limit.
const maxUploadSize = 10 << 20

// UploadFile sends a file to the content-storage endpoint and returns the
// URL the backend stored it under.
func (c *Client) UploadFile(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("folder", folder); err != nil {
		return "", err
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, io.LimitReader(r, maxUploadSize)); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	env, err := c.roundTrip(ctx, http.MethodPost, "/upload", buf.Bytes(), w.FormDataContentType())
	if err != nil {
		return "", err
	}

	var out struct {
		FileURL string `json:"fileUrl"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return "", err
	}
	return out.FileURL, nil
}

func (c *Client) DeleteFile(ctx context.Context, fileURL string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/upload", map[string]string{"fileUrl": fileURL}, nil)
}
