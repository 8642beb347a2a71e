package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
)

// FilePart is one file attached to a multipart request. Field names match
// what the backend expects (cinFile, messageFile, image, file).
type FilePart struct {
	Field    string
	Filename string
	Content  []byte
}

// Multipart sends a multipart/form-data request with the given text
// fields and file parts.
func (c *Client) Multipart(ctx context.Context, method, path string, fields map[string]string, files []FilePart, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("write field %s: %w", name, err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return fmt.Errorf("create part %s: %w", f.Field, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return fmt.Errorf("write part %s: %w", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	return c.do(ctx, method, path, &buf, w.FormDataContentType(), out)
}

// PostMultipart is shorthand for a POST Multipart call.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, files []FilePart, out any) error {
	return c.Multipart(ctx, http.MethodPost, path, fields, files, out)
}
