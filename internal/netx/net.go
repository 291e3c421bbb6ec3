// Package netx contains HTTP body helpers shared by the backend client.
package netx

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// Field is a plain multipart form value.
type Field struct {
	Name  string
	Value string
}

// File is a multipart file part.
type File struct {
	Field    string
	FileName string
	Content  io.Reader
}

// BuildMultipart encodes fields and files as multipart/form-data.
// It returns the encoded body and the Content-Type header value (with boundary).
func BuildMultipart(fields []Field, files []File) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for _, f := range fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.Name, err)
		}
	}

	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.FileName)
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", f.FileName, err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, "", fmt.Errorf("copy %s: %w", f.FileName, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}

	return body, w.FormDataContentType(), nil
}
