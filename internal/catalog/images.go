package catalog

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// EncodeImage wraps raw image bytes into a self-contained data URI the sheet
// can store as a cell value. The media type comes from the file extension,
// with content sniffing as the fallback.
func EncodeImage(name string, data []byte) string {
	mediaType := mime.TypeByExtension(filepath.Ext(name))
	if mediaType == "" {
		mediaType = http.DetectContentType(data)
	}
	return fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(data))
}

// EncodeImageFiles reads and encodes the named files concurrently, preserving
// input order in the result. Ingestion is all-or-nothing: one failed read
// rejects the whole batch.
func EncodeImageFiles(ctx context.Context, paths []string) ([]string, error) {
	g, _ := errgroup.WithContext(ctx)
	encoded := make([]string, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading image %s: %w", filepath.Base(path), err)
			}
			encoded[i] = EncodeImage(path, data)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return encoded, nil
}

// EncodeUploads encodes a multipart upload batch with the same order and
// all-or-nothing semantics as EncodeImageFiles.
func EncodeUploads(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	g, _ := errgroup.WithContext(ctx)
	encoded := make([]string, len(files))

	for i, header := range files {
		i, header := i, header
		g.Go(func() error {
			f, err := header.Open()
			if err != nil {
				return fmt.Errorf("opening image %s: %w", header.Filename, err)
			}
			defer f.Close()

			data, err := io.ReadAll(f)
			if err != nil {
				return fmt.Errorf("reading image %s: %w", header.Filename, err)
			}
			encoded[i] = EncodeImage(header.Filename, data)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return encoded, nil
}
