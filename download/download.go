package download

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"apod-wallpaper/logger"
)

type Downloader struct {
	httpClient *http.Client
}

func NewDownloader(httpClient *http.Client) *Downloader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Downloader{httpClient: httpClient}
}

// Download fetches url and writes the body to dest, creating or truncating it.
// The whole body is read into memory before dest is touched. The caller owns the
// parent directory; a failed write may leave a truncated file behind.
func (d *Downloader) Download(ctx context.Context, url, dest string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("Failed to close response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("failed to GET %s: HTTP status %d", url, resp.StatusCode)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", url, err)
	}

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", dest, err)
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		_ = out.Close()
		return "", fmt.Errorf("failed to write %s: %w", dest, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", dest, err)
	}

	logger.Debug("Wrote %d bytes to %s (%s)\n", buf.Len(), dest, describe(buf.Bytes()))
	return dest, nil
}

// describe reports the format and size of an encoded image without decoding the pixels.
func describe(data []byte) string {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "unrecognised image format"
	}
	return fmt.Sprintf("%s %dx%d", format, cfg.Width, cfg.Height)
}
