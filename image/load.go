package image

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
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	_ "golang.org/x/image/webp"
)

// DefaultTimeout bounds a single image download.
const DefaultTimeout = 30 * time.Second

// IsURL reports whether src names an HTTP(S) resource rather than a file.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Load loads an image from a file path or, when src is an HTTP(S) URL,
// downloads and decodes it.
func Load(ctx context.Context, src string) (image.Image, error) {
	if src == "" {
		return nil, errors.New("image source cannot be empty")
	}
	if IsURL(src) {
		return Fetch(ctx, src)
	}

	path, e := homedir.Expand(src)
	if e != nil {
		return nil, errors.Wrapf(e, "expanding %s", src)
	}

	f, e := os.Open(path)
	if e != nil {
		return nil, errors.Wrap(e, "opening image")
	}
	defer f.Close()

	return Decode(f)
}

// Fetch downloads the image at url and decodes it.
func Fetch(ctx context.Context, url string) (image.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	req, e := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if e != nil {
		return nil, errors.Wrap(e, "creating request")
	}
	req.Header.Set("User-Agent", "colorweave")

	resp, e := http.DefaultClient.Do(req)
	if e != nil {
		return nil, errors.Wrapf(e, "fetching %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: HTTP %d", url, resp.StatusCode)
	}

	data, e := io.ReadAll(resp.Body)
	if e != nil {
		return nil, errors.Wrap(e, "reading response body")
	}

	return Decode(bytes.NewReader(data))
}

// Decode decodes any registered format (JPEG, PNG, GIF, WebP).
func Decode(r io.Reader) (image.Image, error) {
	i, format, e := image.Decode(r)
	if e != nil {
		return nil, errors.Wrapf(e, "decoding image (format: %q)", format)
	}

	return i, nil
}
