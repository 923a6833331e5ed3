// Package assets loads game sprites asynchronously.
//
// Renderers hold an *Image handle from the moment a game starts and draw it
// only once it has finished loading, so a slow or failed load never stalls a
// frame.
package assets

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

//go:embed images/*.png
var embedded embed.FS

// EmbedPrefix marks a source as one of the bundled images.
const EmbedPrefix = "embed:"

// ErrNotLoaded is returned by Image.Err while a load is still in flight.
var ErrNotLoaded = errors.New("assets: image not loaded yet")

// Image is a handle to an image that may still be loading.
type Image struct {
	src  string
	img  atomic.Pointer[image.Image]
	done chan struct{}
	err  error // Written once before done is closed
}

// Source returns the source the image was requested from.
func (i *Image) Source() string {
	return i.src
}

// Get returns the decoded image and true once loading succeeded.
// A nil handle is treated as never loaded.
func (i *Image) Get() (image.Image, bool) {
	if i == nil {
		return nil, false
	}
	p := i.img.Load()
	if p == nil {
		return nil, false
	}
	return *p, true
}

// Done returns a channel closed when loading finished, successfully or not.
func (i *Image) Done() <-chan struct{} {
	return i.done
}

// Err returns the load error, ErrNotLoaded while loading, or nil on success.
func (i *Image) Err() error {
	select {
	case <-i.done:
		return i.err
	default:
		return ErrNotLoaded
	}
}

// Wait blocks until the image has loaded or ctx is done.
func (i *Image) Wait(ctx context.Context) error {
	select {
	case <-i.done:
		return i.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ready wraps an already-decoded image in a loaded handle.
func Ready(src string, img image.Image) *Image {
	h := &Image{src: src, done: make(chan struct{})}
	h.img.Store(&img)
	close(h.done)
	return h
}

// Loader fetches and decodes images.
type Loader struct {
	client *http.Client
	logger *log.Logger

	mu    sync.Mutex
	cache map[string]*Image
}

// NewLoader creates a loader. A nil logger discards log output.
func NewLoader(logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
		cache:  make(map[string]*Image),
	}
}

// Load starts loading src in the background and returns its handle.
// Repeated calls for the same source share one handle.
func (l *Loader) Load(ctx context.Context, src string) *Image {
	l.mu.Lock()
	if h, ok := l.cache[src]; ok {
		l.mu.Unlock()
		return h
	}
	h := &Image{src: src, done: make(chan struct{})}
	l.cache[src] = h
	l.mu.Unlock()

	go func() {
		defer close(h.done)
		img, err := l.Decode(ctx, src)
		if err != nil {
			h.err = err
			l.logger.Warn("image load failed", "src", src, "error", err)
			return
		}
		h.img.Store(&img)
		l.logger.Debug("image loaded", "src", src, "size", img.Bounds().Size())
	}()
	return h
}

// Decode fetches and decodes src synchronously.
// src is "embed:<name>", an http(s) URL, or a file path.
func (l *Loader) Decode(ctx context.Context, src string) (image.Image, error) {
	rc, err := l.open(ctx, src)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, _, err := image.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", src, err)
	}
	return img, nil
}

// open resolves a source to a byte stream.
func (l *Loader) open(ctx context.Context, src string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(src, EmbedPrefix):
		name := "images/" + strings.TrimPrefix(src, EmbedPrefix)
		f, err := embedded.Open(name)
		if err != nil {
			return nil, fmt.Errorf("assets: no bundled image %s: %w", src, err)
		}
		return f, nil

	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return nil, fmt.Errorf("assets: bad url %s: %w", src, err)
		}
		resp, err := l.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("assets: cannot fetch %s: %w", src, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("assets: cannot fetch %s: status %s", src, resp.Status)
		}
		return resp.Body, nil

	default:
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("assets: cannot open %s: %w", src, err)
		}
		return f, nil
	}
}
