package httpx

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocolly/colly/v2"
)

const defaultUserAgent = "quiz-tools/1.0"

// LocalFetcher serves saved pages from disk through colly, so callers can
// register the same OnHTML/OnResponse callbacks they would use online.
type LocalFetcher struct {
	userAgent string
	transport *http.Transport
}

type FetchError struct {
	Status int
	Path   string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("fetch %s (status %d)", e.Path, e.Status)
	}
	return fmt.Sprintf("fetch %s (status %d): %v", e.Path, e.Status, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func NewLocalFetcher(userAgent string) *LocalFetcher {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	t := &http.Transport{}
	t.RegisterProtocol("file", http.NewFileTransport(http.Dir("/")))
	return &LocalFetcher{
		userAgent: userAgent,
		transport: t,
	}
}

// Fetch loads path and runs the callbacks register installs on the collector.
func (f *LocalFetcher) Fetch(ctx context.Context, path string, register func(*colly.Collector)) error {
	_, err := f.fetch(ctx, path, register)
	return err
}

// FetchBytes returns the raw page body together with the Content-Type the
// file transport reported for it.
func (f *LocalFetcher) FetchBytes(ctx context.Context, path string) ([]byte, string, error) {
	var (
		body        []byte
		contentType string
	)
	err := f.Fetch(ctx, path, func(c *colly.Collector) {
		c.OnResponse(func(r *colly.Response) {
			body = append([]byte(nil), r.Body...)
			if r.Headers != nil {
				contentType = r.Headers.Get("Content-Type")
			}
		})
	})
	if err != nil {
		return nil, "", err
	}
	return body, contentType, nil
}

func (f *LocalFetcher) fetch(ctx context.Context, path string, register func(*colly.Collector)) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, fs.ErrNotExist) {
			status = http.StatusNotFound
		}
		return status, &FetchError{Status: status, Path: path, Err: err}
	}
	if info.IsDir() {
		return http.StatusBadRequest, &FetchError{Status: http.StatusBadRequest, Path: path, Err: errors.New("is a directory")}
	}

	target, err := FileURL(path)
	if err != nil {
		return 0, &FetchError{Path: path, Err: err}
	}

	status, err := f.fetchOnce(ctx, target, register)
	if err != nil {
		return status, &FetchError{Status: status, Path: path, Err: err}
	}
	return status, nil
}

func (f *LocalFetcher) fetchOnce(ctx context.Context, target string, register func(*colly.Collector)) (int, error) {
	c := f.newCollector()
	if register != nil {
		register(c)
	}

	status := 0
	var reqErr error
	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
	})
	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			status = r.StatusCode
		}
		reqErr = err
	})

	collyCtx := colly.NewContext()
	collyCtx.Put("ctx", ctx)

	if err := c.Request(http.MethodGet, target, nil, collyCtx, nil); err != nil {
		return status, err
	}
	if reqErr != nil {
		return status, reqErr
	}
	if err := ctx.Err(); err != nil {
		return status, err
	}
	if status >= 400 {
		return status, fmt.Errorf("status %d", status)
	}
	if status == 0 {
		status = http.StatusOK
	}
	return status, nil
}

func (f *LocalFetcher) newCollector() *colly.Collector {
	c := colly.NewCollector(
		colly.UserAgent(f.userAgent),
		colly.MaxBodySize(0),
	)
	c.WithTransport(f.transport)

	c.OnRequest(func(r *colly.Request) {
		ctx := context.Background()
		if v := r.Ctx.GetAny("ctx"); v != nil {
			if reqCtx, ok := v.(context.Context); ok {
				ctx = reqCtx
			}
		}
		if ctx.Err() != nil {
			r.Abort()
		}
	})

	return c
}

// FileURL turns a filesystem path into an absolute file:// URL.
func FileURL(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String(), nil
}
