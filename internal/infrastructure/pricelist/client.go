package pricelist

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/oilwatch/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client downloads the published price-list PDF and extracts its text page
// by page. The rest of the pipeline consumes only the page text, never the
// fetch mechanics.
type Client struct {
	httpClient  *http.Client
	url         string
	rateLimiter *rate.Limiter
	debug       bool
}

var _ domain.DocumentSource = (*Client)(nil)

// NewClient creates a price-list client for a fixed document URL.
func NewClient(url string) *Client {
	// The publisher updates the document at most a few times a month; one
	// request per second with a small burst is more than enough headroom.
	limiter := rate.NewLimiter(rate.Limit(1), 3)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		url:         url,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose request logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// exponentialBackoff returns the wait before retry n (1-based).
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(250<<attempt) * time.Millisecond
}

// FetchPages downloads the document and returns its plain text, one string
// per page in document order. Transient failures are retried up to 3 times.
func (c *Client) FetchPages(ctx context.Context) ([]string, error) {
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		data, err := c.download(ctx)
		if err != nil {
			if c.debug {
				log.Printf("[PRICELIST] download error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			select {
			case <-time.After(exponentialBackoff(attempt)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			continue
		}

		pages, err := extractPages(data)
		if err != nil {
			// A malformed body is not transient; don't retry.
			return nil, err
		}
		if c.debug {
			log.Printf("[PRICELIST] fetched %d bytes, %d pages", len(data), len(pages))
		}
		return pages, nil
	}

	return nil, lastErr
}

// download performs one HTTP GET of the document.
func (c *Client) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "oilwatch/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrFetchFailed, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// extractPages pulls row-ordered plain text out of every page of the PDF.
func extractPages(data []byte) ([]string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentUnreadable, err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}
		pages = append(pages, pageText(p))
	}

	if len(pages) == 0 {
		return nil, domain.ErrDocumentUnreadable
	}
	return pages, nil
}

// pageText joins a page's text runs into newline-separated rows.
func pageText(p pdf.Page) string {
	rows, err := p.GetTextByRow()
	if err != nil {
		return ""
	}

	var b strings.Builder
	for _, row := range rows {
		for _, word := range row.Content {
			b.WriteString(word.S)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
