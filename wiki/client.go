package wiki

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	BaseURL          = "https://bobs-burgers.fandom.com"
	EpisodeGuidePath = "/wiki/Episode_Guide"

	userAgent = "BurgerDaydle-Bot/1.0 (burgerofthe.day)"

	// Fixed inter-request delay; the wiki is fetched strictly sequentially
	requestDelay = 300 * time.Millisecond
)

// Client fetches wiki pages one at a time with a fixed delay between
// requests so the source's rate limits are respected.
type Client struct {
	http      *http.Client
	baseURL   string
	lastFetch time.Time
}

func NewClient() *Client {
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: BaseURL,
	}
}

// NewClientWithBase is used by tests to point the client at a local server
func NewClientWithBase(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

func (c *Client) fetch(path string) (*goquery.Document, error) {
	if wait := requestDelay - time.Since(c.lastFetch); wait > 0 && !c.lastFetch.IsZero() {
		time.Sleep(wait)
	}
	c.lastFetch = time.Now()

	url := path
	if strings.HasPrefix(path, "/") {
		url = c.baseURL + path
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("failed to fetch %s: %d", url, resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}
