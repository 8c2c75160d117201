package source

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/amritsharan/credit-dashboard-hackathon/internal/metrics"
	"github.com/amritsharan/credit-dashboard-hackathon/internal/model"
)

// rssFeed mirrors the Yahoo Finance headline RSS structure.
type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title string    `xml:"title"`
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	PubDate string `xml:"pubDate"`
	GUID    string `xml:"guid"`
}

// YahooRSSNewsSource fetches recent headlines from the Yahoo Finance RSS feed.
type YahooRSSNewsSource struct {
	client  *resty.Client
	limiter *rate.Limiter
}

// NewYahooRSSNewsSource creates a news source with optional proxy support.
func NewYahooRSSNewsSource(proxyURL string) *YahooRSSNewsSource {
	client := resty.New()
	client.SetBaseURL("https://feeds.finance.yahoo.com")
	client.SetTimeout(30 * time.Second)
	client.SetHeader("User-Agent", "Mozilla/5.0")
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &YahooRSSNewsSource{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(2), 4),
	}
}

// SetBaseURL overrides the feed endpoint; used by tests.
func (s *YahooRSSNewsSource) SetBaseURL(baseURL string) {
	s.client.SetBaseURL(baseURL)
}

// Headlines fetches the recent headlines for a ticker in feed order.
func (s *YahooRSSNewsSource) Headlines(ctx context.Context, ticker string) ([]model.Headline, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"s":      ticker,
			"region": "US",
			"lang":   "en-US",
		}).
		Get("/rss/2.0/headline")
	if err != nil {
		metrics.SourceErrors.WithLabelValues("news").Inc()
		return nil, fmt.Errorf("rss fetch: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		metrics.SourceErrors.WithLabelValues("news").Inc()
		return nil, fmt.Errorf("rss fetch: status %d", resp.StatusCode())
	}

	var feed rssFeed
	if err := xml.Unmarshal(resp.Body(), &feed); err != nil {
		metrics.SourceErrors.WithLabelValues("news").Inc()
		return nil, fmt.Errorf("rss decode: %w", err)
	}

	headlines := make([]model.Headline, 0, len(feed.Channel.Items))
	for _, item := range feed.Channel.Items {
		if item.Title == "" {
			continue
		}
		published := item.PubDate
		if published == "" {
			published = time.Now().Format(time.RFC3339)
		}
		headlines = append(headlines, model.Headline{Title: item.Title, Published: published})
	}
	return headlines, nil
}
