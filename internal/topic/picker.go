// Package topic selects a lesson topic for the day from the Wikimedia
// pageviews ranking.
package topic

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// titlePattern keeps only plain article titles. Anything with namespace
// colons, unicode or URL-escaped bytes is skipped.
var titlePattern = regexp.MustCompile(`^[A-Za-z0-9 _()-]+$`)

// Picker fetches the top-viewed article list for a recent day and picks
// one at random. It never fails: any upstream problem yields Fallback.
type Picker struct {
	BaseURL  string
	Fallback string
	Client   *http.Client

	now func() time.Time
}

func New(baseURL, fallback string) *Picker {
	return &Picker{
		BaseURL:  strings.TrimSuffix(baseURL, "/"),
		Fallback: fallback,
		Client:   &http.Client{Timeout: 10 * time.Second},
		now:      time.Now,
	}
}

type topArticles struct {
	Items []struct {
		Articles []struct {
			Article string `json:"article"`
		} `json:"articles"`
	} `json:"items"`
}

// Pick returns a topic for today. The ranking for two days ago is used;
// more recent days are often not published yet.
func (p *Picker) Pick(ctx context.Context) string {
	day := p.now().UTC().AddDate(0, 0, -2)
	u := fmt.Sprintf("%s/%04d/%02d/%02d", p.BaseURL, day.Year(), day.Month(), day.Day())

	topic, err := p.fetch(ctx, u)
	if err != nil {
		log.Printf("topic: falling back to %q: %v", p.Fallback, err)
		return p.Fallback
	}
	return topic
}

func (p *Picker) fetch(ctx context.Context, u string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("pageviews API: %s", resp.Status)
	}

	var data topArticles
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}
	if len(data.Items) == 0 {
		return "", fmt.Errorf("pageviews API: no items")
	}

	var candidates []string
	for _, a := range data.Items[0].Articles {
		name := a.Article
		if strings.HasPrefix(name, "Special:") || strings.Contains(name, "Main_Page") {
			continue
		}
		if !titlePattern.MatchString(name) {
			continue
		}
		candidates = append(candidates, name)
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("pageviews API: no usable articles")
	}

	name := candidates[rand.Intn(len(candidates))]
	name = strings.ReplaceAll(name, "_", " ")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	return name, nil
}
