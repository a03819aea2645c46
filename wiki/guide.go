package wiki

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// Episode is one row of the wiki's Episode Guide
type Episode struct {
	Title         string
	URL           string
	Season        int
	EpisodeNumber int
}

var seasonHeadingRe = regexp.MustCompile(`(?i)Season\s*(\d+)`)

// ParseEpisodeGuide walks the per-season tables of the Episode Guide page.
// Episode numbers restart at 1 within each season; rows are deduplicated by
// link target.
func ParseEpisodeGuide(doc *goquery.Document) []Episode {
	var episodes []Episode
	currentSeason := 0
	episodeInSeason := 0
	seenURLs := map[string]bool{}

	doc.Find("table.wiki.fries-background").Each(func(_ int, table *goquery.Selection) {
		// The season number lives in the nearest preceding heading
		prev := table.Prev()
		for prev.Length() > 0 && !prev.Is("h2") && !prev.Is("h3") {
			prev = prev.Prev()
		}

		if prev.Length() > 0 {
			if m := seasonHeadingRe.FindStringSubmatch(prev.Text()); m != nil {
				// Seasons can span several tables; numbering only restarts
				// when the heading names a different season
				if season, _ := strconv.Atoi(m[1]); season != currentSeason {
					currentSeason = season
					episodeInSeason = 0
				}
			}
		}

		if currentSeason == 0 {
			return
		}

		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")

			// Episode rows have several cells; summary rows span one
			if cells.Length() < 3 {
				return
			}

			link := cells.Eq(1).Find(`a[href^="/wiki/"]`).First()
			href, ok := link.Attr("href")
			if !ok || strings.Contains(href, ":") || strings.Contains(href, "Season") {
				return
			}

			title := strings.Trim(strings.TrimSpace(link.Text()), `"'`)
			if len(title) < 2 {
				return
			}

			if seenURLs[href] {
				return
			}
			seenURLs[href] = true

			episodeInSeason++
			episodes = append(episodes, Episode{
				Title:         title,
				URL:           BaseURL + href,
				Season:        currentSeason,
				EpisodeNumber: episodeInSeason,
			})
		})
	})

	return episodes
}

// ScrapeEpisodeList fetches the Episode Guide and returns every episode it
// lists
func (c *Client) ScrapeEpisodeList() ([]Episode, error) {
	doc, err := c.fetch(EpisodeGuidePath)
	if err != nil {
		return nil, err
	}

	episodes := ParseEpisodeGuide(doc)
	log.Printf("Found %d episodes in the guide", len(episodes))
	return episodes, nil
}
