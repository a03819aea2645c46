package wiki

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// EpisodeDetails carries the plot summary and infobox image of a main
// episode page
type EpisodeDetails struct {
	PlotSummary string
	ImageURL    string
}

var citationRe = regexp.MustCompile(`\[\d+\]`)

const maxPlotLength = 500

// ExtractEpisodeDetails pulls the infobox still and the opening plot
// paragraph from an episode's main page.
func ExtractEpisodeDetails(doc *goquery.Document) EpisodeDetails {
	data := EpisodeDetails{}

	// Infobox image
	img := doc.Find(".portable-infobox, .infobox").Find("img").First()
	if src, ok := img.Attr("src"); ok {
		src = strings.SplitN(src, "/revision/", 2)[0]
		if src != "" && !strings.Contains(src, "placeholder") && !strings.Contains(src, "data:") {
			data.ImageURL = src
		}
	}

	// Plot paragraph: the one after the Plot heading, else the lead
	var plotText string
	doc.Find("h2 .mw-headline").EachWithBreak(func(_ int, headline *goquery.Selection) bool {
		if !strings.Contains(headline.Text(), "Plot") {
			return true
		}
		plotText = strings.TrimSpace(headline.Closest("h2").NextAllFiltered("p").First().Text())
		return false
	})
	if plotText == "" {
		plotText = strings.TrimSpace(doc.Find("#mw-content-text .mw-parser-output > p").First().Text())
	}

	if len(plotText) > 30 {
		plotText = citationRe.ReplaceAllString(plotText, "")
		if len(plotText) > maxPlotLength {
			plotText = plotText[:maxPlotLength]
		}
		data.PlotSummary = strings.TrimSpace(plotText)
	}

	return data
}

// ScrapeEpisodePage fetches an episode's main page for plot and image.
// Failures are logged and produce an empty result; a missing page is not
// fatal to the run.
func (c *Client) ScrapeEpisodePage(episodeURL string) EpisodeDetails {
	doc, err := c.fetch(episodeURL)
	if err != nil {
		log.Printf("Failed to scrape %s: %v", episodeURL, err)
		return EpisodeDetails{}
	}
	return ExtractEpisodeDetails(doc)
}
