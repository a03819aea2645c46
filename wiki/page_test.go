package wiki

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const episodePageHTML = `
<div>
  <aside class="portable-infobox">
    <img src="https://static.example.org/images/crawl_space.jpg/revision/latest?cb=123"/>
  </aside>
  <div id="mw-content-text"><div class="mw-parser-output">
    <p>Short lead.</p>
    <h2><span class="mw-headline">Plot</span></h2>
    <p>Bob gets stuck in the crawl space while fixing a leak and refuses to come out,
    leaving Linda to run the restaurant alone.[1] The kids are delighted.[2]</p>
  </div></div>
</div>`

func TestExtractEpisodeDetails(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(episodePageHTML))
	if err != nil {
		t.Fatal(err)
	}

	details := ExtractEpisodeDetails(doc)

	if details.ImageURL != "https://static.example.org/images/crawl_space.jpg" {
		t.Errorf("image URL = %q", details.ImageURL)
	}
	if !strings.HasPrefix(details.PlotSummary, "Bob gets stuck") {
		t.Errorf("plot summary = %q", details.PlotSummary)
	}
	if strings.Contains(details.PlotSummary, "[1]") {
		t.Errorf("citations not stripped: %q", details.PlotSummary)
	}
}

func TestExtractEpisodeDetailsFallsBackToLead(t *testing.T) {
	html := `<div id="mw-content-text"><div class="mw-parser-output">
	<p>This episode follows the Belcher family on an overnight treasure hunt under the taffy factory.</p>
	</div></div>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}

	details := ExtractEpisodeDetails(doc)
	if !strings.HasPrefix(details.PlotSummary, "This episode follows") {
		t.Errorf("lead fallback failed: %q", details.PlotSummary)
	}
}

func TestExtractEpisodeDetailsRejectsShortAndPlaceholder(t *testing.T) {
	html := `<div>
	  <aside class="portable-infobox"><img src="data:image/gif;base64,abc"/></aside>
	  <div id="mw-content-text"><div class="mw-parser-output"><p>Too short.</p></div></div>
	</div>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}

	details := ExtractEpisodeDetails(doc)
	if details.ImageURL != "" {
		t.Errorf("placeholder image accepted: %q", details.ImageURL)
	}
	if details.PlotSummary != "" {
		t.Errorf("short paragraph accepted: %q", details.PlotSummary)
	}
}
