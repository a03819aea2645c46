package wiki

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const guideHTML = `
<div>
  <h2>Season 1</h2>
  <table class="wiki fries-background">
    <tr><th>No.</th><th>Title</th><th>Airdate</th></tr>
    <tr><td>1</td><td><a href="/wiki/Human_Flesh">"Human Flesh"</a></td><td>January 9, 2011</td></tr>
    <tr><td>2</td><td><a href="/wiki/Crawl_Space">"Crawl Space"</a></td><td>January 16, 2011</td></tr>
    <tr><td colspan="3">Season finale</td></tr>
  </table>
  <h2>Season 2</h2>
  <table class="wiki fries-background">
    <tr><td>1</td><td><a href="/wiki/The_Belchies">"The Belchies"</a></td><td>March 11, 2012</td></tr>
    <tr><td>2</td><td><a href="/wiki/Category:Episodes">Category link</a></td><td>skip</td></tr>
    <tr><td>3</td><td><a href="/wiki/The_Belchies">"The Belchies"</a></td><td>duplicate</td></tr>
  </table>
  <table class="wiki fries-background">
    <tr><td>1</td><td><a href="/wiki/Orphaned_Row">"Orphaned Row"</a></td><td>no heading change</td></tr>
  </table>
</div>`

func TestParseEpisodeGuide(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(guideHTML))
	if err != nil {
		t.Fatal(err)
	}

	episodes := ParseEpisodeGuide(doc)

	if len(episodes) != 4 {
		t.Fatalf("got %d episodes, want 4: %+v", len(episodes), episodes)
	}

	first := episodes[0]
	if first.Title != "Human Flesh" || first.Season != 1 || first.EpisodeNumber != 1 {
		t.Errorf("first episode = %+v", first)
	}
	if first.URL != BaseURL+"/wiki/Human_Flesh" {
		t.Errorf("first URL = %s", first.URL)
	}

	second := episodes[1]
	if second.Title != "Crawl Space" || second.EpisodeNumber != 2 {
		t.Errorf("second episode = %+v", second)
	}

	// Season 2 numbering restarts at 1; the category link and the duplicate
	// row are both dropped
	third := episodes[2]
	if third.Season != 2 || third.EpisodeNumber != 1 || third.Title != "The Belchies" {
		t.Errorf("third episode = %+v", third)
	}
}

func TestParseEpisodeGuideEmptyDocument(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<div><p>No tables.</p></div>"))
	if err != nil {
		t.Fatal(err)
	}

	if episodes := ParseEpisodeGuide(doc); len(episodes) != 0 {
		t.Errorf("empty page produced %d episodes", len(episodes))
	}
}
