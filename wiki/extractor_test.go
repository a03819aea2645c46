package wiki

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestNormalizeBurger(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		wantName string
		wantDesc string
		wantOK   bool
	}{
		{
			name:     "dash separated description",
			fragment: "The Garden of Eden Burger - comes with salad",
			wantName: "The Garden of Eden Burger",
			wantDesc: "(comes with salad)",
			wantOK:   true,
		},
		{
			name:     "parenthesized description",
			fragment: "New Bacon-ings Burger (comes with bacon)",
			wantName: "New Bacon-ings Burger",
			wantDesc: "(comes with bacon)",
			wantOK:   true,
		},
		{
			name:     "quoted name",
			fragment: `"Poutine on the Ritz Burger"`,
			wantName: "Poutine on the Ritz Burger",
			wantOK:   true,
		},
		{
			name:     "en dash separator",
			fragment: "Chile Relleno-You-Didn't Burger – comes with chiles",
			wantName: "Chile Relleno-You-Didn't Burger",
			wantDesc: "(comes with chiles)",
			wantOK:   true,
		},
		{
			name:     "plain name no description",
			fragment: "Bet It All On Black Garlic Burger",
			wantName: "Bet It All On Black Garlic Burger",
			wantOK:   true,
		},
		{
			name:     "character speaker rejected",
			fragment: "Bob:",
			wantOK:   false,
		},
		{
			name:     "character without colon rejected",
			fragment: "Louise",
			wantOK:   false,
		},
		{
			name:     "too short rejected",
			fragment: "Bo",
			wantOK:   false,
		},
		{
			name:     "section restatement rejected",
			fragment: "Burger of the Day",
			wantOK:   false,
		},
		{
			name:     "none placeholder rejected",
			fragment: "None",
			wantOK:   false,
		},
		{
			name:     "no burgers note rejected",
			fragment: "There were no burgers in this episode",
			wantOK:   false,
		},
		{
			name:     "episode title rejected",
			fragment: "Crawl Space",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, desc, ok := normalizeBurger(tt.fragment, "Crawl Space")
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if desc != tt.wantDesc {
				t.Errorf("description = %q, want %q", desc, tt.wantDesc)
			}
		})
	}
}

const gagsPageHTML = `
<div id="mw-content-text">
  <h2>Store Next Door</h2>
  <p><b>Betsy's Heads: Mannequin Restoration</b></p>
  <h2>Pest Control Truck</h2>
  <p><b>Rodent Sleep Riders</b></p>
  <h2>Burger of the Day</h2>
  <ul>
    <li><b>New Bacon-ings Burger</b> - comes with bacon</li>
    <li><b>Bob:</b> not a burger</li>
    <li><b>New Bacon-ings Burger</b></li>
  </ul>
  <h2>Trivia</h2>
  <p><b>Something unrelated entirely</b></p>
</div>`

func TestExtractGags(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(gagsPageHTML))
	if err != nil {
		t.Fatal(err)
	}

	data := ExtractGags(doc, "Crawl Space")

	if data.StoreNextDoor != "Betsy's Heads: Mannequin Restoration" {
		t.Errorf("store = %q", data.StoreNextDoor)
	}
	if data.PestControlTruck != "Rodent Sleep Riders" {
		t.Errorf("truck = %q", data.PestControlTruck)
	}
	if len(data.Burgers) != 1 {
		t.Fatalf("burgers = %+v, want exactly one", data.Burgers)
	}
	if data.Burgers[0].Name != "New Bacon-ings Burger" {
		t.Errorf("burger name = %q", data.Burgers[0].Name)
	}
}

const gagsFallbackHTML = `
<div id="mw-content-text">
  <h2>Running Gags</h2>
  <p><b>The Frond Files Burger</b> - comes with paper trail</p>
  <p><b>Cur Appeal Dog Grooming</b></p>
  <h2>Store Next Door</h2>
  <p><b>Cur Appeal Dog Grooming</b></p>
</div>`

func TestExtractGagsFallbackSkipsStoreName(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(gagsFallbackHTML))
	if err != nil {
		t.Fatal(err)
	}

	data := ExtractGags(doc, "The Frond Files")

	if data.StoreNextDoor != "Cur Appeal Dog Grooming" {
		t.Errorf("store = %q", data.StoreNextDoor)
	}
	if len(data.Burgers) != 1 || data.Burgers[0].Name != "The Frond Files Burger" {
		t.Errorf("fallback burgers = %+v", data.Burgers)
	}
}

func TestExtractGagsEmptyPage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<div id="mw-content-text"><p>Nothing here.</p></div>`))
	if err != nil {
		t.Fatal(err)
	}

	data := ExtractGags(doc, "Some Episode")
	if data.StoreNextDoor != "" || data.PestControlTruck != "" || len(data.Burgers) != 0 {
		t.Errorf("empty page produced data: %+v", data)
	}
}
