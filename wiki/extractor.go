package wiki

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BurgerEntry is one normalized burger-of-the-day item
type BurgerEntry struct {
	Name        string
	Description string // parenthesized when present
}

// GagsData is the structured result of one episode's Gags subpage. Empty
// fields mean the page had nothing usable for them.
type GagsData struct {
	StoreNextDoor    string
	PestControlTruck string
	Burgers          []BurgerEntry
}

var (
	quoteEdgeRe  = regexp.MustCompile(`^["'‘’“”]+|["'‘’“”]+$`)
	separatorRe  = regexp.MustCompile(`\s+[-–—]\s+`)
	trailParenRe = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)$`)
	characterRe  = regexp.MustCompile(`(?i)^(bob|gene|tina|linda|louise):?$`)
)

// normalizeBurger splits a raw emphasized fragment into a burger name and an
// optional parenthesized description. ok is false for fragments the denylist
// rejects.
func normalizeBurger(fragment, episodeTitle string) (name, description string, ok bool) {
	name = strings.TrimSpace(quoteEdgeRe.ReplaceAllString(fragment, ""))

	if loc := separatorRe.FindStringIndex(name); loc != nil {
		description = strings.TrimSpace(name[loc[1]:])
		name = strings.TrimSpace(name[:loc[0]])
	} else if m := trailParenRe.FindStringSubmatch(name); m != nil {
		name = strings.TrimSpace(m[1])
		description = "(" + strings.TrimSpace(m[2]) + ")"
	}

	name = strings.TrimSpace(quoteEdgeRe.ReplaceAllString(name, ""))
	lower := strings.ToLower(name)

	// Garbage fragments the wiki mixes into the burger lists
	switch {
	case len(name) < 3,
		strings.Contains(lower, "burger of the day"),
		characterRe.MatchString(name),
		lower == "none",
		strings.Contains(lower, "no burgers"),
		strings.Contains(lower, "prices"),
		lower == "running gags",
		lower == strings.ToLower(episodeTitle),
		strings.Contains(lower, "end credits sequence"):
		return "", "", false
	}

	if description != "" && !(strings.HasPrefix(description, "(") && strings.HasSuffix(description, ")")) {
		description = "(" + description + ")"
	}

	return name, description, true
}

func (d *GagsData) addBurger(fragment, episodeTitle string) {
	name, description, ok := normalizeBurger(fragment, episodeTitle)
	if !ok {
		return
	}

	for _, b := range d.Burgers {
		if b.Name == name {
			return
		}
	}
	d.Burgers = append(d.Burgers, BurgerEntry{Name: name, Description: description})
}

// sectionFragments collects the emphasized text between a heading and the
// next heading of the same or higher level.
func sectionFragments(heading *goquery.Selection) []string {
	var fragments []string

	for next := heading.Next(); next.Length() > 0 && !next.Is("h2") && !next.Is("h3"); next = next.Next() {
		next.Find("b, strong").Each(func(_ int, bold *goquery.Selection) {
			text := strings.TrimSpace(bold.Text())
			if len(text) > 2 {
				fragments = append(fragments, text)
			}
		})
	}

	return fragments
}

// firstNamed picks the first fragment that is not a restatement of the
// section heading itself
func firstNamed(fragments []string, headingPhrase string) string {
	for _, f := range fragments {
		if !strings.Contains(strings.ToLower(f), headingPhrase) && len(f) > 2 {
			return f
		}
	}
	return ""
}

// ExtractGags parses an episode's Gags subpage document into structured
// store/truck/burger records.
func ExtractGags(doc *goquery.Document, episodeTitle string) GagsData {
	data := GagsData{}
	var fallback []string

	doc.Find("#mw-content-text").Find("h2, h3").Each(func(_ int, heading *goquery.Selection) {
		headingText := strings.ToLower(heading.Text())
		fragments := sectionFragments(heading)
		if len(fragments) == 0 {
			return
		}

		// The generic gags list doubles as a backup burger source
		if strings.Contains(headingText, "running gags") || strings.TrimSpace(headingText) == "gags" {
			fallback = append(fallback, fragments...)
		}

		switch {
		case strings.Contains(headingText, "store next door"):
			if name := firstNamed(fragments, "store next door"); name != "" {
				data.StoreNextDoor = name
			}
		case strings.Contains(headingText, "pest control"):
			if name := firstNamed(fragments, "pest control truck"); name != "" {
				data.PestControlTruck = name
			}
		case strings.Contains(headingText, "burger of the day"):
			for _, f := range fragments {
				data.addBurger(f, episodeTitle)
			}
		}
	})

	// Replay over the catch-all section when the dedicated one gave nothing
	if len(data.Burgers) == 0 {
		for _, f := range fallback {
			if data.StoreNextDoor != "" && f == data.StoreNextDoor {
				continue
			}
			if data.PestControlTruck != "" && f == data.PestControlTruck {
				continue
			}
			data.addBurger(f, episodeTitle)
		}
	}

	return data
}

// ScrapeGagsPage fetches and extracts an episode's Gags subpage. Episodes
// without one are expected; a fetch failure yields an empty result, never an
// error.
func (c *Client) ScrapeGagsPage(episodeURL, episodeTitle string) GagsData {
	doc, err := c.fetch(episodeURL + "/Gags")
	if err != nil {
		return GagsData{}
	}
	return ExtractGags(doc, episodeTitle)
}
