package vehicles

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Locator finds the raw text of one field inside a vehicle page.
// Scope selects candidate nodes, Label narrows them down to the one
// whose text mentions the field's on-page caption, and Value/Sibling
// walk from there to the node holding the actual text.
//
// Label matching is a case-sensitive substring check, mirroring the
// captions as they appear on the wiki ("Max speed" must not match
// "Max Speed Limit (IAS)").
type Locator struct {
	// CSS selector for candidate nodes
	Scope string
	// substring the candidate's text must contain; empty matches all
	Label string
	// optional selector for a following sibling of the candidate to
	// descend into before resolving Value
	Sibling string
	// optional selector for the descendant holding the value text;
	// empty means the candidate's (or sibling's) own text
	Value string
}

// DocumentSource is the capability the assembler consumes. How the
// underlying page was fetched or rendered is not its concern.
type DocumentSource interface {
	// Locate returns the first value text the locator finds,
	// or ok=false when the page has no such field.
	Locate(loc Locator) (string, bool)
	// LocateAll returns every value text the locator finds, in
	// document order.
	LocateAll(loc Locator) []string
}

// Document implements DocumentSource over a parsed HTML page.
type Document struct {
	root *goquery.Document
}

func NewDocument(doc *goquery.Document) Document {
	return Document{root: doc}
}

// ParseDocument is a convenience for tests and fixtures.
func ParseDocument(r io.Reader) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Document{}, err
	}
	return Document{root: doc}, nil
}

func (d Document) Locate(loc Locator) (string, bool) {
	all := d.LocateAll(loc)
	if len(all) == 0 {
		return "", false
	}
	return all[0], true
}

func (d Document) LocateAll(loc Locator) []string {
	var out []string
	d.root.Find(loc.Scope).Each(func(_ int, candidate *goquery.Selection) {
		if loc.Label != "" && !strings.Contains(candidate.Text(), loc.Label) {
			return
		}

		target := candidate
		if loc.Sibling != "" {
			target = candidate.NextAllFiltered(loc.Sibling).First()
			if target.Length() == 0 {
				return
			}
		}

		// raw text only: cleanup is the normalizer's job
		if loc.Value == "" {
			out = append(out, strings.TrimSpace(target.Text()))
			return
		}
		target.Find(loc.Value).Each(func(_ int, value *goquery.Selection) {
			out = append(out, strings.TrimSpace(value.Text()))
		})
	})
	return out
}
