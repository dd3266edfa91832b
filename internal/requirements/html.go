package requirements

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DescriptionText returns the plain-text form of a job description.
// Descriptions synced from job boards frequently arrive as HTML fragments;
// markup would defeat the keyword rules, so tags are stripped and whitespace
// collapsed before normalization. Plain-text input passes through unchanged.
func DescriptionText(description string) string {
	if !strings.Contains(description, "<") {
		return description
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		// Unparsable markup: fall back to the raw text rather than dropping
		// the description entirely.
		return description
	}

	// Drop script/style content that doc.Text() would otherwise include.
	doc.Find("script, style").Remove()

	return strings.Join(strings.Fields(doc.Text()), " ")
}
