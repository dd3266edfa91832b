package requirements

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptionText_PlainTextPassesThrough(t *testing.T) {
	text := "5+ years of Go experience required."

	assert.Equal(t, text, DescriptionText(text))
}

func TestDescriptionText_StripsMarkup(t *testing.T) {
	html := "<div>\n<h2>Requirements</h2>\n<ul>\n<li>5+ years of Go</li>\n<li>Bachelor's degree</li>\n</ul>\n</div>"

	assert.Equal(t, "Requirements 5+ years of Go Bachelor's degree", DescriptionText(html))
}

func TestDescriptionText_RemovesScriptAndStyle(t *testing.T) {
	html := "<p>Senior role</p><script>track();</script><style>p{color:red}</style>"

	assert.Equal(t, "Senior role", DescriptionText(html))
}

func TestDescriptionText_StrippedTextStillNormalizes(t *testing.T) {
	html := "<p><strong>Senior</strong> engineer, <em>7 years</em> experience, Master's degree.</p>"

	req := Normalize(DescriptionText(html), "", "")
	assert.Equal(t, LevelSenior, req.Level)
	assert.Equal(t, 7, req.RequiredYears)
	assert.Equal(t, CredentialMaster, req.Credential)
}
