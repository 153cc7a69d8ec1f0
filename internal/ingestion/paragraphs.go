package ingestion

import (
	"regexp"
	"strings"
)

// runRE matches a single text run inside WordprocessingML.
var runRE = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)

// xmlUnescaper reverses the entity escaping applied to run text.
var xmlUnescaper = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

// paragraphsToText flattens the document.xml body into plain text: the text
// runs of each paragraph are concatenated, and every paragraph ends with a
// newline. Paragraphs without text runs still contribute a newline, matching
// how word processors render them.
func paragraphsToText(content string) string {
	var sb strings.Builder
	for _, chunk := range strings.Split(content, "</w:p>") {
		idx := strings.Index(chunk, "<w:p")
		if idx < 0 {
			continue
		}
		for _, run := range runRE.FindAllStringSubmatch(chunk[idx:], -1) {
			sb.WriteString(xmlUnescaper.Replace(run[1]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
