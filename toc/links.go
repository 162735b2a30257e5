package toc

import (
	"regexp"
	"strings"

	"docasm/common"
)

var (
	// [text](path.md#fragment), optional "!" is captured to leave images alone
	strictLinkRe = regexp.MustCompile(`(!?)(\[[^\]\n]*\])\(([^()\s]*?)\.md(#[^()\s]*)?\)`)
	// (anything.md#fragment) anywhere on a line
	looseLinkRe = regexp.MustCompile(`\([^()\n]*?\.md(#[^()\s]*)?\)`)
)

// RewriteLinks turns references to other markdown files into references to
// anchors in the same document: only "#fragment" part of the target is kept,
// target without fragment becomes empty.
func RewriteLinks(body string, mode common.LinkMode) string {
	if mode == common.LinkModeLoose {
		return looseLinkRe.ReplaceAllString(body, "($1)")
	}
	return strictLinkRe.ReplaceAllStringFunc(body, func(link string) string {
		m := strictLinkRe.FindStringSubmatch(link)
		if m[1] == "!" || strings.Contains(m[3], "://") {
			return link
		}
		return m[2] + "(" + m[4] + ")"
	})
}
