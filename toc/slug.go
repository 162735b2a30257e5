package toc

import (
	"strings"

	"github.com/gosimple/slug"

	"docasm/common"
)

// AnchorFunc derives in-document anchor from chapter title.
type AnchorFunc func(title string) string

// Slug lowercases title and joins its words with single hyphens. This is
// what most markdown renderers produce for simple ASCII headings.
func Slug(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}

// Transliterate builds ASCII only anchor, dropping punctuation.
func Transliterate(title string) string {
	return slug.Make(title)
}

// AnchorFor selects anchor derivation for requested mode.
func AnchorFor(mode common.AnchorMode) AnchorFunc {
	if mode == common.AnchorModeTransliterate {
		return Transliterate
	}
	return Slug
}
