// Package common keeps enumerations shared between configuration and the
// assembler so neither has to import the other.
package common

//go:generate go tool go-enum --marshal --names

// Scope of cross-chapter link rewriting. "strict" touches only inline link
// syntax, "loose" any parenthesized .md reference on a line.
// ENUM(strict, loose)
type LinkMode string

// How chapter anchors are derived from titles.
// ENUM(plain, transliterate)
type AnchorMode string

// What to do with front matter blocks at the top of chapter files.
// ENUM(keep, strip)
type FrontMatterMode string
