// Package chapters detects chapter boundaries in plain text with regex
// heuristics. Detection is intentionally loose — it structures presentation
// and chapter targeting, it is not a parser.
package chapters

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	// Boundary positions closer than this are the same heading detected twice
	dedupWindow = 100
	// Chapters shorter than this are merged forward (except the final one)
	minChapterChars = 2000
	// All-caps detection only kicks in when structural headings are this sparse
	sparseHeadingCount = 3
)

// Chapter is one detected chapter span. End is exclusive; extraction is
// offset slicing, never reparsing.
type Chapter struct {
	ChapterID string `json:"chapter_id"`
	Title     string `json:"title"`
	StartChar int    `json:"start_char"`
	EndChar   int    `json:"end_char"`
}

var (
	// CHAPTER 3, Part II, Section 1.2, with an optional title after
	structuralRe = regexp.MustCompile(`(?im)^[ \t]*(chapter|part|section)[ \t]+([0-9]+|[IVXLCDM]+|[a-z]+)\b[^\n]*$`)
	// A roman numeral alone on a line
	romanRe = regexp.MustCompile(`(?m)^[ \t]*[IVXLCDM]{1,7}\.?[ \t]*$`)
	// 3. Title / 3.1 Title / 3) Title
	numberedRe = regexp.MustCompile(`(?m)^[ \t]*\d+(\.\d+)*[.)][ \t]+\S[^\n]*$`)
	// A short shouted line, used only as a fallback signal
	allCapsRe = regexp.MustCompile(`(?m)^[A-Z][A-Z0-9 ,:;'\-]{3,60}$`)
)

type boundary struct {
	pos   int
	title string
}

// Split returns ordered chapter spans over the full text. A text with no
// detectable headings comes back as a single chapter.
func Split(text string) []Chapter {
	bounds := findBoundaries(text)
	if len(bounds) == 0 {
		return []Chapter{{ChapterID: "ch_1", Title: "Full text", StartChar: 0, EndChar: len(text)}}
	}

	// Leading front matter before the first heading becomes chapter 0
	if bounds[0].pos > 0 {
		bounds = append([]boundary{{pos: 0, title: "Front matter"}}, bounds...)
	}

	var chapters []Chapter
	for i, b := range bounds {
		end := len(text)
		if i+1 < len(bounds) {
			end = bounds[i+1].pos
		}
		chapters = append(chapters, Chapter{
			Title:     b.title,
			StartChar: b.pos,
			EndChar:   end,
		})
	}

	chapters = dropShort(chapters)
	for i := range chapters {
		chapters[i].ChapterID = fmt.Sprintf("ch_%d", i+1)
	}
	return chapters
}

// Extract slices the chapter span out of the full text, clamping offsets.
func Extract(text string, ch Chapter) string {
	start, end := ch.StartChar, ch.EndChar
	if start < 0 {
		start = 0
	}
	if start >= len(text) {
		return ""
	}
	if end > len(text) || end <= start {
		end = len(text)
	}
	return text[start:end]
}

// DetectHeadings returns the detected heading lines in order — the sampler
// includes them in its excerpt.
func DetectHeadings(text string) []string {
	bounds := findBoundaries(text)
	titles := make([]string, len(bounds))
	for i, b := range bounds {
		titles[i] = b.title
	}
	return titles
}

// findBoundaries runs all detectors and merges their positions. All-caps
// lines count only when the structural detectors found little — otherwise
// ordinary shouted prose produces phantom chapters.
func findBoundaries(text string) []boundary {
	var bounds []boundary
	collect := func(re *regexp.Regexp) int {
		locs := re.FindAllStringIndex(text, -1)
		for _, loc := range locs {
			bounds = append(bounds, boundary{
				pos:   loc[0],
				title: strings.TrimSpace(text[loc[0]:loc[1]]),
			})
		}
		return len(locs)
	}

	structural := collect(structuralRe)
	structural += collect(romanRe)
	structural += collect(numberedRe)
	if structural < sparseHeadingCount {
		collect(allCapsRe)
	}

	sort.Slice(bounds, func(i, j int) bool { return bounds[i].pos < bounds[j].pos })
	return dedupe(bounds)
}

// dedupe drops boundaries within the dedup window of the previous one.
func dedupe(bounds []boundary) []boundary {
	var out []boundary
	for _, b := range bounds {
		if len(out) > 0 && b.pos-out[len(out)-1].pos < dedupWindow {
			continue
		}
		out = append(out, b)
	}
	return out
}

// dropShort merges too-short chapters into their successor. The final
// chapter is kept regardless of length.
func dropShort(chapters []Chapter) []Chapter {
	var out []Chapter
	for i, ch := range chapters {
		size := ch.EndChar - ch.StartChar
		if size < minChapterChars && i < len(chapters)-1 {
			// Fold this span into the next chapter
			chapters[i+1].StartChar = ch.StartChar
			continue
		}
		out = append(out, ch)
	}
	return out
}
