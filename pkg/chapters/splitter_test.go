package chapters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// body returns filler prose long enough to survive the short-chapter merge.
func body(n int) string {
	return strings.Repeat("The argument proceeds by careful steps. ", n/40+1)[:n] + "\n"
}

func TestSplitNoHeadings(t *testing.T) {
	text := body(5000)
	chapters := Split(text)

	require.Len(t, chapters, 1)
	assert.Equal(t, "ch_1", chapters[0].ChapterID)
	assert.Equal(t, "Full text", chapters[0].Title)
	assert.Equal(t, 0, chapters[0].StartChar)
	assert.Equal(t, len(text), chapters[0].EndChar)
}

func TestSplitStructuralHeadings(t *testing.T) {
	text := "Chapter 1: The Problem\n" + body(3000) +
		"Chapter 2: The Method\n" + body(3000) +
		"Chapter 3: The Result\n" + body(3000)

	chapters := Split(text)
	require.Len(t, chapters, 3)
	assert.Equal(t, "Chapter 1: The Problem", chapters[0].Title)
	assert.Equal(t, "Chapter 2: The Method", chapters[1].Title)
	assert.Equal(t, "Chapter 3: The Result", chapters[2].Title)

	// Spans tile the text with no gaps
	assert.Equal(t, 0, chapters[0].StartChar)
	for i := 1; i < len(chapters); i++ {
		assert.Equal(t, chapters[i-1].EndChar, chapters[i].StartChar)
	}
	assert.Equal(t, len(text), chapters[2].EndChar)
}

func TestSplitFrontMatter(t *testing.T) {
	text := body(2500) +
		"Chapter 1\n" + body(3000) +
		"Chapter 2\n" + body(3000)

	chapters := Split(text)
	require.Len(t, chapters, 3)
	assert.Equal(t, "Front matter", chapters[0].Title)
	assert.Equal(t, 0, chapters[0].StartChar)
	assert.Equal(t, "ch_1", chapters[0].ChapterID)
}

func TestSplitMergesShortChapters(t *testing.T) {
	// The middle chapter is far below the minimum and folds into its successor
	text := "Chapter 1\n" + body(3000) +
		"Chapter 2\n" + body(200) +
		"Chapter 3\n" + body(3000)

	chapters := Split(text)
	require.Len(t, chapters, 2)
	assert.Equal(t, "Chapter 1", chapters[0].Title)
	assert.Equal(t, "Chapter 3", chapters[1].Title)
	// The folded span belongs to chapter 3 now
	assert.Equal(t, chapters[0].EndChar, chapters[1].StartChar)
}

func TestSplitKeepsShortFinalChapter(t *testing.T) {
	text := "Chapter 1\n" + body(3000) + "Chapter 2\n" + body(300)

	chapters := Split(text)
	require.Len(t, chapters, 2)
	assert.Equal(t, "Chapter 2", chapters[1].Title)
}

func TestSplitDedupesCloseBoundaries(t *testing.T) {
	// A structural heading immediately followed by a numbered one within the
	// dedup window counts once
	text := "Chapter 1\n1. Opening\n" + body(3000) + "Chapter 2\n" + body(3000)

	chapters := Split(text)
	require.Len(t, chapters, 2)
}

func TestAllCapsOnlyWhenStructuralSparse(t *testing.T) {
	caps := "THE NATURE OF EVIDENCE\n"

	// Sparse structural headings: the caps line becomes a boundary
	sparse := body(2500) + caps + body(3000)
	assert.Len(t, Split(sparse), 2)

	// Dense structural headings: the caps line is ignored
	dense := "1. One\n" + body(2500) +
		"2. Two\n" + body(2500) +
		"3. Three\n" + body(2500) +
		caps + body(3000)
	titles := DetectHeadings(dense)
	assert.NotContains(t, titles, "THE NATURE OF EVIDENCE")
}

func TestExtractClamping(t *testing.T) {
	text := "0123456789"

	assert.Equal(t, "2345", Extract(text, Chapter{StartChar: 2, EndChar: 6}))
	assert.Equal(t, "0123456789", Extract(text, Chapter{StartChar: -5, EndChar: 99}))
	assert.Equal(t, "", Extract(text, Chapter{StartChar: 50, EndChar: 60}))
	// Inverted span falls back to end-of-text
	assert.Equal(t, "56789", Extract(text, Chapter{StartChar: 5, EndChar: 3}))
}

func TestDetectHeadings(t *testing.T) {
	text := "Chapter 1: Origins\n" + body(3000) + "Chapter 2: Growth\n" + body(3000)

	titles := DetectHeadings(text)
	require.Len(t, titles, 2)
	assert.Equal(t, "Chapter 1: Origins", titles[0])
	assert.Equal(t, "Chapter 2: Growth", titles[1])
}
