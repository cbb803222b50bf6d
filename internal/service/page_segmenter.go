package service

import (
	"fmt"
	"strings"

	"pdf-text-extractor/internal/domain"
)

// SegmentPages slices rawText into pageCount labeled blocks.
//
// The decoder does not report where pages end, so the line sequence is cut
// with pageCount as the stride: page i (1-indexed) covers lines
// [(i-1)*pageCount, i*pageCount). Windows past the end are empty.
func SegmentPages(rawText string, pageCount int) []domain.Segment {
	if pageCount <= 0 {
		return nil
	}

	lines := strings.Split(rawText, "\n")
	segments := make([]domain.Segment, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		start := clamp(i*pageCount, len(lines))
		end := clamp((i+1)*pageCount, len(lines))
		segments = append(segments, domain.Segment{
			PageIndex: i + 1,
			PageText:  strings.Join(lines[start:end], "\n"),
		})
	}
	return segments
}

// RenderSegments joins segments into one block, each preceded by its
// "Start of Page i of n" marker and followed by a blank line.
func RenderSegments(segments []domain.Segment) string {
	var sb strings.Builder
	total := len(segments)
	for _, seg := range segments {
		fmt.Fprintf(&sb, "Start of Page %d of %d\n\n", seg.PageIndex, total)
		sb.WriteString(seg.PageText)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// AnnotatePages is SegmentPages followed by RenderSegments.
func AnnotatePages(rawText string, pageCount int) string {
	return RenderSegments(SegmentPages(rawText, pageCount))
}

func clamp(n, limit int) int {
	if n > limit {
		return limit
	}
	return n
}
