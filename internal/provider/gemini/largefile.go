package gemini

import (
	"regexp"
	"sort"
	"strings"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/internal/entity"
)

// Strategy names recorded in ExtractionResult.LargeFile.
const (
	strategyTextExcerpt = "text_excerpt"
	strategySamplePages = "sample_pages"
)

var rePDFPage = regexp.MustCompile(`/Type\s*/Page[^s]`)

// PDFPageCount counts page objects in raw PDF bytes. It scans for
// /Type /Page markers, which is exact for the vast majority of real-world
// PDFs and never requires parsing the xref table.
func PDFPageCount(data []byte) int {
	return len(rePDFPage.FindAll(data, -1))
}

// SamplePages returns the 1-based page numbers to sample from a document of
// pageCount pages: the first and last edge pages, deduplicated when the
// ranges overlap, sorted ascending.
func SamplePages(pageCount, edge int) []int {
	if pageCount <= 0 || edge <= 0 {
		return nil
	}
	set := make(map[int]struct{}, 2*edge)
	for i := 1; i <= edge && i <= pageCount; i++ {
		set[i] = struct{}{}
	}
	for i := pageCount - edge + 1; i <= pageCount; i++ {
		if i >= 1 {
			set[i] = struct{}{}
		}
	}
	pages := make([]int, 0, len(set))
	for p := range set {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}

// TextExcerpt pulls a bounded excerpt of printable text out of raw file
// bytes. Crude, but enough supplementary context for a model that also sees
// the document itself.
func TextExcerpt(data []byte, max int) string {
	var b strings.Builder
	var run []byte
	flush := func() {
		// runs shorter than 4 bytes are almost always binary noise
		if len(run) >= 4 {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.Write(run)
		}
		run = run[:0]
	}
	for _, c := range data {
		if b.Len() >= max {
			break
		}
		if c >= 0x20 && c < 0x7f {
			run = append(run, c)
			continue
		}
		flush()
	}
	flush()
	s := b.String()
	if len(s) > max {
		s = s[:max]
	}
	return strings.TrimSpace(s)
}

// planLargeFile decides whether the large-file strategy applies and, if so,
// returns its metadata record. A nil return means normal processing.
func planLargeFile(data []byte, mimeType string) *entity.LargeFileInfo {
	threshold := int(float64(constants.MaxFileSizeBytes) * constants.LargeFileThresholdFraction)

	isPDF := mimeType == "application/pdf"
	pageCount := 0
	if isPDF {
		pageCount = PDFPageCount(data)
	}

	switch {
	case isPDF && pageCount > constants.MaxPDFPages:
		return &entity.LargeFileInfo{
			Strategy:    strategySamplePages,
			PageCount:   pageCount,
			SamplePages: SamplePages(pageCount, constants.PageSampleEdge),
		}
	case len(data) >= threshold:
		info := &entity.LargeFileInfo{Strategy: strategyTextExcerpt}
		if isPDF {
			info.PageCount = pageCount
		}
		return info
	default:
		return nil
	}
}
