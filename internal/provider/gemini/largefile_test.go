package gemini

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/docintel/constants"
)

func fakePDF(pages int) []byte {
	var b bytes.Buffer
	b.WriteString("%PDF-1.7\n")
	b.WriteString("1 0 obj << /Type /Pages /Count 1 >> endobj\n")
	for i := 0; i < pages; i++ {
		b.WriteString("2 0 obj << /Type /Page /Parent 1 0 R >> endobj\n")
	}
	return b.Bytes()
}

func TestPDFPageCount(t *testing.T) {
	assert.Equal(t, 3, PDFPageCount(fakePDF(3)))
	// the /Pages tree node must not be counted
	assert.Equal(t, 0, PDFPageCount(fakePDF(0)))
	assert.Equal(t, 0, PDFPageCount([]byte("not a pdf")))
}

func TestSamplePages(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 57, 58, 59, 60}, SamplePages(60, 4))
	// overlapping edges deduplicate
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, SamplePages(6, 4))
	assert.Equal(t, []int{1}, SamplePages(1, 4))
	assert.Nil(t, SamplePages(0, 4))
	assert.Nil(t, SamplePages(10, 0))
}

func TestTextExcerpt(t *testing.T) {
	data := append([]byte{0x00, 0x01, 0x02}, []byte("Invoice Number: INV-42")...)
	data = append(data, 0xff, 0xfe)
	data = append(data, []byte("Total: 99.00")...)
	data = append(data, 0x00, 'a', 'b', 0x00) // short run, binary noise

	got := TextExcerpt(data, 1024)
	assert.Equal(t, "Invoice Number: INV-42 Total: 99.00", got)
}

func TestTextExcerptBounded(t *testing.T) {
	data := []byte(strings.Repeat("abcdefgh", 1000))
	got := TextExcerpt(data, 64)
	assert.LessOrEqual(t, len(got), 64)
	assert.NotEmpty(t, got)
}

func TestPlanLargeFileSmallInput(t *testing.T) {
	assert.Nil(t, planLargeFile(fakePDF(3), "application/pdf"))
	assert.Nil(t, planLargeFile(make([]byte, 1024), "image/png"))
}

func TestPlanLargeFileManyPages(t *testing.T) {
	info := planLargeFile(fakePDF(constants.MaxPDFPages+5), "application/pdf")
	require.NotNil(t, info)
	assert.Equal(t, "sample_pages", info.Strategy)
	assert.Equal(t, constants.MaxPDFPages+5, info.PageCount)
	assert.Equal(t, []int{1, 2, 3, 4, 27, 28, 29, 30}, info.SamplePages)
}

func TestPlanLargeFileBigBytes(t *testing.T) {
	threshold := int(float64(constants.MaxFileSizeBytes) * constants.LargeFileThresholdFraction)
	info := planLargeFile(make([]byte, threshold), "image/png")
	require.NotNil(t, info)
	assert.Equal(t, "text_excerpt", info.Strategy)
	assert.Zero(t, info.PageCount)
}
