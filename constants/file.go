package constants

import (
	"sort"
	"strings"
)

// AllowedExtensions holds the default allowed file extensions for ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
	"tiff": {},
}

// MimeByExt maps normalized extensions to the mime type sent to providers.
var MimeByExt = map[string]string{
	"pdf":  "application/pdf",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
	"tiff": "image/tiff",
}

// SupportedMimeTypes is the set providers accept.
var SupportedMimeTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
	"image/webp":      {},
	"image/tiff":      {},
}

// ExtensionList returns the allowed extensions as a sorted slice for
// validators and error messages.
func ExtensionList() []string {
	out := make([]string, 0, len(AllowedExtensions))
	for ext := range AllowedExtensions {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// File-size policy for the multimodal provider.
const (
	// MaxFileSizeBytes is the hard ceiling; larger files are rejected
	// before any network call.
	MaxFileSizeBytes = 50 * 1024 * 1024

	// LargeFileThresholdFraction of MaxFileSizeBytes at which the
	// large-file strategy kicks in.
	LargeFileThresholdFraction = 0.8

	// MaxPDFPages is the page count above which PDFs are page-sampled.
	MaxPDFPages = 25

	// PageSampleEdge is how many pages are taken from each end when
	// sampling a large PDF.
	PageSampleEdge = 4

	// MaxExcerptBytes bounds the supplementary text excerpt attached for
	// large files.
	MaxExcerptBytes = 16 * 1024
)

// UnitCostByType is the per-item cost estimate (USD) used by the batch
// orchestrator; rough averages observed per document class.
var UnitCostByType = map[DocType]float64{
	Receipt:       0.002,
	Invoice:       0.003,
	Contract:      0.006,
	Voucher:       0.002,
	Warranty:      0.003,
	BankStatement: 0.005,
	Document:      0.004,
}

// UnitCost returns the estimated per-item cost for a document type,
// falling back to the generic document rate.
func UnitCost(dt DocType) float64 {
	if c, ok := UnitCostByType[dt]; ok {
		return c
	}
	return UnitCostByType[Document]
}
