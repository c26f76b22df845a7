package provider

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/internal/common"
)

var (
	reFenced        = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	reTrailingComma = regexp.MustCompile(`,\s*([}\]])`)
	reColonNewline  = regexp.MustCompile(`:\s*\n\s*`)
	reNullArray     = regexp.MustCompile(`\[\s*null(?:\s*,\s*null)*\s*,?\s*\]`)
)

// Repair runs the staged repair chain over a model response and returns the
// decoded object plus the name of the stage that succeeded. Stages:
//
//  1. "direct"    — parse as-is
//  2. "extract"   — largest {...} or fenced-code-block substring
//  3. "cleanup"   — trailing commas, newline-after-colon, null-padded arrays
//
// Every stage first routes input carrying duplicate sibling entity keys
// through the "structural" split: encoding/json accepts duplicate keys with
// last-key-wins, so without the pre-pass a defective response would parse
// "successfully" and silently drop all but the last sibling entity.
// Whatever stage parses, null-only arrays are collapsed to empty arrays
// afterwards, so the final object is identical no matter which stage fired.
func Repair(raw []byte) (map[string]any, string, error) {
	if m, stage, ok := parseStage(string(raw), "direct"); ok {
		return m, stage, nil
	}

	candidate := extractCandidate(string(raw))
	if m, stage, ok := parseStage(candidate, "extract"); ok {
		return m, stage, nil
	}

	cleaned := cleanupText(candidate)
	if m, stage, ok := parseStage(cleaned, "cleanup"); ok {
		return m, stage, nil
	}

	preview := string(raw)
	if len(preview) > 200 {
		preview = preview[:200] + "…"
	}
	_, err := tryParse([]byte(cleaned))
	return nil, "", common.ResponseInvalidError("unparsable model response: "+preview, err)
}

// parseStage attempts one stage. Input where the duplicate-sibling split
// changed anything is parsed in its repaired form and reported as
// "structural"; everything else parses as-is under the stage's own name.
func parseStage(s, stage string) (map[string]any, string, bool) {
	if repaired, split := repairDuplicateSiblings(s); split {
		if m, err := tryParse([]byte(repaired)); err == nil {
			return m, "structural", true
		}
	}
	m, err := tryParse([]byte(s))
	if err != nil {
		return nil, "", false
	}
	return m, stage, true
}

// ParseExtractionJSON is the provider-facing entry: repair, log non-direct
// stages, and surface a RESPONSE_INVALID failure when nothing parses.
func ParseExtractionJSON(raw []byte, logger *slog.Logger) (map[string]any, error) {
	if logger == nil {
		logger = slog.Default()
	}
	m, stage, err := Repair(raw)
	if err != nil {
		logger.Error("provider.json.repair_failed", "raw_bytes", len(raw), "error", err)
		return nil, err
	}
	if stage != "direct" {
		logger.Warn("provider.json.repaired", "stage", stage, "raw_bytes", len(raw))
	}
	return m, nil
}

func tryParse(b []byte) (map[string]any, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case map[string]any:
		stripNullArrays(t)
		return t, nil
	case []any:
		// tolerate a bare entities array
		m := map[string]any{"entities": t}
		stripNullArrays(m)
		return m, nil
	default:
		return nil, &json.UnmarshalTypeError{Value: "non-object"}
	}
}

// extractCandidate pulls the most promising JSON substring: a fenced code
// block when present, otherwise the largest {...} span.
func extractCandidate(s string) string {
	if m := reFenced.FindStringSubmatch(s); m != nil {
		inner := strings.TrimSpace(m[1])
		if inner != "" {
			return inner
		}
	}
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

func cleanupText(s string) string {
	s = reColonNewline.ReplaceAllString(s, ": ")
	s = reTrailingComma.ReplaceAllString(s, "$1")
	s = reNullArray.ReplaceAllString(s, "[]")
	return s
}

// repairDuplicateSiblings fixes a known model defect where sibling entities
// are emitted as duplicate keys inside one object instead of separate array
// elements. When a key from the entity-type vocabulary repeats at the same
// object depth and the object sits inside an array, the comma before the
// repeat becomes an object boundary ("},{"). The second return reports
// whether any boundary was inserted.
func repairDuplicateSiblings(s string) (string, bool) {
	vocab := make(map[string]struct{}, len(constants.EntityTypeTokens))
	for _, t := range constants.EntityTypeTokens {
		vocab[t] = struct{}{}
	}

	type frame struct {
		isObj         bool
		isArr         bool
		seen          map[string]struct{}
		lastComma     int
		awaitingValue bool
	}
	var stack []*frame
	top := func() *frame {
		if len(stack) == 0 {
			return nil
		}
		return stack[len(stack)-1]
	}
	parent := func() *frame {
		if len(stack) < 2 {
			return nil
		}
		return stack[len(stack)-2]
	}

	out := make([]byte, 0, len(s)+8)
	split := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			j := i + 1
			for j < len(s) {
				if s[j] == '\\' {
					j += 2
					continue
				}
				if s[j] == '"' {
					break
				}
				j++
			}
			if j >= len(s) {
				// unterminated string; give up on this region
				out = append(out, s[i:]...)
				return string(out), split
			}
			key := s[i+1 : j]
			if f := top(); f != nil && f.isObj && !f.awaitingValue {
				if _, isVocab := vocab[key]; isVocab {
					if _, dup := f.seen[key]; dup {
						if p := parent(); p != nil && p.isArr && f.lastComma >= 0 {
							rest := append([]byte(nil), out[f.lastComma+1:]...)
							out = append(out[:f.lastComma], '}', ',', '{')
							out = append(out, rest...)
							f.seen = map[string]struct{}{}
							f.lastComma = -1
							split = true
						}
					}
				}
				f.seen[key] = struct{}{}
			}
			out = append(out, s[i:j+1]...)
			i = j
		case '{':
			stack = append(stack, &frame{isObj: true, seen: map[string]struct{}{}, lastComma: -1})
			out = append(out, c)
		case '[':
			stack = append(stack, &frame{isArr: true, lastComma: -1})
			out = append(out, c)
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			out = append(out, c)
		case ':':
			if f := top(); f != nil && f.isObj {
				f.awaitingValue = true
			}
			out = append(out, c)
		case ',':
			if f := top(); f != nil {
				if f.isObj {
					f.awaitingValue = false
				}
				f.lastComma = len(out)
			}
			out = append(out, c)
		default:
			out = append(out, c)
		}
	}
	return string(out), split
}

// stripNullArrays recursively replaces arrays that contain only nulls with
// empty arrays. Some models pad arrays with null sentinels.
func stripNullArrays(v any) {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			if arr, ok := val.([]any); ok && len(arr) > 0 && allNull(arr) {
				t[k] = []any{}
				continue
			}
			stripNullArrays(val)
		}
	case []any:
		for i, val := range t {
			if arr, ok := val.([]any); ok && len(arr) > 0 && allNull(arr) {
				t[i] = []any{}
				continue
			}
			stripNullArrays(val)
		}
	}
}

func allNull(arr []any) bool {
	for _, v := range arr {
		if v != nil {
			return false
		}
	}
	return true
}
