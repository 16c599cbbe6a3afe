package merge

import (
	"fmt"
	"strings"
)

// lineOp classifies one line of a rendered artifact comparison.
type lineOp int

const (
	lineEqual lineOp = iota
	lineDelete
	lineInsert
)

// diffLine is one annotated line of the comparison between the on-disk
// artifact and the freshly generated one.
type diffLine struct {
	op   lineOp
	text string
	aIdx int // 0-based line number in base, -1 for inserts
	bIdx int // 0-based line number in current, -1 for deletes
}

// diffLines computes the full annotated line sequence between a and b
// from an LCS table, keeping both line numbers on unchanged runs.
func diffLines(a, b []string) []diffLine {
	m, n := len(a), len(b)

	// dp[i][j] = length of LCS of a[:i] and b[:j]
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			switch {
			case a[i-1] == b[j-1]:
				dp[i][j] = dp[i-1][j-1] + 1
			case dp[i-1][j] >= dp[i][j-1]:
				dp[i][j] = dp[i-1][j]
			default:
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	var lines []diffLine
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			lines = append(lines, diffLine{op: lineEqual, text: a[i-1], aIdx: i - 1, bIdx: j - 1})
			i--
			j--
		case j > 0 && (i == 0 || dp[i][j-1] >= dp[i-1][j]):
			lines = append(lines, diffLine{op: lineInsert, text: b[j-1], aIdx: -1, bIdx: j - 1})
			j--
		default:
			lines = append(lines, diffLine{op: lineDelete, text: a[i-1], aIdx: i - 1, bIdx: -1})
			i--
		}
	}

	// Backtracking walked tail-first; restore forward order.
	for l, r := 0, len(lines)-1; l < r; l, r = l+1, r-1 {
		lines[l], lines[r] = lines[r], lines[l]
	}
	return lines
}

const diffContext = 3

type span struct {
	start, end int
}

// hunkRanges groups changed lines into hunks with diffContext lines of
// surrounding context, merging hunks whose context would overlap.
func hunkRanges(lines []diffLine) []span {
	var out []span
	i := 0
	for i < len(lines) {
		if lines[i].op == lineEqual {
			i++
			continue
		}

		start := max(i-diffContext, 0)
		end := i + 1
		quiet := 0 // consecutive equal lines since the last change
		for end < len(lines) && quiet < 2*diffContext {
			if lines[end].op == lineEqual {
				quiet++
			} else {
				quiet = 0
			}
			end++
		}
		end -= max(quiet-diffContext, 0)

		if len(out) > 0 && start <= out[len(out)-1].end {
			out[len(out)-1].end = end
		} else {
			out = append(out, span{start: start, end: end})
		}
		i = end
	}
	return out
}

func writeHunk(sb *strings.Builder, lines []diffLine) {
	aStart, bStart := 0, 0
	aCount, bCount := 0, 0
	for _, l := range lines {
		switch l.op {
		case lineEqual:
			aCount++
			bCount++
		case lineDelete:
			aCount++
		case lineInsert:
			bCount++
		}
	}
	for _, l := range lines {
		if l.aIdx >= 0 {
			aStart = l.aIdx + 1
			break
		}
	}
	for _, l := range lines {
		if l.bIdx >= 0 {
			bStart = l.bIdx + 1
			break
		}
	}

	fmt.Fprintf(sb, "@@ -%d,%d +%d,%d @@\n", aStart, aCount, bStart, bCount)
	for _, l := range lines {
		switch l.op {
		case lineEqual:
			sb.WriteByte(' ')
		case lineDelete:
			sb.WriteByte('-')
		case lineInsert:
			sb.WriteByte('+')
		}
		sb.WriteString(l.text)
		sb.WriteByte('\n')
	}
}

// UnifiedDiff produces a unified diff between the stored and freshly
// generated content of one artifact. Returns an empty string when the
// contents are identical.
func UnifiedDiff(filename string, base, current []byte) string {
	lines := diffLines(splitLines(string(base)), splitLines(string(current)))

	changed := false
	for _, l := range lines {
		if l.op != lineEqual {
			changed = true
			break
		}
	}
	if !changed {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n", filename)
	fmt.Fprintf(&sb, "+++ b/%s\n", filename)
	for _, h := range hunkRanges(lines) {
		writeHunk(&sb, lines[h.start:h.end])
	}
	return sb.String()
}

// DiffDocuments renders both documents as indented JSON and diffs the
// results. A nil base stands for a file that does not exist yet, so
// every line of current shows as an insert.
func DiffDocuments(filename string, base, current *Document) (string, error) {
	var baseOut, currentOut []byte
	var err error
	if base != nil {
		if baseOut, err = EncodeJSON(base); err != nil {
			return "", err
		}
	}
	if current != nil {
		if currentOut, err = EncodeJSON(current); err != nil {
			return "", err
		}
	}
	return UnifiedDiff(filename, baseOut, currentOut), nil
}

// splitLines splits content into lines, dropping the trailing empty
// line a final newline would otherwise produce.
func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
