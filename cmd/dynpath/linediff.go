package main

import (
	"io"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// writeLineDiff writes from and to line by line, prefixing removed lines
// with "-", added lines with "+" and common lines with " ".
func writeLineDiff(w io.Writer, from, to string) {
	dmp := diffpatch.New()
	fromChars, toChars, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(fromChars, toChars, false), lines)
	for _, diff := range diffs {
		prefix := " "
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, ln := range strings.SplitAfter(diff.Text, "\n") {
			if ln == "" {
				continue
			}
			io.WriteString(w, prefix+ln)
		}
	}
}
