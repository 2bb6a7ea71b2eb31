package core

import (
	"bufio"
	"io"
	"strings"
)

// SplitLines drops every carriage return and splits the payload on '\n'.
// The result always has at least one element, so an empty payload yields [""]
// and a payload ending in '\n' yields a trailing "".
func SplitLines(payload string) []string {
	return strings.Split(strings.ReplaceAll(payload, "\r", ""), "\n")
}

// WriteLines writes each line followed by '\n' and returns the number of bytes written.
func WriteLines(w io.Writer, lines []string) (n int64, err error) {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		var written int
		if written, err = bw.WriteString(line); err != nil {
			return
		}
		n += int64(written)
		if err = bw.WriteByte('\n'); err != nil {
			return
		}
		n++
	}
	err = bw.Flush()
	return
}
