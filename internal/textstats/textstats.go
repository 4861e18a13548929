// Package textstats is for computing simple statistics for UTF-8 text objects.
package textstats

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// PreviewLength is the maximum number of characters kept in Stats.Preview.
const PreviewLength = 100

// ErrInvalidUTF8 is returned by Read for content that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// Stats summarises the text read from an object.
type Stats struct {
	Lines   int
	Words   int
	Chars   int
	Preview string
}

// Read reads UTF-8 text from r and returns its Stats.
//
// Content is normalised before counting: every line terminator (\n, \r\n or
// a bare \r) becomes a single \n and non-empty content always ends with \n,
// even when the source did not. Lines is the number of \n delimited segments
// in the normalised content, so the trailing \n contributes an empty final
// segment and empty content still counts as one segment. Chars and Preview
// are measured in Unicode code points.
func Read(r io.Reader) (Stats, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Stats{}, err
	}

	if !utf8.Valid(raw) {
		return Stats{}, ErrInvalidUTF8
	}

	var b strings.Builder

	sc := bufio.NewScanner(bytes.NewReader(raw))
	sc.Buffer(nil, len(raw)+1)
	sc.Split(scanLines)

	for sc.Scan() {
		b.WriteString(sc.Text())
		b.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return Stats{}, err
	}

	content := b.String()

	return Stats{
		Lines:   strings.Count(content, "\n") + 1,
		Words:   len(strings.Fields(content)),
		Chars:   utf8.RuneCountInString(content),
		Preview: truncate(content, PreviewLength),
	}, nil
}

// scanLines is a bufio.SplitFunc that treats \n, \r\n and a bare \r as line
// terminators. The terminator is not included in the token.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	i := bytes.IndexAny(data, "\r\n")
	if i < 0 {
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}

	if data[i] == '\n' {
		return i + 1, data[:i], nil
	}

	// a \r at the end of the buffer could be half of a \r\n.
	if i == len(data)-1 && !atEOF {
		return 0, nil, nil
	}

	if i+1 < len(data) && data[i+1] == '\n' {
		return i + 2, data[:i], nil
	}

	return i + 1, data[:i], nil
}

// truncate returns the first max code points of s.
func truncate(s string, max int) string {
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}

	return s
}
