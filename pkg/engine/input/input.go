// Package input reads player commands from a line-oriented source and maps
// them to high-level actions.
package input

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Reader reads one command line at a time
type Reader struct {
	r *bufio.Reader
}

// NewReader creates a Reader over src, usually os.Stdin
func NewReader(src io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(src)}
}

// ReadLine reads a line of input without its line ending. A final line with
// no newline is returned with a nil error; io.EOF follows on the next call.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Next reads lines until one parses to a command. Blank lines are skipped;
// a line that fails to parse is returned with its error so the caller can
// report it.
func (r *Reader) Next() (Command, error) {
	for {
		line, err := r.ReadLine()
		if err != nil {
			return Command{}, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		return Parse(line)
	}
}
