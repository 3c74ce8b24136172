// Package dump writes the process environment to a stream as a block of
// NUL-terminated entries bounded by two sentinel marker lines.
package dump

import (
	"bufio"
	"fmt"
	"io"
)

// Sentinel marker lines delimiting the output block.
const (
	BeginMarker = "--printenvz--begin"
	EndMarker   = "--printenvz--end"
)

// Write emits environ to w in the printenvz format:
//
//	--printenvz--begin\n
//	<entry_1>\0<entry_2>\0...<entry_n>\0
//	\n--printenvz--end\n
//
// Entries are forwarded byte for byte in the order given, each followed by
// a single NUL byte and nothing else. An empty environ produces the two
// marker lines separated by one newline. The first write or flush error is
// returned.
func Write(w io.Writer, environ []string) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(BeginMarker + "\n"); err != nil {
		return fmt.Errorf("failed to write begin marker: %w", err)
	}

	for _, entry := range environ {
		if _, err := bw.WriteString(entry); err != nil {
			return fmt.Errorf("failed to write entry: %w", err)
		}
		if err := bw.WriteByte(0); err != nil {
			return fmt.Errorf("failed to write entry terminator: %w", err)
		}
	}

	if _, err := bw.WriteString("\n" + EndMarker + "\n"); err != nil {
		return fmt.Errorf("failed to write end marker: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
