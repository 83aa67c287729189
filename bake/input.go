package bake

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// ReadText reads all of r and decodes it from the named encoding to UTF-8.
// Names follow the WHATWG encoding labels ("gb18030", "shift_jis",
// "utf-16le", ...). An empty name means UTF-8. One trailing newline is
// dropped so text files bake the same as command-line arguments.
func ReadText(r io.Reader, encoding string) (string, error) {
	if encoding != "" && !strings.EqualFold(encoding, "utf-8") && !strings.EqualFold(encoding, "utf8") {
		enc, err := htmlindex.Get(encoding)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
		}
		r = transform.NewReader(r, enc.NewDecoder())
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("bake: failed to read text: %w", err)
	}
	text := string(data)
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	return text, nil
}
