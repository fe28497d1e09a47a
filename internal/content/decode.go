package content

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode converts raw file bytes to text, dropping a leading byte order mark.
// UTF-16 input with a BOM is transcoded to UTF-8; anything else is read as UTF-8.
func Decode(data []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("decoding text: %w", err)
	}
	return string(out), nil
}
