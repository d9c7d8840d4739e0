// assets/embed.go
//
// Embedded data files shipped with the binary.
//   - words.txt: default vocabulary, one word per line, `#` comments allowed.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words.txt
var FS embed.FS

// Lines returns the non-blank, non-comment lines of an embedded file,
// trimmed but otherwise untouched. Validation is left to the caller.
func Lines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// DefaultWords returns the built-in vocabulary.
func DefaultWords() ([]string, error) {
	return Lines("words.txt")
}
