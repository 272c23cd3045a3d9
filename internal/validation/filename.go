package validation

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// windowsDeviceNames cannot be used as file names on Windows hosts.
var windowsDeviceNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true,
}

// SecureFilename reduces a client supplied name to a safe single path
// element: accents are decomposed and dropped, path separators and
// whitespace runs become underscores, and anything outside [A-Za-z0-9_.-]
// is removed. Leading and trailing dots and underscores are trimmed. The
// result may be empty.
func SecureFilename(name string) string {
	// NFKD splits accented letters so the ASCII base survives.
	decomposed := norm.NFKD.String(name)

	var ascii strings.Builder
	for _, r := range decomposed {
		if r < unicode.MaxASCII {
			ascii.WriteRune(r)
		}
	}

	s := strings.NewReplacer("/", " ", `\`, " ").Replace(ascii.String())
	s = strings.Join(strings.Fields(s), "_")

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '_' || r == '.' || r == '-':
			b.WriteRune(r)
		}
	}

	s = strings.Trim(b.String(), "._")

	stem := strings.ToUpper(strings.SplitN(s, ".", 2)[0])
	if windowsDeviceNames[stem] {
		s = "_" + s
	}
	return s
}

// BaseName returns name without its final extension.
func BaseName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[:i]
	}
	return name
}
