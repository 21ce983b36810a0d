package abac

import (
	"fmt"
	"strings"
)

// ParseAttribLine splits a userAttrib or resourceAttrib line back into its
// entity id and key=value attribute map. Attribute values never contain
// commas, so a plain split is lossless; set values keep their braces.
func ParseAttribLine(line string) (string, map[string]string, error) {
	open := strings.Index(line, "(")
	if open < 0 || !strings.HasSuffix(line, ")") {
		return "", nil, fmt.Errorf("malformed attribute line: %q", line)
	}
	kind := line[:open]
	if kind != "userAttrib" && kind != "resourceAttrib" {
		return "", nil, fmt.Errorf("unknown attribute line kind %q", kind)
	}

	parts := strings.Split(line[open+1:len(line)-1], ", ")
	if len(parts) < 2 {
		return "", nil, fmt.Errorf("attribute line has no attributes: %q", line)
	}

	id := parts[0]
	attrs := make(map[string]string, len(parts)-1)
	for _, part := range parts[1:] {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return "", nil, fmt.Errorf("malformed attribute %q", part)
		}
		attrs[key] = value
	}
	return id, attrs, nil
}
