package geoserver

import "unicode"

// IntoWorkspace derives a valid map-server workspace name from a catalog
// dataset name. Workspace names must start with a letter, so leading
// non-letter characters are moved behind the rest of the name (digits are
// preserved, other characters dropped), separated with a dash. Names without
// any letter at all get a fixed prefix instead.
func IntoWorkspace(raw string) string {
	hasLetter := false
	for _, r := range raw {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}

	if !hasLetter {
		return "ckan-" + raw
	}

	name := []rune(raw)
	if unicode.IsLetter(name[0]) {
		return raw
	}

	name = append(name, '-')
	for !unicode.IsLetter(name[0]) {
		first := name[0]
		name = name[1:]
		if unicode.IsDigit(first) {
			name = append(name, first)
		}
	}

	if name[len(name)-1] == '-' {
		name = name[:len(name)-1]
	}

	return string(name)
}
