// File: lixenwraith/ini/helper.go
package ini

import "strings"

// KeySeparator splits a composite address into section and key.
const KeySeparator = ':'

// SplitAddress splits a "Section:Key" address into its trimmed section and key.
// It fails with an AddressFormatError unless the address has exactly two segments
// and neither is blank.
func SplitAddress(address string) (section, key string, err error) {
	segments := strings.Split(address, string(KeySeparator))
	if len(segments) != 2 {
		return "", "", &AddressFormatError{Address: address}
	}

	section = strings.TrimSpace(segments[0])
	key = strings.TrimSpace(segments[1])
	if section == "" || key == "" {
		return "", "", &AddressFormatError{Address: address}
	}

	return section, key, nil
}

// JoinAddress builds a composite address from a section and key.
func JoinAddress(section, key string) string {
	return section + string(KeySeparator) + key
}

// stripBOM removes a leading UTF-8 byte order mark.
func stripBOM(line string) string {
	return strings.TrimPrefix(line, "\ufeff")
}
