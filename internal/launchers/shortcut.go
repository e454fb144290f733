package launchers

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf16"
)

// ShortcutResolver resolves a shortcut file to the target path it points at.
type ShortcutResolver interface {
	Resolve(shortcutPath string) (string, error)
}

// ErrBadShortcut marks shortcut files that cannot be parsed or carry no
// usable target path.
var ErrBadShortcut = errors.New("unreadable shortcut file")

// NewShortcutResolver returns the .lnk resolver. Parsing is pure Go, so
// shortcut files copied from a Windows machine resolve on any platform.
func NewShortcutResolver() ShortcutResolver {
	return lnkResolver{}
}

type lnkResolver struct{}

func (lnkResolver) Resolve(shortcutPath string) (string, error) {
	if !strings.EqualFold(filepath.Ext(shortcutPath), ".lnk") {
		return "", fmt.Errorf("%w: not a .lnk file", ErrBadShortcut)
	}

	data, err := os.ReadFile(shortcutPath)
	if err != nil {
		return "", fmt.Errorf("read shortcut: %w", err)
	}

	target, err := parseShellLinkTarget(data)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(target); err != nil {
		return "", fmt.Errorf("shortcut target %s: missing", target)
	}
	return target, nil
}

// ShellLink layout constants (MS-SHLLINK).
const (
	lnkHeaderSize        = 0x4C
	flagHasTargetIDList  = 0x01
	flagHasLinkInfo      = 0x02
	infoFlagLocalBase    = 0x01
	infoHeaderMinSize    = 0x1C
	infoHeaderUnicodeMin = 0x24
)

// parseShellLinkTarget extracts the LinkInfo local base path (plus common
// suffix) from raw .lnk bytes.
func parseShellLinkTarget(data []byte) (string, error) {
	if len(data) < lnkHeaderSize || binary.LittleEndian.Uint32(data[0:4]) != lnkHeaderSize {
		return "", fmt.Errorf("%w: bad header", ErrBadShortcut)
	}
	flags := binary.LittleEndian.Uint32(data[20:24])

	offset := lnkHeaderSize
	if flags&flagHasTargetIDList != 0 {
		if len(data) < offset+2 {
			return "", fmt.Errorf("%w: truncated id list", ErrBadShortcut)
		}
		idListSize := int(binary.LittleEndian.Uint16(data[offset : offset+2]))
		offset += 2 + idListSize
	}

	if flags&flagHasLinkInfo == 0 {
		return "", fmt.Errorf("%w: shortcut carries no link info", ErrBadShortcut)
	}
	if len(data) < offset+infoHeaderMinSize {
		return "", fmt.Errorf("%w: truncated link info", ErrBadShortcut)
	}

	info := data[offset:]
	infoSize := int(binary.LittleEndian.Uint32(info[0:4]))
	if infoSize > len(info) || infoSize < infoHeaderMinSize {
		return "", fmt.Errorf("%w: bad link info size", ErrBadShortcut)
	}
	info = info[:infoSize]

	headerSize := int(binary.LittleEndian.Uint32(info[4:8]))
	infoFlags := binary.LittleEndian.Uint32(info[8:12])
	if infoFlags&infoFlagLocalBase == 0 {
		return "", fmt.Errorf("%w: shortcut has no local base path", ErrBadShortcut)
	}

	basePathOffset := int(binary.LittleEndian.Uint32(info[16:20]))
	suffixOffset := int(binary.LittleEndian.Uint32(info[24:28]))

	// Prefer the unicode offsets when the header carries them. The common
	// path suffix rides along just like in the ANSI layout.
	if headerSize >= infoHeaderUnicodeMin && len(info) >= 36 {
		if uniOffset := int(binary.LittleEndian.Uint32(info[28:32])); uniOffset > 0 {
			if base, ok := readUTF16String(info, uniOffset); ok {
				uniSuffixOffset := int(binary.LittleEndian.Uint32(info[32:36]))
				suffix, _ := readUTF16String(info, uniSuffixOffset)
				return base + suffix, nil
			}
		}
	}

	base, ok := readCString(info, basePathOffset)
	if !ok {
		return "", fmt.Errorf("%w: bad local base path offset", ErrBadShortcut)
	}
	suffix, _ := readCString(info, suffixOffset)
	return base + suffix, nil
}

func readCString(data []byte, offset int) (string, bool) {
	if offset <= 0 || offset >= len(data) {
		return "", false
	}
	end := offset
	for end < len(data) && data[end] != 0 {
		end++
	}
	return string(data[offset:end]), true
}

func readUTF16String(data []byte, offset int) (string, bool) {
	if offset <= 0 || offset >= len(data) {
		return "", false
	}
	var units []uint16
	for i := offset; i+1 < len(data); i += 2 {
		unit := binary.LittleEndian.Uint16(data[i : i+2])
		if unit == 0 {
			break
		}
		units = append(units, unit)
	}
	if len(units) == 0 {
		return "", false
	}
	return string(utf16.Decode(units)), true
}
