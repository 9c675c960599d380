// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package gojson

// checkBOM inspects the first bytes of buf without consuming them beyond
// the BOM itself. It reports whether the caller has enough bytes to decide:
// if not (need more input before detection can proceed), it returns
// ok == false having consumed nothing, and the caller must retry once more
// bytes arrive.
func checkBOM(buf *Buffer) (ok bool, err error) {
	b := buf.Remaining()
	if len(b) == 0 {
		return false, nil
	}

	switch b[0] {
	case 0xEF: // candidate UTF-8 BOM: EF BB BF
		if len(b) < 3 {
			if len(b) >= 2 && b[1] != 0xBB {
				return true, nil // not a BOM after all
			}
			return false, nil // need more to decide
		}
		if b[1] == 0xBB && b[2] == 0xBF {
			buf.Pos += 3
		}
		return true, nil

	case 0xFE: // candidate UTF-16 BE BOM: FE FF
		if len(b) < 2 {
			return false, nil
		}
		if b[1] == 0xFF {
			return true, newError("UTF-16 BE encoding not supported")
		}
		return true, nil

	case 0xFF: // candidate UTF-16 LE / UTF-32 LE BOM: FF FE [00 00]
		if len(b) < 2 {
			return false, nil
		}
		if b[1] != 0xFE {
			return true, nil
		}
		if len(b) < 4 {
			return false, nil
		}
		if b[2] == 0x00 && b[3] == 0x00 {
			return true, newError("UTF-32 LE encoding not supported")
		}
		return true, newError("UTF-16 LE encoding not supported")

	case 0x00: // candidate UTF-32 BE BOM: 00 00 FE FF
		if len(b) < 4 {
			if len(b) >= 2 && b[1] != 0x00 {
				return true, nil
			}
			return false, nil
		}
		if b[1] == 0x00 && b[2] == 0xFE && b[3] == 0xFF {
			return true, newError("UTF-32 BE encoding not supported")
		}
		return true, nil

	default:
		return true, nil
	}
}
