// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import "strconv"

// Status is the result code recorded on every object.
// Values match cairo_status_t.
type Status int

const (
	StatusSuccess Status = iota
	StatusNoMemory
	StatusInvalidRestore
	StatusInvalidPopGroup
	StatusNoCurrentPoint
	StatusInvalidMatrix
	StatusInvalidStatus
	StatusNullPointer
	StatusInvalidString
	StatusInvalidPathData
	StatusReadError
	StatusWriteError
	StatusSurfaceFinished
	StatusSurfaceTypeMismatch
	StatusPatternTypeMismatch
	StatusInvalidContent
	StatusInvalidFormat
	StatusInvalidVisual
	StatusFileNotFound
	StatusInvalidDash
	StatusInvalidDSCComment
	StatusInvalidIndex
	StatusClipNotRepresentable
	StatusTempFileError
	StatusInvalidStride
	StatusFontTypeMismatch
	StatusUserFontImmutable
	StatusUserFontError
	StatusNegativeCount
	StatusInvalidClusters
	StatusInvalidSlant
	StatusInvalidWeight
	StatusInvalidSize
	StatusUserFontNotImplemented
	StatusDeviceTypeMismatch
	StatusDeviceError
	StatusInvalidMeshConstruction
	StatusDeviceFinished
	StatusJBIG2GlobalMissing
	StatusPNGError
	StatusFreetypeError
	StatusWin32GDIError
	StatusTagError
	StatusDWriteError

	// StatusLast is one past the last defined status.
	StatusLast
)

var statusMessages = [...]string{
	StatusSuccess:                 "no error has occurred",
	StatusNoMemory:                "out of memory",
	StatusInvalidRestore:          "restore without matching save",
	StatusInvalidPopGroup:         "no saved group to pop",
	StatusNoCurrentPoint:          "no current point",
	StatusInvalidMatrix:           "invalid matrix (not invertible)",
	StatusInvalidStatus:           "invalid value for an input status",
	StatusNullPointer:             "NULL pointer",
	StatusInvalidString:           "input string not valid UTF-8",
	StatusInvalidPathData:         "input path data not valid",
	StatusReadError:               "error while reading from input stream",
	StatusWriteError:              "error while writing to output stream",
	StatusSurfaceFinished:         "the target surface has been finished",
	StatusSurfaceTypeMismatch:     "the surface type is not appropriate for the operation",
	StatusPatternTypeMismatch:     "the pattern type is not appropriate for the operation",
	StatusInvalidContent:          "invalid value for an input content",
	StatusInvalidFormat:           "invalid value for an input format",
	StatusInvalidVisual:           "invalid value for an input visual",
	StatusFileNotFound:            "file not found",
	StatusInvalidDash:             "invalid value for a dash setting",
	StatusInvalidDSCComment:       "invalid value for a DSC comment",
	StatusInvalidIndex:            "invalid index passed to getter",
	StatusClipNotRepresentable:    "clip region not representable in desired format",
	StatusTempFileError:           "error creating or writing to a temporary file",
	StatusInvalidStride:           "invalid value for stride",
	StatusFontTypeMismatch:        "the font type is not appropriate for the operation",
	StatusUserFontImmutable:       "the user-font is immutable",
	StatusUserFontError:           "error occurred in a user-font callback function",
	StatusNegativeCount:           "negative number used where it is not allowed",
	StatusInvalidClusters:         "input clusters do not represent the accompanying text and glyph arrays",
	StatusInvalidSlant:            "invalid value for an input font slant",
	StatusInvalidWeight:           "invalid value for an input font weight",
	StatusInvalidSize:             "invalid value (typically too big) for the size of the input (surface, pattern, etc.)",
	StatusUserFontNotImplemented:  "user-font method not implemented",
	StatusDeviceTypeMismatch:      "the device type is not appropriate for the operation",
	StatusDeviceError:             "an operation to the device caused an unspecified error",
	StatusInvalidMeshConstruction: "invalid operation during mesh pattern construction",
	StatusDeviceFinished:          "the target device has been finished",
	StatusJBIG2GlobalMissing:      "JBIG2 global segment id used without the matching global data",
	StatusPNGError:                "error while reading from or writing to a PNG file",
	StatusFreetypeError:           "error occurred in the font rasterizer",
	StatusWin32GDIError:           "error occurred in the Windows Graphics Device Interface",
	StatusTagError:                "invalid tag name, attributes, or nesting",
	StatusDWriteError:             "error occurred in the Windows Direct Write API",
}

// String returns the human-readable message for the status.
func (s Status) String() string {
	if s >= 0 && s < StatusLast {
		return statusMessages[s]
	}
	return "unknown status " + strconv.Itoa(int(s))
}

// Error lets a Status be used as an errors.Is target.
func (s Status) Error() string {
	return s.String()
}

// Valid reports whether s is a defined status value.
func (s Status) Valid() bool {
	return s >= 0 && s < StatusLast
}
