package paint

import "github.com/gogpu/paint/internal/native"

// Status is the result code of an operation on a pattern or surface.
// Values match cairo_status_t. Status implements error so it can be used
// as an errors.Is target.
type Status = native.Status

const (
	StatusSuccess                 = native.StatusSuccess
	StatusNoMemory                = native.StatusNoMemory
	StatusInvalidRestore          = native.StatusInvalidRestore
	StatusInvalidPopGroup         = native.StatusInvalidPopGroup
	StatusNoCurrentPoint          = native.StatusNoCurrentPoint
	StatusInvalidMatrix           = native.StatusInvalidMatrix
	StatusInvalidStatus           = native.StatusInvalidStatus
	StatusNullPointer             = native.StatusNullPointer
	StatusInvalidString           = native.StatusInvalidString
	StatusInvalidPathData         = native.StatusInvalidPathData
	StatusReadError               = native.StatusReadError
	StatusWriteError              = native.StatusWriteError
	StatusSurfaceFinished         = native.StatusSurfaceFinished
	StatusSurfaceTypeMismatch     = native.StatusSurfaceTypeMismatch
	StatusPatternTypeMismatch     = native.StatusPatternTypeMismatch
	StatusInvalidContent          = native.StatusInvalidContent
	StatusInvalidFormat           = native.StatusInvalidFormat
	StatusInvalidVisual           = native.StatusInvalidVisual
	StatusFileNotFound            = native.StatusFileNotFound
	StatusInvalidDash             = native.StatusInvalidDash
	StatusInvalidDSCComment       = native.StatusInvalidDSCComment
	StatusInvalidIndex            = native.StatusInvalidIndex
	StatusClipNotRepresentable    = native.StatusClipNotRepresentable
	StatusTempFileError           = native.StatusTempFileError
	StatusInvalidStride           = native.StatusInvalidStride
	StatusFontTypeMismatch        = native.StatusFontTypeMismatch
	StatusUserFontImmutable       = native.StatusUserFontImmutable
	StatusUserFontError           = native.StatusUserFontError
	StatusNegativeCount           = native.StatusNegativeCount
	StatusInvalidClusters         = native.StatusInvalidClusters
	StatusInvalidSlant            = native.StatusInvalidSlant
	StatusInvalidWeight           = native.StatusInvalidWeight
	StatusInvalidSize             = native.StatusInvalidSize
	StatusUserFontNotImplemented  = native.StatusUserFontNotImplemented
	StatusDeviceTypeMismatch      = native.StatusDeviceTypeMismatch
	StatusDeviceError             = native.StatusDeviceError
	StatusInvalidMeshConstruction = native.StatusInvalidMeshConstruction
	StatusDeviceFinished          = native.StatusDeviceFinished
	StatusJBIG2GlobalMissing      = native.StatusJBIG2GlobalMissing
	StatusPNGError                = native.StatusPNGError
	StatusFreetypeError           = native.StatusFreetypeError
	StatusWin32GDIError           = native.StatusWin32GDIError
	StatusTagError                = native.StatusTagError
	StatusDWriteError             = native.StatusDWriteError
)

// Error is the only error kind returned by this package. It carries the
// status reported by the rendering layer and nothing else.
type Error struct {
	Status Status
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "paint: " + e.Status.String()
}

// Is reports whether target is a Status or *Error with the same status.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Status:
		return e.Status == t
	case *Error:
		return t != nil && e.Status == t.Status
	}
	return false
}

// checkStatus turns a non-success status into an *Error.
func checkStatus(s Status) error {
	if s == StatusSuccess {
		return nil
	}
	return &Error{Status: s}
}

// statusHolder is anything whose object carries a sticky status.
type statusHolder interface {
	Status() Status
}

// checkObjectStatus inspects an object's status after a call into the
// rendering layer.
func checkObjectStatus(obj statusHolder) error {
	return checkStatus(obj.Status())
}
