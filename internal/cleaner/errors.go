package cleaner

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// ErrorReason categorizes why a deletion failed.
type ErrorReason int

const (
	ErrorPermissionDenied ErrorReason = iota
	ErrorFileInUse
	ErrorFileNotFound
	ErrorProtectedPath
	ErrorUnknown
)

// String returns a human-readable error reason.
func (e ErrorReason) String() string {
	switch e {
	case ErrorPermissionDenied:
		return "Permission denied"
	case ErrorFileInUse:
		return "File is in use"
	case ErrorFileNotFound:
		return "File not found"
	case ErrorProtectedPath:
		return "Protected path"
	case ErrorUnknown:
		return "Unknown error"
	default:
		return "Unspecified error"
	}
}

// DeletionError records one failed removal.
type DeletionError struct {
	Path     string
	Reason   ErrorReason
	Original error
}

// Error implements the error interface.
func (e *DeletionError) Error() string {
	return fmt.Sprintf("%s: %s (%v)", e.Path, e.Reason, e.Original)
}

// UserMessage returns a user-friendly error message.
func (e *DeletionError) UserMessage() string {
	switch e.Reason {
	case ErrorPermissionDenied:
		return fmt.Sprintf("permission denied: %s", e.Path)
	case ErrorFileInUse:
		return fmt.Sprintf("file is being used: %s (close the application and retry)", e.Path)
	case ErrorFileNotFound:
		return fmt.Sprintf("already deleted: %s", e.Path)
	case ErrorProtectedPath:
		return fmt.Sprintf("refusing to touch protected path: %s", e.Path)
	default:
		return fmt.Sprintf("error deleting %s: %v", e.Path, e.Original)
	}
}

// CategorizeError analyzes a removal error and returns a categorized
// DeletionError.
func CategorizeError(path string, err error) *DeletionError {
	if err == nil {
		return nil
	}

	delErr := &DeletionError{
		Path:     path,
		Original: err,
		Reason:   ErrorUnknown,
	}

	if os.IsNotExist(err) {
		delErr.Reason = ErrorFileNotFound
		return delErr
	}
	if os.IsPermission(err) {
		delErr.Reason = ErrorPermissionDenied
		return delErr
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.EACCES, syscall.EPERM:
			delErr.Reason = ErrorPermissionDenied
		case syscall.EBUSY, syscall.ETXTBSY:
			delErr.Reason = ErrorFileInUse
		case syscall.ENOENT:
			delErr.Reason = ErrorFileNotFound
		}
	}

	return delErr
}

// GroupErrors groups deletion errors by reason.
func GroupErrors(errs []*DeletionError) map[ErrorReason][]*DeletionError {
	grouped := make(map[ErrorReason][]*DeletionError)
	for _, err := range errs {
		grouped[err.Reason] = append(grouped[err.Reason], err)
	}
	return grouped
}

// FormatErrorSummary creates a user-friendly summary of deletion errors.
func FormatErrorSummary(errs []*DeletionError) string {
	if len(errs) == 0 {
		return ""
	}

	grouped := GroupErrors(errs)
	summary := "\n⚠️  Issues encountered:\n"

	if perms, ok := grouped[ErrorPermissionDenied]; ok {
		summary += fmt.Sprintf("   permission denied: %d items\n", len(perms))
	}
	if busy, ok := grouped[ErrorFileInUse]; ok {
		summary += fmt.Sprintf("   file in use: %d items\n", len(busy))
	}
	if notFound, ok := grouped[ErrorFileNotFound]; ok {
		summary += fmt.Sprintf("   already deleted: %d items\n", len(notFound))
	}
	if prot, ok := grouped[ErrorProtectedPath]; ok {
		summary += fmt.Sprintf("   protected paths skipped: %d items\n", len(prot))
	}
	if unknown, ok := grouped[ErrorUnknown]; ok {
		summary += fmt.Sprintf("   other errors: %d items\n", len(unknown))
	}

	return summary
}
