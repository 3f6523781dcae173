package errors

// Error message constants for the py-imports-check application
const (
	// File processing errors
	ErrMsgFailedToReadFile  = "failed to read file"
	ErrMsgUnparseableImport = "could not get module name from import line"
	ErrMsgFailedToDiff      = "failed to compute import diff"

	// Path processing errors
	ErrMsgPathNotFound        = "path does not exist"
	ErrMsgFailedToFindPyFiles = "failed to find Python files in directory"
	ErrMsgInvalidExclude      = "invalid exclude pattern"
	ErrMsgFilesNeedAttention  = "%d files need attention"

	// Info/warning messages
	InfoMsgSkippingFile  = "skipping file"
	InfoMsgNoPyFiles     = "no Python files found in directory"
	InfoMsgLocalResolved = "module resolved under project root"
)
