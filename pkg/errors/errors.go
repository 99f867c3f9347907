package errors

// Error message constants for the js-imports-group application
const (
	// File processing errors
	ErrMsgFailedToReadFile  = "failed to read file"
	ErrMsgFailedToParseFile = "failed to parse file"
	ErrMsgFailedToWriteFile = "failed to write file"
	ErrMsgFailedToApplyEdit = "failed to apply edit"
	ErrMsgStaleSnapshot     = "file changed since it was read"
	ErrMsgMalformedImport   = "malformed import statement"
	ErrMsgNoScriptBlock     = "no script block found"

	// Directory processing errors
	ErrMsgFailedToCheckPath       = "failed to check path"
	ErrMsgFailedToFindSourceFiles = "failed to find source files in directory"
	ErrMsgFilesFailedToProcess    = "%d files failed to process"
	ErrMsgFilesNeedOrganizing     = "%d files need their imports organized"

	// Configuration errors
	ErrMsgFailedToReadSettings  = "failed to read settings file"
	ErrMsgFailedToParseSettings = "failed to parse settings file"
	ErrMsgFailedToLoadDotEnv    = "failed to load env file"

	// Watch errors
	ErrMsgFailedToCreateWatcher = "failed to create file watcher"
	ErrMsgFailedToWatchPath     = "failed to watch path"

	// Configuration warnings
	WarnMsgInvalidSetting    = "ignoring invalid value for %s: %v"
	WarnMsgUnknownSortMethod = "unknown sort method %v, using %s"

	// Info/warning messages
	WarnMsgProcessingDirWithoutInPlace = "Warning: Processing directory without --in-place flag. No files will be modified."
	InfoMsgUseInPlaceFlag              = "Use --in-place flag to modify files or specify a single file for stdout output."
	InfoMsgNoSourceFilesFound          = "No source files found in directory: %s"
	InfoMsgFoundSourceFiles            = "Found %d source files in directory: %s"
	InfoMsgUsingSettings               = "Using settings: %s"
	InfoMsgProcessedFiles              = "Processed: %s"
	InfoMsgWouldChange                 = "Would reorganize: %s"
	InfoMsgErrorProcessing             = "Error processing %s: %v"
	InfoMsgProcessedCount              = "\nProcessed %d files successfully"
	InfoMsgErrorCount                  = ", %d files had errors"
	InfoMsgWatching                    = "Watching %d directories for changes (Ctrl+C to stop)"
	InfoMsgOrganizedOnSave             = "Organized imports: %s"

	// Engine trace messages
	TraceMsgParseFailed      = "parse failed for %s: %v"
	TraceMsgRecovered        = "recovered while organizing %s: %v"
	TraceMsgImportsFound     = "found %d leading imports in %s"
	TraceMsgMalformedImport  = "stopping at malformed import at offset %d: %v"
	TraceMsgBoundary         = "leading import run ends at %s node (offset %d)"
	TraceMsgClassified       = "import %q classified as %s"
	TraceMsgSortedGroup      = "sorted %s group by %s: %s"
	TraceMsgNoChange         = "no change for %s"
	TraceMsgReplace          = "replacing [%d, %d) in %s"
	TraceMsgEmbeddedScript   = "organizing script block of %s at offset %d"
	TraceMsgSkippedOwnWrite  = "skipping own write to %s"
	TraceMsgUnknownSortValue = "unknown sort method %q, using %s"
)
