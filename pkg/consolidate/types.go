package consolidate

// FileEntry is a file selected for consolidation.
type FileEntry struct {
	Path    string // Slash-separated path relative to the root, prefixed with "./".
	Content []byte // Raw file content, written verbatim.
}

// SkipReason explains why an admitted file was left out of the document.
type SkipReason string

const (
	ReasonUnreadable SkipReason = "unreadable"
	ReasonNotText    SkipReason = "not text"
)

// Skipped records a file that passed the exclusion policy but could not be consolidated.
type Skipped struct {
	Path   string
	Reason SkipReason
	Err    error
}

// Result summarizes a consolidation run.
type Result struct {
	OutputPath string    // Absolute or root-joined path of the written output file.
	Files      []string  // Consolidated files, in output order.
	Skipped    []Skipped // Files dropped with a warning.
	Bytes      int       // Size of the written document.
}
