package scanner

// Record is one discovered archive file. FileType comes from the query
// that matched, never from content inspection.
type Record struct {
	Project  string
	Bucket   string
	FileType string
	FilePath string
}
