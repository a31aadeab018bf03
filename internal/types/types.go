package types

// GeneratedFile is one artifact produced for a prompt, ready to be written
// to disk or returned to a client.
type GeneratedFile struct {
	Filename string `json:"filename"`
	Type     string `json:"type"` // e.g. "HTML", see utils.DetermineFileType
	Content  string `json:"content"`
}
