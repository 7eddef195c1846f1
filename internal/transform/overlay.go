package transform

import "maps"

// FolderKey is the overlay key that selects a PNT sub-transform.
const FolderKey = "folder"

// Overlay holds the extra fields merged into every record of the sources that
// support it. It is built once at startup and never mutated afterwards.
type Overlay map[string]any

// Apply copies every overlay key into doc, replacing what the adapter set.
func (o Overlay) Apply(doc map[string]any) {
	maps.Copy(doc, o)
}

// Folder returns the folder tag, or "" when absent or not a string.
func (o Overlay) Folder() string {
	folder, _ := o[FolderKey].(string)

	return folder
}
