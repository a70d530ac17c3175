// SPDX-License-Identifier: MPL-2.0

package lifecycle

// EventKind discriminates inbound environment events.
type EventKind int

const (
	// EventRootChanged reports a new workspace root.
	EventRootChanged EventKind = iota
	// EventActiveFileChanged reports a new active file path.
	EventActiveFileChanged
	// EventConfigChanged reports changed configuration keys.
	EventConfigChanged
	// EventDocumentOpened reports a document being opened.
	EventDocumentOpened
	// EventDocumentClosed reports a document being closed.
	EventDocumentClosed
	// EventManifestChanged reports that a package manifest under the
	// current root was written, created, or deleted. The activation
	// walk must rerun even though no root or file focus changed.
	EventManifestChanged
)

// String returns a human-readable event kind name.
func (k EventKind) String() string {
	switch k {
	case EventRootChanged:
		return "root-changed"
	case EventActiveFileChanged:
		return "active-file-changed"
	case EventConfigChanged:
		return "config-changed"
	case EventDocumentOpened:
		return "document-opened"
	case EventDocumentClosed:
		return "document-closed"
	case EventManifestChanged:
		return "manifest-changed"
	default:
		return "unknown"
	}
}

// Event is one inbound environment notification. Root is set for
// EventRootChanged, Path for the file/document kinds, Keys for
// EventConfigChanged.
type Event struct {
	Kind EventKind
	Root string
	Path string
	Keys []string
}
