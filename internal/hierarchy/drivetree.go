package hierarchy

import (
	"sort"
	"strings"

	"drivehub/internal/domain/models"
)

// Options controls how drive names are parsed into a presentation tree.
type Options struct {
	// Delimiter is the reserved character sequence that separates
	// hierarchy segments inside a drive name.
	Delimiter string
	// PathSeparator joins segments when rendering a node's full path.
	PathSeparator string
}

// DefaultOptions matches the naming convention used across the
// organization's drives.
func DefaultOptions() Options {
	return Options{Delimiter: "|", PathSeparator: " | "}
}

// DriveNode is one node of the presentation forest. Intermediate
// segments are synthetic group nodes with a nil Drive; the record binds
// only at the node matching its last segment.
type DriveNode struct {
	Label    string        `json:"label"`
	Path     string        `json:"path"`
	Depth    int           `json:"depth"`
	Drive    *models.Drive `json:"drive,omitempty"`
	Children []*DriveNode  `json:"children"`

	byLabel map[string]*DriveNode
}

// PathConflict reports two drive records whose names normalize to the
// identical segment path. The first binding wins; the conflict is
// surfaced instead of silently overwriting.
type PathConflict struct {
	Path            string `json:"path"`
	BoundDriveID    string `json:"bound_drive_id"`
	RejectedDriveID string `json:"rejected_drive_id"`
}

// MaterializeDriveHierarchy converts an unordered drive collection into
// a presentation forest. Drives whose name lacks the delimiter are flat,
// top-level-only data and are excluded entirely.
//
// The sort (segment count ascending, then case-insensitive name) only
// fixes a deterministic, human-friendly render order; the find-or-create
// walk below is order-independent for correctness.
func MaterializeDriveHierarchy(drives []models.Drive, opts Options) ([]*DriveNode, []PathConflict) {
	if opts.Delimiter == "" {
		opts = DefaultOptions()
	}

	filtered := make([]models.Drive, 0, len(drives))
	for _, d := range drives {
		if strings.Contains(d.Name, opts.Delimiter) {
			filtered = append(filtered, d)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		si := splitSegments(filtered[i].Name, opts.Delimiter)
		sj := splitSegments(filtered[j].Name, opts.Delimiter)
		if len(si) != len(sj) {
			return len(si) < len(sj)
		}
		return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
	})

	root := &DriveNode{byLabel: make(map[string]*DriveNode)}
	var conflicts []PathConflict

	for i := range filtered {
		d := &filtered[i]
		segments := splitSegments(d.Name, opts.Delimiter)
		if len(segments) == 0 {
			continue
		}

		current := root
		for depth, label := range segments {
			child, ok := current.byLabel[label]
			if !ok {
				child = &DriveNode{
					Label:    label,
					Path:     strings.Join(segments[:depth+1], opts.PathSeparator),
					Depth:    depth,
					Children: []*DriveNode{},
					byLabel:  make(map[string]*DriveNode),
				}
				current.byLabel[label] = child
				current.Children = append(current.Children, child)
			}
			current = child
		}

		if current.Drive != nil {
			if current.Drive.ID != d.ID {
				conflicts = append(conflicts, PathConflict{
					Path:            current.Path,
					BoundDriveID:    current.Drive.ID,
					RejectedDriveID: d.ID,
				})
			}
			continue
		}
		current.Drive = d
	}

	return root.Children, conflicts
}

// splitSegments splits a name on the delimiter, trims each segment, and
// drops empty ones.
func splitSegments(name, delimiter string) []string {
	parts := strings.Split(name, delimiter)
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}
	return segments
}
