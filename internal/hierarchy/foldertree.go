// Package hierarchy holds the pure materialization logic that turns flat
// mirror records into nested trees. Folder records carry an explicit
// parent reference (relational hierarchy); drive records encode their
// ancestry in the display name through a reserved delimiter (nominal
// hierarchy). The two models have different edge-case policies, so they
// stay separate algorithms.
package hierarchy

import "drivehub/internal/domain/models"

// FolderNode is a folder record plus its attached children. The record
// itself is carried unmodified.
type FolderNode struct {
	models.Folder
	Children []*FolderNode `json:"children"`
}

// MaterializeFolderTree converts a flat, ordered folder slice into a
// forest. Each record attaches under the node matching its parent_id
// when that id is present among the input records, otherwise it becomes
// a root. Sibling order follows input order, so callers control render
// order by how they sort the input (the mirror reads by full_path, id).
//
// The attach decision only consults the prebuilt index, never the parent
// pointers transitively. A dangling parent_id promotes the record to a
// root, and a self-referential parent_id is treated as absent by policy:
// trusting it would hand later consumers an infinite structure.
func MaterializeFolderTree(folders []models.Folder) []*FolderNode {
	index := make(map[string]*FolderNode, len(folders))
	for i := range folders {
		index[folders[i].ID] = &FolderNode{
			Folder:   folders[i],
			Children: []*FolderNode{},
		}
	}

	forest := make([]*FolderNode, 0)
	for i := range folders {
		f := &folders[i]
		node := index[f.ID]

		if !f.IsRoot() && *f.ParentID != f.ID {
			if parent, ok := index[*f.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		forest = append(forest, node)
	}

	return forest
}
