package hierarchy

import (
	"encoding/json"
	"testing"

	"drivehub/internal/domain/models"
)

func drive(id, name string) models.Drive {
	return models.Drive{ID: id, Name: name}
}

func findChild(nodes []*DriveNode, label string) *DriveNode {
	for _, n := range nodes {
		if n.Label == label {
			return n
		}
	}
	return nil
}

func TestMaterializeDriveHierarchy(t *testing.T) {
	drives := []models.Drive{
		drive("d1", "Sales | 2024"),
		drive("d2", "Sales | 2023"),
		drive("d3", "HR"),
	}

	forest, conflicts := MaterializeDriveHierarchy(drives, DefaultOptions())

	if len(conflicts) != 0 {
		t.Fatalf("conflicts = %v, want none", conflicts)
	}
	if len(forest) != 1 {
		t.Fatalf("forest has %d roots, want 1 (HR has no delimiter and is excluded)", len(forest))
	}

	sales := forest[0]
	if sales.Label != "Sales" || sales.Depth != 0 || sales.Path != "Sales" {
		t.Errorf("root = %+v, want synthetic Sales node at depth 0", sales)
	}
	if sales.Drive != nil {
		t.Errorf("intermediate segment bound a record: %v", sales.Drive.ID)
	}
	if len(sales.Children) != 2 {
		t.Fatalf("Sales has %d children, want 2", len(sales.Children))
	}

	// sort is case-insensitive lexicographic within equal segment count
	if sales.Children[0].Label != "2023" || sales.Children[1].Label != "2024" {
		t.Errorf("children order = [%s, %s], want [2023, 2024]",
			sales.Children[0].Label, sales.Children[1].Label)
	}

	y2024 := findChild(sales.Children, "2024")
	if y2024.Drive == nil || y2024.Drive.ID != "d1" {
		t.Errorf("2024 node not bound to d1: %+v", y2024.Drive)
	}
	if y2024.Depth != 1 {
		t.Errorf("2024 depth = %d, want 1", y2024.Depth)
	}
	if y2024.Path != "Sales | 2024" {
		t.Errorf("2024 path = %q, want %q", y2024.Path, "Sales | 2024")
	}
}

func TestMaterializeDriveHierarchySegments(t *testing.T) {
	tests := []struct {
		name      string
		driveName string
		depth     int
		path      string
		label     string
	}{
		{"two segments", "A | B", 1, "A | B", "B"},
		{"untrimmed segments", "  A  |B ", 1, "A | B", "B"},
		{"empty segments discarded", "A | | B", 1, "A | B", "B"},
		{"trailing delimiter", "A |", 0, "A", "A"},
		{"three segments", "A|B|C", 2, "A | B | C", "C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forest, _ := MaterializeDriveHierarchy(
				[]models.Drive{drive("d1", tt.driveName)}, DefaultOptions())

			node := forest[0]
			for len(node.Children) > 0 {
				node = node.Children[0]
			}
			if node.Drive == nil || node.Drive.ID != "d1" {
				t.Fatalf("terminal node not bound: %+v", node)
			}
			if node.Depth != tt.depth {
				t.Errorf("depth = %d, want %d", node.Depth, tt.depth)
			}
			if node.Path != tt.path {
				t.Errorf("path = %q, want %q", node.Path, tt.path)
			}
			if node.Label != tt.label {
				t.Errorf("label = %q, want %q", node.Label, tt.label)
			}
		})
	}
}

func TestMaterializeDriveHierarchyExcludesFlatDrives(t *testing.T) {
	forest, conflicts := MaterializeDriveHierarchy([]models.Drive{
		drive("d1", "Standalone"),
		drive("d2", "Another Flat Drive"),
	}, DefaultOptions())

	if len(forest) != 0 {
		t.Errorf("forest = %d roots, want 0 for delimiter-less drives", len(forest))
	}
	if len(conflicts) != 0 {
		t.Errorf("conflicts = %v, want none", conflicts)
	}
}

func TestMaterializeDriveHierarchyPathConflict(t *testing.T) {
	forest, conflicts := MaterializeDriveHierarchy([]models.Drive{
		drive("d1", "Sales | 2024"),
		drive("d2", "Sales|2024"), // normalizes to the same segment path
	}, DefaultOptions())

	if len(conflicts) != 1 {
		t.Fatalf("conflicts = %v, want exactly one", conflicts)
	}
	c := conflicts[0]
	if c.Path != "Sales | 2024" {
		t.Errorf("conflict path = %q, want %q", c.Path, "Sales | 2024")
	}
	if c.BoundDriveID != "d1" || c.RejectedDriveID != "d2" {
		t.Errorf("conflict = %+v, want first binding (d1) to win", c)
	}

	// first binding stays attached
	node := forest[0].Children[0]
	if node.Drive == nil || node.Drive.ID != "d1" {
		t.Errorf("terminal node bound to %+v, want d1", node.Drive)
	}
}

func TestMaterializeDriveHierarchyIdempotent(t *testing.T) {
	drives := []models.Drive{
		drive("d1", "Ops | EU | Berlin"),
		drive("d2", "Ops | EU"),
		drive("d3", "Ops | US"),
		drive("d4", "Finance | Audit"),
	}

	firstForest, firstConflicts := MaterializeDriveHierarchy(drives, DefaultOptions())
	secondForest, secondConflicts := MaterializeDriveHierarchy(drives, DefaultOptions())

	first, _ := json.Marshal(firstForest)
	second, _ := json.Marshal(secondForest)
	if string(first) != string(second) {
		t.Errorf("two materializations differ:\n%s\n%s", first, second)
	}
	if len(firstConflicts) != len(secondConflicts) {
		t.Errorf("conflict counts differ: %d vs %d", len(firstConflicts), len(secondConflicts))
	}
}

func TestMaterializeDriveHierarchyDepthMatchesSegmentCount(t *testing.T) {
	drives := []models.Drive{
		drive("d1", "A | B | C | D"),
		drive("d2", "X | Y"),
	}

	forest, _ := MaterializeDriveHierarchy(drives, DefaultOptions())

	var checkBound func(nodes []*DriveNode)
	checkBound = func(nodes []*DriveNode) {
		for _, n := range nodes {
			if n.Drive != nil {
				want := len(splitSegments(n.Drive.Name, "|")) - 1
				if n.Depth != want {
					t.Errorf("drive %s bound at depth %d, want %d", n.Drive.ID, n.Depth, want)
				}
			}
			checkBound(n.Children)
		}
	}
	checkBound(forest)
}
