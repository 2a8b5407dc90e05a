package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"drivehub/internal/config"
	"drivehub/internal/domain"
	"drivehub/internal/domain/models"
	"drivehub/internal/domain/services"
	"drivehub/internal/remote"
)

// fakeFolderRepo implements repositories.FolderRepository.
type fakeFolderRepo struct {
	folders   []models.Folder
	insertErr error

	inserted *models.Folder
}

func (f *fakeFolderRepo) ListByDrive(ctx context.Context, driveID string) ([]models.Folder, error) {
	return f.folders, nil
}

func (f *fakeFolderRepo) InsertCreated(ctx context.Context, folder *models.Folder) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = folder
	return nil
}

func newFolderService(provider *fakeProvider, repo *fakeFolderRepo) services.FolderService {
	return NewFolderService(repo, provider, testSettings(), time.Second, slog.Default())
}

func newFolderServiceWithDepth(provider *fakeProvider, repo *fakeFolderRepo, depth int) services.FolderService {
	settings := testSettings()
	settings.MaxAncestorDepth = depth
	return NewFolderService(repo, provider, settings, time.Second, slog.Default())
}

func TestCreateFolderBuildsFullPath(t *testing.T) {
	provider := &fakeProvider{
		metadata: map[string]remote.Metadata{
			"folder-remote-1": {Name: "Reports", Parents: []string{"parent-1"}},
			"parent-1":        {Name: "Finance", Parents: []string{"drive-1"}},
		},
	}
	repo := &fakeFolderRepo{}
	svc := newFolderService(provider, repo)

	parent := "parent-1"
	result, err := svc.CreateFolder(context.Background(), &services.CreateFolderRequest{
		Name:     "Reports",
		DriveID:  "drive-1",
		ParentID: &parent,
	})
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	if result.Folder.FullPath != "/Finance/Reports" {
		t.Errorf("full_path = %q, want /Finance/Reports", result.Folder.FullPath)
	}
	if !result.Mirrored {
		t.Error("mirrored = false, want true")
	}
	if repo.inserted == nil || repo.inserted.ID != "folder-remote-1" {
		t.Errorf("mirrored folder = %+v, want the remote-assigned record", repo.inserted)
	}
}

func TestCreateFolderAtDriveRoot(t *testing.T) {
	provider := &fakeProvider{
		metadata: map[string]remote.Metadata{
			"folder-remote-1": {Name: "Reports", Parents: []string{"drive-1"}},
		},
	}
	repo := &fakeFolderRepo{}
	svc := newFolderService(provider, repo)

	empty := ""
	result, err := svc.CreateFolder(context.Background(), &services.CreateFolderRequest{
		Name:     "Reports",
		DriveID:  "drive-1",
		ParentID: &empty, // normalized to nil
	})
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	if result.Folder.ParentID != nil {
		t.Errorf("parent_id = %v, want nil for drive root", *result.Folder.ParentID)
	}
	if result.Folder.FullPath != "/Reports" {
		t.Errorf("full_path = %q, want /Reports", result.Folder.FullPath)
	}
}

func TestCreateFolderPathFallbackOnWalkFailure(t *testing.T) {
	provider := &fakeProvider{
		metadataErrs: map[string]error{
			"folder-remote-1": &domain.RemoteUnavailableError{Message: "provider down"},
		},
	}
	repo := &fakeFolderRepo{}
	svc := newFolderService(provider, repo)

	result, err := svc.CreateFolder(context.Background(), &services.CreateFolderRequest{
		Name:    "Reports",
		DriveID: "drive-1",
	})
	if err != nil {
		t.Fatalf("CreateFolder: %v, want fallback path, not failure", err)
	}

	if result.Folder.FullPath != "/unknown" {
		t.Errorf("full_path = %q, want /unknown fallback", result.Folder.FullPath)
	}
	if !result.Mirrored {
		t.Error("folder not mirrored despite path fallback")
	}
}

func TestCreateFolderAncestorCycleBounded(t *testing.T) {
	// provider returns a parent cycle: a -> b -> a
	provider := &fakeProvider{
		metadata: map[string]remote.Metadata{
			"folder-remote-1": {Name: "Leaf", Parents: []string{"b"}},
			"b":               {Name: "B", Parents: []string{"folder-remote-1"}},
		},
	}
	repo := &fakeFolderRepo{}
	svc := newFolderService(provider, repo)

	result, err := svc.CreateFolder(context.Background(), &services.CreateFolderRequest{
		Name:    "Leaf",
		DriveID: "drive-1",
	})
	if err != nil {
		t.Fatalf("CreateFolder: %v, want bounded walk with fallback", err)
	}
	if result.Folder.FullPath != "/unknown" {
		t.Errorf("full_path = %q, want /unknown after cycle detection", result.Folder.FullPath)
	}
}

func TestCreateFolderAncestorDepthCapped(t *testing.T) {
	// chain deeper than the cap, never reaching the drive
	metadata := map[string]remote.Metadata{
		"folder-remote-1": {Name: "n0", Parents: []string{"p1"}},
	}
	for i := 1; i < 10; i++ {
		metadata[fmt.Sprintf("p%d", i)] = remote.Metadata{
			Name:    fmt.Sprintf("p%d", i),
			Parents: []string{fmt.Sprintf("p%d", i+1)},
		}
	}
	provider := &fakeProvider{metadata: metadata}
	repo := &fakeFolderRepo{}
	svc := newFolderServiceWithDepth(provider, repo, 3)

	result, err := svc.CreateFolder(context.Background(), &services.CreateFolderRequest{
		Name:    "n0",
		DriveID: "drive-1",
	})
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	if result.Folder.FullPath != "/unknown" {
		t.Errorf("full_path = %q, want /unknown after depth cap", result.Folder.FullPath)
	}
}

func TestCreateFolderMirrorFailureReportsDivergence(t *testing.T) {
	provider := &fakeProvider{
		metadata: map[string]remote.Metadata{
			"folder-remote-1": {Name: "Reports", Parents: []string{"drive-1"}},
		},
	}
	repo := &fakeFolderRepo{insertErr: errors.New("store unavailable")}
	svc := newFolderService(provider, repo)

	result, err := svc.CreateFolder(context.Background(), &services.CreateFolderRequest{
		Name:    "Reports",
		DriveID: "drive-1",
	})
	if err != nil {
		t.Fatalf("CreateFolder: %v, want divergence in result", err)
	}

	if result.Mirrored {
		t.Error("mirrored = true, want false")
	}
	if result.Folder == nil || result.Folder.ID != "folder-remote-1" {
		t.Errorf("folder = %+v, want remote id preserved", result.Folder)
	}
}

func TestCreateFolderValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *services.CreateFolderRequest
	}{
		{"empty name", &services.CreateFolderRequest{Name: "", DriveID: "drive-1"}},
		{"missing drive", &services.CreateFolderRequest{Name: "Reports"}},
		{"slash in name", &services.CreateFolderRequest{Name: "a/b", DriveID: "drive-1"}},
		{"name too long", &services.CreateFolderRequest{
			Name:    strings.Repeat("x", config.MaxFolderNameLength+1),
			DriveID: "drive-1",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFolderService(&fakeProvider{}, &fakeFolderRepo{})
			_, err := svc.CreateFolder(context.Background(), tt.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestFolderTreeUsesMirrorOrdering(t *testing.T) {
	parent := "A"
	repo := &fakeFolderRepo{folders: []models.Folder{
		{ID: "A", Name: "root", DriveID: "drive-1", FullPath: "/root"},
		{ID: "B", Name: "child", DriveID: "drive-1", ParentID: &parent, FullPath: "/root/child"},
	}}
	svc := newFolderService(&fakeProvider{}, repo)

	tree, err := svc.FolderTree(context.Background(), "drive-1")
	if err != nil {
		t.Fatalf("FolderTree: %v", err)
	}

	if len(tree) != 1 || tree[0].ID != "A" {
		t.Fatalf("tree roots = %+v, want single root A", tree)
	}
	if len(tree[0].Children) != 1 || tree[0].Children[0].ID != "B" {
		t.Errorf("children = %+v, want B under A", tree[0].Children)
	}
}
