package handlers

import (
	"github.com/iudanet/drivesync/internal/models"
	"github.com/iudanet/drivesync/internal/sync"
	"github.com/iudanet/drivesync/pkg/api"
)

func toFileVersions(versions []api.Version) []models.FileVersion {
	out := make([]models.FileVersion, 0, len(versions))
	for _, v := range versions {
		out = append(out, models.FileVersion{Name: v.Name, MD5: v.Checksum})
	}
	return out
}

func toDirectoryVersions(versions []api.Version) []models.DirectoryVersion {
	out := make([]models.DirectoryVersion, 0, len(versions))
	for _, v := range versions {
		out = append(out, models.DirectoryVersion{DirPath: v.Path, MD5: v.Checksum})
	}
	return out
}

func fileVersion(v *models.FileVersion) *api.Version {
	if v == nil {
		return nil
	}
	return &api.Version{Name: v.Name, Checksum: v.MD5}
}

func directoryVersion(v *models.DirectoryVersion) *api.Version {
	if v == nil {
		return nil
	}
	return &api.Version{Path: v.DirPath, Checksum: v.MD5}
}

func toAPIActions[T models.Version](actions []sync.Action[T], version func(*T) *api.Version) []api.Action {
	out := make([]api.Action, 0, len(actions))
	for _, a := range actions {
		out = append(out, api.Action{
			Type:       string(a.Type),
			Version:    version(a.Version),
			NewVersion: version(a.NewVersion),
			Parameters: a.Parameters,
		})
	}
	return out
}
