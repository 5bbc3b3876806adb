package sync

import (
	"github.com/iudanet/drivesync/internal/models"
	"github.com/iudanet/drivesync/pkg/api"
)

func directoryVersions(dirs []models.DirectoryVersion) []api.Version {
	out := make([]api.Version, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, api.Version{Path: d.DirPath, Checksum: d.MD5})
	}
	return out
}

func fileVersions(files []models.FileVersion) []api.Version {
	out := make([]api.Version, 0, len(files))
	for _, f := range files {
		out = append(out, api.Version{Name: f.Name, Checksum: f.MD5})
	}
	return out
}

func toFileVersion(v *api.Version) models.FileVersion {
	return models.FileVersion{Name: v.Name, MD5: v.Checksum}
}

// actionPath возвращает путь директории или имя файла, к которому относится действие
func actionPath(a api.Action) string {
	for _, v := range []*api.Version{a.Version, a.NewVersion} {
		if v == nil {
			continue
		}
		if v.Path != "" {
			return v.Path
		}
		return v.Name
	}
	return ""
}
