package domain

import (
	"path/filepath"

	"github.com/mouse-blink/party/internal/adapter"
	m "github.com/mouse-blink/party/internal/model"
)

// PackageStatus evaluates the local state of registry package versions.
type PackageStatus interface {
	Evaluate(pkg m.RegistryPackage, version m.RegistryPackageVersion) (m.LocalPackageInfo, error)
}

type packageStatus struct {
	fs      adapter.SourceFSAdapter
	folders Folders
}

// NewPackageStatus constructs a PackageStatus.
func NewPackageStatus(fs adapter.SourceFSAdapter, folders Folders) PackageStatus {
	return &packageStatus{fs: fs, folders: folders}
}

// Evaluate checks every non-ignored file of version. Downloadable files are
// looked up in {type}/{author}/{name}/{version}/ and verified by hash;
// bundled files are only checked for existence.
func (s *packageStatus) Evaluate(pkg m.RegistryPackage, version m.RegistryPackageVersion) (m.LocalPackageInfo, error) {
	installFolder := s.folders.InstallDirectory(pkg, version.Version)

	info := m.LocalPackageInfo{
		PackageName:   pkg.Name,
		Version:       version.Version,
		InstallFolder: installFolder,
	}

	for _, file := range version.Files {
		if file.Ignore {
			continue
		}

		var (
			fi  m.InstalledFileInfo
			err error
		)

		switch {
		case file.Filename != "":
			fi, err = s.packageFile(installFolder, file)
		case file.LocalPath != "":
			fi = s.bundledFile(file)
		default:
			continue
		}

		if err != nil {
			return m.LocalPackageInfo{}, err
		}

		info.Files = append(info.Files, fi)
	}

	info.Installed = true
	info.Installable = true

	for _, f := range info.Files {
		switch f.Status {
		case m.StatusHashMismatch:
			info.Corrupted = true
			info.Installable = false
		case m.StatusNotInstallable:
			info.Installable = false
		}

		if f.Status != m.StatusInstalled {
			info.Installed = false
		}
	}

	return info, nil
}

func (s *packageStatus) bundledFile(file m.RegistryFile) m.InstalledFileInfo {
	path := s.folders.RelativeToVam(file.LocalPath)

	status := m.StatusNotInstallable
	if s.fs.Exists(path) {
		status = m.StatusInstalled
	}

	return m.InstalledFileInfo{Path: path, RegistryFile: file, Status: status}
}

func (s *packageStatus) packageFile(installFolder m.Path, file m.RegistryFile) (m.InstalledFileInfo, error) {
	path := m.Path(filepath.Join(string(installFolder), filepath.FromSlash(file.Filename)))
	fi := m.InstalledFileInfo{Path: path, RegistryFile: file}

	switch {
	case s.fs.Exists(path):
		if file.Hash.Type != HashType {
			return m.InstalledFileInfo{}, configurationErrorf("unsupported hash type: %s", file.Hash.Type)
		}

		hash, err := HashFile(s.fs, path)
		if err != nil {
			return m.InstalledFileInfo{}, installationErrorf("could not read '%s': %v", path, err)
		}

		if hash == file.Hash.Value {
			fi.Status = m.StatusInstalled
		} else {
			fi.Status = m.StatusHashMismatch
		}
	case file.Ignore:
		fi.Status = m.StatusIgnored
	default:
		fi.Status = m.StatusNotInstalled
	}

	return fi, nil
}
