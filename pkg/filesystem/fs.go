package filesystem

import "io/fs"

// FS is the filesystem interface required to load and save karabiner.json
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// Copy copies src to dst, keeping the permission bits of src.
func Copy(fsys FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	data, err := fsys.ReadFile(src)
	if err != nil {
		return err
	}
	return fsys.WriteFile(dst, data, info.Mode().Perm())
}
