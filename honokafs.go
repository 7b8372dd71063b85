package honoka

import (
	"fmt"
	"os"
	"time"

	"github.com/absfs/absfs"
)

// Config configures an FS.
type Config struct {
	// Regions are the candidate regions for probing opened files.
	// Nil means the built-in four.
	Regions []Region

	// Options control construction when opening files; nil means
	// DefaultOptions. Setting Options.Version forces that generation for
	// every opened file, which is the only way to read version 1 assets.
	Options *Options

	// EncryptRegion is the region newly created files are encrypted under.
	// Defaults to "JP".
	EncryptRegion string

	// EncryptVersion is the generation newly created files are encrypted
	// with. Defaults to 4.
	EncryptVersion int
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return &ValidationError{Field: "config", Message: "config cannot be nil"}
	}
	if c.EncryptVersion < 0 || c.EncryptVersion > 4 {
		return ErrVersionOutOfRange
	}
	for i := range c.Regions {
		if len(c.Regions[i].Prefix) == 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("regions[%d]", i),
				Message: "region prefix cannot be empty",
			}
		}
	}
	if c.Options != nil {
		return c.Options.Validate()
	}
	return nil
}

// FS implements absfs.FileSystem with transparent asset decryption. Opened
// files are probed and decrypted on read; created files are encrypted under
// the configured region and version. Paths are untouched; only contents are
// transformed.
type FS struct {
	base       absfs.FileSystem
	regions    []Region
	options    *Options
	encRegion  Region
	encVersion int
	encOptions Options
}

// NewFS creates a decrypting filesystem wrapping the base filesystem.
func NewFS(base absfs.FileSystem, config *Config) (*FS, error) {
	if base == nil {
		return nil, &ValidationError{Field: "base", Message: "base filesystem cannot be nil"}
	}
	if config == nil {
		config = &Config{}
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	regionSet := config.Regions
	if regionSet == nil {
		regionSet = Regions()
	}

	opts := config.Options
	if opts == nil {
		opts = DefaultOptions()
	}

	encName := config.EncryptRegion
	if encName == "" {
		encName = "JP"
	}
	var encRegion *Region
	for i := range regionSet {
		if regionSet[i].Name == encName {
			encRegion = &regionSet[i]
			break
		}
	}
	if encRegion == nil {
		return nil, ErrUnknownRegion
	}

	encVersion := config.EncryptVersion
	if encVersion == 0 {
		encVersion = 4
	}

	encOpts := *opts
	encOpts.Version = encVersion

	return &FS{
		base:       base,
		regions:    regionSet,
		options:    opts,
		encRegion:  *encRegion,
		encVersion: encVersion,
		encOptions: encOpts,
	}, nil
}

// Open opens an asset for reading with transparent decryption.
func (fs *FS) Open(name string) (absfs.File, error) {
	return fs.OpenFile(name, os.O_RDONLY, 0)
}

// Create creates or truncates an asset for writing with transparent
// encryption under the configured region and version.
func (fs *FS) Create(name string) (absfs.File, error) {
	return fs.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
}

// OpenFile opens an asset with the specified flags and permissions. A file
// that is created or truncated gets a fresh encryption engine and header;
// an existing file is probed.
func (fs *FS) OpenFile(name string, flag int, perm os.FileMode) (absfs.File, error) {
	baseFile, err := fs.base.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}

	info, err := baseFile.Stat()
	if err != nil {
		baseFile.Close()
		return nil, err
	}

	if info.Size() == 0 {
		engine, err := Construct(fs.encRegion, name, nil, &fs.encOptions)
		if err != nil {
			baseFile.Close()
			return nil, err
		}
		region := fs.encRegion
		file, err := newAssetWriter(baseFile, engine, &region)
		if err != nil {
			baseFile.Close()
			return nil, err
		}
		return file, nil
	}

	file, err := newAssetReader(baseFile, fs.regions, fs.options)
	if err != nil {
		baseFile.Close()
		return nil, err
	}
	return file, nil
}

// Stat returns file information with sizes adjusted to exclude the asset
// header. Files that do not probe as assets are reported unchanged.
func (fs *FS) Stat(name string) (os.FileInfo, error) {
	info, err := fs.base.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return info, nil
	}

	headerSize, err := fs.headerSizeOf(name)
	if err != nil {
		return info, nil
	}
	return &assetFileInfo{FileInfo: info, headerSize: headerSize}, nil
}

// headerSizeOf probes a file just far enough to learn its header size.
func (fs *FS) headerSizeOf(name string) (int64, error) {
	f, err := fs.base.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	header := make([]byte, v3HeaderSize)
	n, _ := f.Read(header)
	engine, _, err := ProbeRegions(name, header[:n], fs.regions, fs.options)
	if err != nil {
		return 0, err
	}
	return int64(engine.HeaderSize()), nil
}

// Truncate truncates an asset to a plaintext size.
func (fs *FS) Truncate(name string, size int64) error {
	headerSize, err := fs.headerSizeOf(name)
	if err != nil {
		return err
	}
	return fs.base.Truncate(name, size+headerSize)
}

// The remaining operations pass through to the base filesystem unchanged.

// Separator returns the path separator of the underlying filesystem.
func (fs *FS) Separator() uint8 { return fs.base.Separator() }

// ListSeparator returns the list separator of the underlying filesystem.
func (fs *FS) ListSeparator() uint8 { return fs.base.ListSeparator() }

// Chdir changes the current working directory.
func (fs *FS) Chdir(dir string) error { return fs.base.Chdir(dir) }

// Getwd returns the current working directory.
func (fs *FS) Getwd() (string, error) { return fs.base.Getwd() }

// TempDir returns the temporary directory path.
func (fs *FS) TempDir() string { return fs.base.TempDir() }

// Mkdir creates a directory.
func (fs *FS) Mkdir(name string, perm os.FileMode) error { return fs.base.Mkdir(name, perm) }

// MkdirAll creates a directory and all necessary parents.
func (fs *FS) MkdirAll(name string, perm os.FileMode) error { return fs.base.MkdirAll(name, perm) }

// Remove removes a file or empty directory.
func (fs *FS) Remove(name string) error { return fs.base.Remove(name) }

// RemoveAll removes a path and any children it contains.
func (fs *FS) RemoveAll(path string) error { return fs.base.RemoveAll(path) }

// Rename renames (moves) a file. Renaming an encrypted asset breaks its
// key derivation, which depends on the base name; callers re-encrypting
// under a new name must copy through an AssetFile instead.
func (fs *FS) Rename(oldpath, newpath string) error { return fs.base.Rename(oldpath, newpath) }

// Chmod changes the mode of a file.
func (fs *FS) Chmod(name string, mode os.FileMode) error { return fs.base.Chmod(name, mode) }

// Chtimes changes the access and modification times of a file.
func (fs *FS) Chtimes(name string, atime, mtime time.Time) error {
	return fs.base.Chtimes(name, atime, mtime)
}

// Chown changes the owner and group of a file.
func (fs *FS) Chown(name string, uid, gid int) error { return fs.base.Chown(name, uid, gid) }
