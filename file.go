package honoka

import (
	"fmt"
	"io"
	"os"

	"github.com/absfs/absfs"
)

// AssetFile composes a CipherEngine with an underlying file handle,
// presenting the plaintext view of an obfuscated asset. Reads decrypt,
// writes encrypt (the transform is symmetric), and Seek repositions both
// the handle and the keystream. Offsets are plaintext offsets; the header
// is invisible to callers.
type AssetFile struct {
	base   absfs.File
	engine CipherEngine
	region *Region
}

// newAssetReader wraps an existing obfuscated file. It reads the first 16
// bytes, probes them against candidates with opts, and leaves the handle
// positioned at the start of the ciphertext.
func newAssetReader(base absfs.File, candidates []Region, opts *Options) (*AssetFile, error) {
	header := make([]byte, v3HeaderSize)
	n, err := io.ReadFull(base, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}

	engine, region, err := ProbeRegions(base.Name(), header[:n], candidates, opts)
	if err != nil {
		return nil, err
	}

	if _, err := base.Seek(int64(engine.HeaderSize()), io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek past header: %w", err)
	}

	return &AssetFile{base: base, engine: engine, region: region}, nil
}

// newAssetWriter wraps a fresh file for encryption. The engine's header is
// written immediately so ciphertext can follow.
func newAssetWriter(base absfs.File, engine CipherEngine, region *Region) (*AssetFile, error) {
	if header := engine.EmitHeader(); len(header) > 0 {
		if _, err := base.Write(header); err != nil {
			return nil, fmt.Errorf("failed to write file header: %w", err)
		}
	}
	return &AssetFile{base: base, engine: engine, region: region}, nil
}

// Engine returns the cipher engine driving this file.
func (f *AssetFile) Engine() CipherEngine { return f.engine }

// Region returns the region the file matched (or was encrypted under).
func (f *AssetFile) Region() *Region { return f.region }

// Name returns the name of the underlying file.
func (f *AssetFile) Name() string { return f.base.Name() }

// Read reads and decrypts from the current position.
func (f *AssetFile) Read(p []byte) (int, error) {
	n, err := f.base.Read(p)
	for i := 0; i < n; i++ {
		p[i] = f.engine.DecryptByte(p[i])
	}
	return n, err
}

// ReadAt reads and decrypts len(b) bytes starting at plaintext offset off.
// The current position is restored afterwards.
func (f *AssetFile) ReadAt(b []byte, off int64) (int, error) {
	old := f.engine.Pos()
	if _, err := f.Seek(off, io.SeekStart); err != nil {
		return 0, err
	}
	n, err := f.Read(b)
	if _, serr := f.Seek(old, io.SeekStart); serr != nil && err == nil {
		err = serr
	}
	return n, err
}

// Write encrypts and writes at the current position. The caller's buffer is
// not modified.
func (f *AssetFile) Write(p []byte) (int, error) {
	enc := f.engine.DecryptBlock(p)
	n, err := f.base.Write(enc)
	if n < len(p) {
		// The keystream advanced over bytes that never landed; rewind it to
		// the bytes actually written.
		f.engine.GotoOffset(f.engine.Pos() - int64(len(p)-n))
	}
	return n, err
}

// WriteAt encrypts and writes len(b) bytes at plaintext offset off,
// restoring the current position afterwards.
func (f *AssetFile) WriteAt(b []byte, off int64) (int, error) {
	old := f.engine.Pos()
	if _, err := f.Seek(off, io.SeekStart); err != nil {
		return 0, err
	}
	n, err := f.Write(b)
	if _, serr := f.Seek(old, io.SeekStart); serr != nil && err == nil {
		err = serr
	}
	return n, err
}

// WriteString encrypts and writes s at the current position.
func (f *AssetFile) WriteString(s string) (int, error) {
	return f.Write([]byte(s))
}

// Seek sets the plaintext offset for the next Read or Write. Seeking
// backward replays the keystream from the start of the data region, which
// costs O(offset).
func (f *AssetFile) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = f.engine.Pos() + offset
	case io.SeekEnd:
		info, err := f.base.Stat()
		if err != nil {
			return 0, err
		}
		target = info.Size() - int64(f.engine.HeaderSize()) + offset
	default:
		return 0, &ValidationError{Field: "whence", Value: whence, Message: "invalid whence"}
	}
	if target < 0 {
		return 0, &ValidationError{Field: "offset", Value: target, Message: "negative position"}
	}

	if _, err := f.base.Seek(target+int64(f.engine.HeaderSize()), io.SeekStart); err != nil {
		return 0, err
	}
	f.engine.GotoOffset(target)
	return target, nil
}

// Stat returns file information with the size adjusted to exclude the
// header.
func (f *AssetFile) Stat() (os.FileInfo, error) {
	info, err := f.base.Stat()
	if err != nil {
		return nil, err
	}
	return &assetFileInfo{FileInfo: info, headerSize: int64(f.engine.HeaderSize())}, nil
}

// Sync flushes the underlying file.
func (f *AssetFile) Sync() error { return f.base.Sync() }

// Truncate changes the plaintext size of the file.
func (f *AssetFile) Truncate(size int64) error {
	if size < 0 {
		return &ValidationError{Field: "size", Value: size, Message: "negative size"}
	}
	return f.base.Truncate(size + int64(f.engine.HeaderSize()))
}

// Close closes the underlying file. The engine is discarded with the
// stream and never outlives it.
func (f *AssetFile) Close() error { return f.base.Close() }

// Readdir delegates to the underlying file.
func (f *AssetFile) Readdir(n int) ([]os.FileInfo, error) { return f.base.Readdir(n) }

// Readdirnames delegates to the underlying file.
func (f *AssetFile) Readdirnames(n int) ([]string, error) { return f.base.Readdirnames(n) }

// assetFileInfo wraps os.FileInfo to report the plaintext size.
type assetFileInfo struct {
	os.FileInfo
	headerSize int64
}

// Size returns the size of the decrypted content.
func (i *assetFileInfo) Size() int64 {
	size := i.FileInfo.Size() - i.headerSize
	if size < 0 {
		size = 0
	}
	return size
}
