// Package honoka implements the asset-file obfuscation scheme used by the
// School Idol Festival mobile client, covering all four historical protocol
// generations and the four regional releases.
//
// # Overview
//
// Every asset file is XOR-obfuscated with a keystream derived from the MD5
// digest of a region-specific name prefix concatenated with the file's base
// name. Later generations additionally consult a fixed 64-entry key table
// (version 3) or a header stored in the file itself (versions 2-4). The
// cipher is symmetric: encrypting and decrypting are the same transform.
//
// The package reproduces the client's behavior byte for byte, including its
// quirks. It is an obfuscation scheme, not cryptography; do not use it to
// protect anything.
//
// # Components
//
//   - CipherEngine: per-file keystream state with byte-wise decryption,
//     random-access repositioning, and header emission. Four variants
//     (V1Engine through V4Engine), one per protocol generation.
//   - Probe: detects which region and version produced a file from its
//     first 16 bytes, trying every regional (prefix, key table) pair.
//   - Construct: the explicit, non-probing construction path.
//   - FS: an absfs.FileSystem wrapper that decrypts assets transparently.
//
// # Basic Usage
//
//	header := make([]byte, 16)
//	io.ReadFull(f, header)
//
//	engine, region, err := honoka.Probe("notes.json", header)
//	if err != nil {
//	    // honoka.IsNoSuitableMode(err): not an asset file we recognize
//	    return err
//	}
//
//	f.Seek(int64(engine.HeaderSize()), io.SeekStart)
//	ciphertext, _ := io.ReadAll(f)
//	plaintext := engine.DecryptBlock(ciphertext)
//	_ = region.Name // "JP", "WW", "TW" or "CN"
//
// # Seeking
//
// Engines support random access through GotoOffset. The keystream is
// stateful, so forward seeks replay the key schedule over the skipped
// distance and backward seeks reset it and replay from the start of the
// data region. Backward seeks are therefore O(target offset); callers that
// rewind repeatedly pay that cost each time.
//
// # Concurrency
//
// A CipherEngine is a sequential state machine and is not safe for
// concurrent use. Engines share no mutable state with each other, so
// distinct files can be processed on distinct goroutines freely; RunBatch
// provides a bounded worker pool for exactly that.
package honoka
