// Command honoka decrypts, encrypts and identifies School Idol Festival
// asset files.
//
// Usage:
//
//	honoka [options] <input> [input...]
//
// By default each input is decrypted; with a single input -o names the
// output file, otherwise files are rewritten in place. -d reports the
// detected region and version instead (with a single input the process
// exit code is the version, 0 when unknown). -e encrypts under the region
// and version given by -g and -V.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"

	honoka "github.com/DarkEnergyProcessor/honoka-go"
)

var (
	detectFlag  = flag.Bool("d", false, "detect region and version; with one input the exit code is the version")
	outputPath  = flag.String("o", "", "output file (single input) or directory (multiple inputs); default rewrites in place")
	encryptFlag = flag.Bool("e", false, "encrypt instead of decrypt")
	regionName  = flag.String("g", "", "region for -e or to restrict probing (JP, WW, TW, CN)")
	versionNum  = flag.Int("V", 0, "force a cipher version 1-4 (required for version 1, which has no header)")
	flipFlag    = flag.Bool("flip", false, "complement the version 3 initial key when encrypting")
	lcgIndex    = flag.Int("lcg", 0, "LCG parameter index 0-3 for version 4 encryption")
	lenientFlag = flag.Bool("lenient", false, "trust the header-declared name sum instead of recomputing it")
	tablesPath  = flag.String("keytables", "", "YAML file with additional region definitions")
	workerCount = flag.Int("w", 0, "worker goroutines for multiple inputs (0 = number of CPUs)")
)

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: honoka [options] <input> [input...]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	os.Exit(run(flag.Args()))
}

func run(inputs []string) int {
	candidates, err := loadCandidates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "honoka: %v\n", err)
		return 2
	}

	opts := honoka.DefaultOptions()
	opts.Version = *versionNum
	opts.FlipV3 = *flipFlag
	opts.LCGIndexV4 = *lcgIndex
	opts.EnforceNameSum = !*lenientFlag
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "honoka: %v\n", err)
		return 2
	}

	if *detectFlag {
		return detect(inputs, candidates, opts)
	}

	if len(inputs) == 1 {
		if err := processFile(inputs[0], singleOutput(inputs[0]), candidates, opts); err != nil {
			fmt.Fprintf(os.Stderr, "honoka: %s: %v\n", inputs[0], err)
			return 1
		}
		return 0
	}

	cfg := honoka.DefaultBatchConfig()
	if *workerCount > 0 {
		cfg.MaxWorkers = *workerCount
	}
	failures := honoka.RunBatch(inputs, cfg, func(path string) error {
		return processFile(path, batchOutput(path), candidates, opts)
	})
	for _, f := range failures {
		fmt.Fprintf(os.Stderr, "honoka: %v\n", &f)
	}
	if len(failures) > 0 {
		return 1
	}
	return 0
}

// loadCandidates assembles the probing candidates: built-in regions plus
// any defined in the -keytables file, optionally restricted by -g.
func loadCandidates() ([]honoka.Region, error) {
	candidates := honoka.Regions()
	if *tablesPath != "" {
		f, err := os.Open(*tablesPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		extra, err := honoka.LoadRegions(f)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, extra...)
	}

	if *regionName == "" {
		return candidates, nil
	}
	for _, r := range candidates {
		if r.Name == *regionName {
			return []honoka.Region{r}, nil
		}
	}
	return nil, fmt.Errorf("unknown region %q", *regionName)
}

// detect reports the region and version of each input. A single input
// keeps the original tool's contract: the exit code is the version number,
// 0 when the file is not recognized.
func detect(inputs []string, candidates []honoka.Region, opts *honoka.Options) int {
	type result struct {
		path    string
		region  string
		version int
		err     error
	}

	results := make([]result, len(inputs))
	var (
		wg   sync.WaitGroup
		next = make(chan int, len(inputs))
	)
	workers := *workerCount
	if workers <= 0 || workers > len(inputs) {
		workers = len(inputs)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				path := inputs[i]
				engine, region, err := probeFile(path, candidates, opts)
				if err != nil {
					results[i] = result{path: path, err: err}
					continue
				}
				results[i] = result{path: path, region: region.Name, version: engine.Version()}
			}
		}()
	}
	for i := range inputs {
		next <- i
	}
	close(next)
	wg.Wait()

	if len(inputs) == 1 {
		r := results[0]
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "honoka: %s: %v\n", r.path, r.err)
			return 0
		}
		fmt.Printf("%s: %s version %d\n", r.path, r.region, r.version)
		return r.version
	}

	sort.Slice(results, func(i, j int) bool { return results[i].path < results[j].path })
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"File", "Region", "Version"})
	for _, r := range results {
		if r.err != nil {
			t.AppendRow(table.Row{r.path, "-", fmt.Sprintf("unrecognized: %v", r.err)})
			continue
		}
		t.AppendRow(table.Row{r.path, r.region, r.version})
	}
	t.Render()
	return 0
}

// probeFile probes a file from its first 16 bytes.
func probeFile(path string, candidates []honoka.Region, opts *honoka.Options) (honoka.CipherEngine, *honoka.Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	header := make([]byte, 16)
	n, _ := f.Read(header)
	return honoka.ProbeRegions(path, header[:n], candidates, opts)
}

// singleOutput resolves the output path for a single input.
func singleOutput(input string) string {
	if *outputPath != "" {
		return *outputPath
	}
	return input
}

// batchOutput resolves the output path for one file of a batch: into the
// -o directory when given, in place otherwise.
func batchOutput(input string) string {
	if *outputPath != "" {
		return filepath.Join(*outputPath, filepath.Base(input))
	}
	return input
}

// processFile decrypts (or with -e encrypts) input into output. When the
// two paths collide the result is staged in a uniquely named temp file and
// renamed over the original, so a failure never clobbers the input.
func processFile(input, output string, candidates []honoka.Region, opts *honoka.Options) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	var out []byte
	if *encryptFlag {
		out, err = encryptData(input, data, candidates, opts)
	} else {
		out, err = decryptData(input, data, candidates, opts)
	}
	if err != nil {
		return err
	}

	if output != input {
		return os.WriteFile(output, out, 0644)
	}
	tmp := fmt.Sprintf("%s.%s.tmp", output, uuid.NewString())
	if err := os.WriteFile(tmp, out, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, output); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// decryptData probes data's header and returns the plaintext.
func decryptData(path string, data []byte, candidates []honoka.Region, opts *honoka.Options) ([]byte, error) {
	header := data
	if len(header) > 16 {
		header = header[:16]
	}
	engine, _, err := honoka.ProbeRegions(path, header, candidates, opts)
	if err != nil {
		return nil, err
	}
	return engine.DecryptBlock(data[engine.HeaderSize():]), nil
}

// encryptData encrypts data under the configured region and version,
// prepending the emitted header.
func encryptData(path string, data []byte, candidates []honoka.Region, opts *honoka.Options) ([]byte, error) {
	if len(candidates) != 1 {
		return nil, fmt.Errorf("encryption requires a single region; pass -g")
	}
	if opts.Version == 0 {
		return nil, fmt.Errorf("encryption requires an explicit version; pass -V")
	}
	engine, err := honoka.Construct(candidates[0], path, nil, opts)
	if err != nil {
		return nil, err
	}
	out := engine.EmitHeader()
	return append(out, engine.DecryptBlock(data)...), nil
}
