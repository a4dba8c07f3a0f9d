package concatenate

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/semaphore"

	"github.com/vitruves/bindery/internal/comments"
	"github.com/vitruves/bindery/internal/ignore"
	"github.com/vitruves/bindery/internal/language"
	"github.com/vitruves/bindery/internal/logger"
)

type candidate struct {
	path     string
	display  string
	language language.Language
}

// Collect walks config.Roots and returns the kept files sorted by display
// path. Only malformed exclusion patterns fail the call; files that cannot
// be read or are not valid UTF-8 are skipped.
func Collect(config Config) ([]Entry, error) {
	log := config.Logger

	opts := ignore.Options{
		Patterns:      config.Exclude,
		IncludeHidden: config.IncludeHidden,
		Gitignore:     config.Gitignore,
	}
	if err := ignore.Validate(opts.Patterns); err != nil {
		return nil, err
	}

	workDir, err := resolveWorkDir(config.WorkDir)
	if err != nil {
		return nil, err
	}

	var output os.FileInfo
	if config.OutputFile != "" {
		if info, err := os.Stat(config.OutputFile); err == nil {
			output = info
		}
	}

	var files []candidate
	seen := make(map[string]bool)
	for _, root := range resolveRoots(config.Roots, log) {
		matcher, err := ignore.New(opts)
		if err != nil {
			return nil, err
		}
		found := walkRoot(root, workDir, matcher, output, log)
		for _, f := range found {
			if seen[f.path] {
				continue
			}
			seen[f.path] = true
			files = append(files, f)
		}
	}

	log.Debug("Found %d candidate files", len(files))
	entries := readAll(files, config)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

func resolveWorkDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	return abs, nil
}

// resolveRoots makes every root absolute and symlink-free and drops
// duplicates. Roots that do not exist are reported and skipped.
func resolveRoots(roots []string, log *logger.Logger) []string {
	if len(roots) == 0 {
		roots = []string{"."}
	}
	var out []string
	seen := make(map[string]bool)
	for _, r := range roots {
		abs, err := filepath.Abs(r)
		if err != nil {
			log.Warning("Skipping %s: %v", r, err)
			continue
		}
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			log.Warning("Skipping %s: %v", r, err)
			continue
		}
		if seen[resolved] {
			continue
		}
		seen[resolved] = true
		out = append(out, resolved)
	}
	return out
}

func walkRoot(root, workDir string, matcher *ignore.Matcher, output os.FileInfo, log *logger.Logger) []candidate {
	var found []candidate

	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debug("Skipping %s: %v", path, err)
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		// Symbolic links are never followed.
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		if d.IsDir() {
			if matcher.Excluded(rel, true) {
				return filepath.SkipDir
			}
			matcher.LoadRules(path, rel)
			return nil
		}

		if !d.Type().IsRegular() || matcher.Excluded(rel, false) {
			return nil
		}

		if output != nil {
			if info, err := d.Info(); err == nil && os.SameFile(output, info) {
				return nil
			}
		}

		lang, ok := language.Classify(path)
		if !ok {
			return nil
		}

		found = append(found, candidate{
			path:     path,
			display:  displayPath(workDir, path),
			language: lang,
		})
		return nil
	})

	return found
}

func displayPath(workDir, path string) string {
	if rel, err := filepath.Rel(workDir, path); err == nil && filepath.IsLocal(rel) {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(path)
}

// readAll loads every candidate on a bounded pool. Results keep the index of
// their candidate so the outcome does not depend on scheduling.
func readAll(files []candidate, config Config) []Entry {
	jobs := config.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	var bar *progressbar.ProgressBar
	if config.Progress && len(files) > 0 {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Reading files"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionClearOnFinish(),
		)
	}

	sem := semaphore.NewWeighted(int64(jobs))
	var mu sync.Mutex
	var wg sync.WaitGroup

	results := make([]*Entry, len(files))

	for i, file := range files {
		wg.Add(1)
		go func(idx int, c candidate) {
			defer wg.Done()
			if err := sem.Acquire(context.Background(), 1); err != nil {
				return
			}
			defer sem.Release(1)

			entry, ok := readEntry(c, config.StripComments, config.Logger)

			mu.Lock()
			if ok {
				results[idx] = &entry
			}
			if bar != nil {
				bar.Add(1)
			}
			mu.Unlock()
		}(i, file)
	}

	wg.Wait()
	if bar != nil {
		bar.Finish()
	}

	entries := make([]Entry, 0, len(results))
	for _, e := range results {
		if e != nil {
			entries = append(entries, *e)
		}
	}
	return entries
}

// readEntry returns false for files that cannot be read or are not text.
func readEntry(c candidate, strip bool, log *logger.Logger) (Entry, bool) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		log.Debug("Skipping %s: %v", c.display, err)
		return Entry{}, false
	}
	if !utf8.Valid(data) {
		log.Debug("Skipping %s: not UTF-8 text", c.display)
		return Entry{}, false
	}

	content := string(data)
	if strip {
		content = comments.Strip(content, language.Describe(c.language))
	}
	return Entry{Path: c.display, Content: content, Language: c.language}, true
}
