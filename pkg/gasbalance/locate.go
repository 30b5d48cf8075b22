package gasbalance

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Locate returns the workbook to load. An explicit opts.Path must name a
// non-empty regular file. Otherwise the candidates are searched in order and
// the first non-empty regular file wins. Within a directory, matches are
// tried in lexical order.
func Locate(opts Options) (string, error) {
	logger := opts.logger()

	if opts.Path != "" {
		path := opts.resolve(opts.Path)
		if !usable(path) {
			logger.Error("workbook not found", slog.String("path", path))
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return path, nil
	}

	candidates := opts.candidates()
	for _, c := range candidates {
		dir, pattern := c.Split(opts.BaseDir)
		matches, err := matchDir(dir, pattern)
		if err != nil {
			logger.Warn("invalid search pattern",
				slog.String("dir", dir),
				slog.String("pattern", pattern),
				slog.String("error", err.Error()))
			continue
		}
		logger.Debug("searched for workbook",
			slog.String("dir", dir),
			slog.String("pattern", pattern),
			slog.Int("matches", len(matches)))

		for _, match := range matches {
			if usable(match) {
				logger.Info("found workbook", slog.String("path", match))
				return match, nil
			}
		}
	}

	logger.Error("could not find any workbook", slog.Int("candidates", len(candidates)))
	return "", ErrSourceNotFound
}

// matchDir lists dir and returns the entries whose names match pattern,
// sorted by name. The directory path itself is never treated as a pattern,
// so brackets or wildcards in it are matched literally. A missing or
// unreadable directory has no matches.
func matchDir(dir, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil
	}
	var matches []string
	for _, entry := range entries {
		if ok, _ := filepath.Match(pattern, entry.Name()); ok {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}
	return matches, nil
}

func usable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Size() > 0
}
