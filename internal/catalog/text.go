package catalog

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// loadTextDir builds one page per .txt file, ordered by file name.
func loadTextDir(dir string) (Catalog, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return Catalog{}, err
	}
	sort.Strings(paths)

	var cat Catalog
	for _, path := range paths {
		items, err := loadItems(path)
		if err != nil {
			return Catalog{}, err
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		cat.Pages = append(cat.Pages, Page{Name: name, Items: items})
	}
	return cat, nil
}

// loadItems reads one item per line, skipping blank lines.
func loadItems(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only page file.
			_ = cerr
		}
	}()

	var items []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
