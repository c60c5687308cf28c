package fighterdata

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"log"
	"path"
	"strings"
)

// LoadCharacterRoster reads a manifest of character XML paths and loads each
// one. Individual failures are logged and skipped; only an empty result set
// is an error.
func LoadCharacterRoster(fsys fs.FS, manifestPath string) ([]*CharacterData, error) {
	paths, err := readManifest(fsys, manifestPath)
	if err != nil {
		return nil, err
	}

	roster := make([]*CharacterData, 0, len(paths))
	for _, p := range paths {
		c, err := LoadCharacter(fsys, p)
		if err != nil {
			log.Printf("fighterdata: skipping character %s: %v", p, err)
			continue
		}
		roster = append(roster, c)
	}
	if len(roster) == 0 {
		return nil, fmt.Errorf("%s: %w", manifestPath, ErrEmptyManifest)
	}
	return roster, nil
}

// LoadStageList reads a manifest of stage XML paths and loads each one, with
// the same skip-on-failure policy as LoadCharacterRoster.
func LoadStageList(fsys fs.FS, manifestPath string) ([]*StageData, error) {
	paths, err := readManifest(fsys, manifestPath)
	if err != nil {
		return nil, err
	}

	stages := make([]*StageData, 0, len(paths))
	for _, p := range paths {
		s, err := LoadStage(fsys, p)
		if err != nil {
			log.Printf("fighterdata: skipping stage %s: %v", p, err)
			continue
		}
		stages = append(stages, s)
	}
	if len(stages) == 0 {
		return nil, fmt.Errorf("%s: %w", manifestPath, ErrEmptyManifest)
	}
	return stages, nil
}

// readManifest returns the manifest's entries resolved relative to the
// manifest's directory. Blank lines and #-comments are skipped.
func readManifest(fsys fs.FS, manifestPath string) ([]string, error) {
	data, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", manifestPath, err)
	}

	baseDir := path.Dir(manifestPath)
	var paths []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, path.Join(baseDir, line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", manifestPath, err)
	}
	return paths, nil
}
