package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/automoto/notmarioland/gamemath"
)

// ManifestName is the levelset manifest file inside a levelset directory.
const ManifestName = "levels.levelset"

// LoadLevelset reads dir/levels.levelset and every level and theme it
// lists from fsys. Level references by name are resolved to indices.
func LoadLevelset(fsys fs.FS, dir string) (*Levelset, error) {
	manifest := path.Join(dir, ManifestName)
	data, err := fs.ReadFile(fsys, manifest)
	if err != nil {
		return nil, &LoadError{Path: manifest, Msg: "read manifest", Err: err}
	}

	sections := splitSections(string(data))
	if len(sections) < 2 {
		return nil, loadErr(manifest, 0, "expected name and level list")
	}

	ls := &Levelset{
		Name:   strings.TrimSpace(strings.Join(sections[0].lines, " ")),
		Dir:    dir,
		byName: make(map[string]int),
	}

	for _, l := range sections[1].lines {
		name := strings.TrimSpace(l)
		if name == "" {
			continue
		}
		raw, err := loadLevelFile(fsys, dir, name)
		if err != nil {
			return nil, fmt.Errorf("levelset %s: %w", manifest, err)
		}
		ls.byName[name] = len(ls.Levels)
		ls.Levels = append(ls.Levels, raw)
	}
	if len(ls.Levels) == 0 {
		return nil, loadErr(manifest, sections[1].line, "levelset lists no levels")
	}
	for i, raw := range ls.Levels {
		if _, ok := ls.byName[raw.Name]; !ok {
			ls.byName[raw.Name] = i
		}
	}

	if len(sections) > 2 {
		for _, l := range sections[2].lines {
			name := strings.TrimSpace(l)
			if name == "" {
				continue
			}
			if name == "null" {
				ls.Themes = append(ls.Themes, nil)
				continue
			}
			theme, err := loadThemeFile(fsys, dir, name)
			if err != nil {
				return nil, fmt.Errorf("levelset %s: %w", manifest, err)
			}
			ls.Themes = append(ls.Themes, theme)
		}
	}

	if err := ls.resolve(); err != nil {
		return nil, err
	}

	for _, raw := range ls.Levels {
		ls.SecretCount += raw.Secrets
	}
	log.Printf("Loaded levelset %q: %d levels, %d themes, %d secrets", ls.Name, len(ls.Levels), len(ls.Themes), ls.SecretCount)
	return ls, nil
}

// loadLevelFile reads name.lvl, falling back to name.tmx.
func loadLevelFile(fsys fs.FS, dir, name string) (*LevelRaw, error) {
	lvl := path.Join(dir, name+".lvl")
	f, err := fsys.Open(lvl)
	if errors.Is(err, fs.ErrNotExist) {
		tmx := path.Join(dir, name+".tmx")
		if _, statErr := fs.Stat(fsys, tmx); statErr == nil {
			return LoadTMX(fsys, tmx)
		}
	}
	if err != nil {
		return nil, &LoadError{Path: lvl, Msg: "open level", Err: err}
	}
	defer f.Close()
	return ParseLevel(f, lvl)
}

func loadThemeFile(fsys fs.FS, dir, name string) (*Theme, error) {
	p := path.Join(dir, name+".nmltheme")
	f, err := fsys.Open(p)
	if err != nil {
		return nil, &LoadError{Path: p, Msg: "open theme", Err: err}
	}
	defer f.Close()

	theme, err := ParseTheme(f, p)
	if err != nil {
		return nil, err
	}
	theme.Name = name
	return theme, nil
}

// resolve turns named references into indices and range-checks them.
func (ls *Levelset) resolve() error {
	level := func(raw *LevelRaw, what string, ref *Ref) error {
		if ref.Index < 0 {
			i, ok := ls.byName[ref.Name]
			if !ok {
				return loadErr(raw.File, 0, "%s refers to unknown level %q", what, ref.Name)
			}
			ref.Index = i
		}
		if ref.Index >= len(ls.Levels) {
			return loadErr(raw.File, 0, "%s refers to level %d, levelset has %d", what, ref.Index, len(ls.Levels))
		}
		return nil
	}

	themeNames := make(map[string]int, len(ls.Themes))
	for i, t := range ls.Themes {
		if t != nil {
			themeNames[t.Name] = i
		}
	}

	for _, raw := range ls.Levels {
		for _, d := range gamemath.Directions {
			if !raw.Exits[d].Set {
				continue
			}
			if err := level(raw, d.String()+" exit", &raw.Exits[d]); err != nil {
				return err
			}
		}
		for i := range raw.Doors {
			if err := level(raw, fmt.Sprintf("door %d", i), &raw.Doors[i]); err != nil {
				return err
			}
		}
		if raw.Theme.Set {
			if raw.Theme.Index < 0 {
				i, ok := themeNames[raw.Theme.Name]
				if !ok {
					return loadErr(raw.File, 0, "unknown theme %q", raw.Theme.Name)
				}
				raw.Theme.Index = i
			}
			if raw.Theme.Index >= len(ls.Themes) {
				return loadErr(raw.File, 0, "theme %d out of range, levelset has %d", raw.Theme.Index, len(ls.Themes))
			}
		}
	}
	return nil
}
