package leveldata

import (
	"io"
	"strconv"
	"strings"
)

// bgLayerFields is the number of value lines following a "bglayer" header.
const bgLayerFields = 9

// ParseTheme reads a theme file: "bglayer" sections listing an image and
// eight integers, and texture sections of "slot: path" lines.
func ParseTheme(r io.Reader, path string) (*Theme, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Path: path, Msg: "read theme", Err: err}
	}

	theme := &Theme{Textures: make(map[string]string)}
	for _, s := range splitSections(string(data)) {
		if len(s.lines) == 0 {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(s.lines[0]), "bglayer") {
			layer, err := parseBGLayer(s, path)
			if err != nil {
				return nil, err
			}
			theme.BG = append(theme.BG, layer)
			continue
		}
		for i, l := range s.lines {
			if strings.TrimSpace(l) == "" {
				continue
			}
			slot, file, ok := splitPair(l)
			if !ok {
				return nil, loadErr(path, s.line+i, "texture entry %q has no ':'", l)
			}
			theme.Textures[slot] = file
		}
	}
	return theme, nil
}

func parseBGLayer(s section, path string) (BGLayer, error) {
	if len(s.lines) < 1+bgLayerFields {
		return BGLayer{}, loadErr(path, s.line, "bglayer needs %d values, found %d", bgLayerFields, len(s.lines)-1)
	}

	var nums [bgLayerFields - 1]int
	for i := range nums {
		line := strings.TrimSpace(s.lines[2+i])
		n, err := strconv.Atoi(line)
		if err != nil {
			return BGLayer{}, &LoadError{Path: path, Line: s.line + 2 + i, Msg: "bglayer value", Err: err}
		}
		nums[i] = n
	}

	return BGLayer{
		Image:   strings.TrimSpace(s.lines[1]),
		OffX:    nums[0],
		OffY:    nums[1],
		ParaX:   nums[2],
		ParaY:   nums[3],
		ScrollX: nums[4],
		ScrollY: nums[5],
		ModX:    nums[6],
		ModY:    nums[7],
	}, nil
}
