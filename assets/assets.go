package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/notmarioland/leveldata"
)

var (
	//go:embed all:levels
	levelsFS embed.FS
)

// DemoDir is the bundled levelset inside Levels.
const DemoDir = "levels/demo"

// Levels returns the embedded levelsets.
func Levels() fs.FS {
	return levelsFS
}

// LoadDemo loads the bundled levelset.
func LoadDemo() (*leveldata.Levelset, error) {
	return leveldata.LoadLevelset(levelsFS, DemoDir)
}
