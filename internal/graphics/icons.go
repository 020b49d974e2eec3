package graphics

import (
	"hash/fnv"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// IconSize is the edge length of placeholder icons.
const IconSize = 14

// IconManager loads item icons from a directory of PNGs and caches them.
// Icons without a file get a flat placeholder tinted by name.
type IconManager struct {
	dir   string
	icons map[string]*ebiten.Image
}

func NewIconManager(dir string) *IconManager {
	return &IconManager{
		dir:   dir,
		icons: make(map[string]*ebiten.Image),
	}
}

// GetIcon returns the icon for name, or nil for an empty name.
func (im *IconManager) GetIcon(name string) *ebiten.Image {
	if name == "" {
		return nil
	}
	if icon, exists := im.icons[name]; exists {
		return icon
	}
	icon := im.load(name)
	if icon == nil {
		icon = ebiten.NewImage(IconSize, IconSize)
		icon.Fill(PlaceholderColor(name))
	}
	im.icons[name] = icon
	return icon
}

func (im *IconManager) load(name string) *ebiten.Image {
	file, err := os.Open(im.Path(name))
	if err != nil {
		return nil
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil
	}
	return ebiten.NewImageFromImage(img)
}

// Path is where the icon file for name is looked up.
func (im *IconManager) Path(name string) string {
	return filepath.Join(im.dir, name+".png")
}

// PlaceholderColor picks a stable mid-tone color for name.
func PlaceholderColor(name string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(name))
	sum := h.Sum32()
	return color.RGBA{
		R: 64 + uint8(sum&0x7f),
		G: 64 + uint8((sum>>8)&0x7f),
		B: 64 + uint8((sum>>16)&0x7f),
		A: 255,
	}
}
