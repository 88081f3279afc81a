package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skybird/assets"
)

// LoadSprites decodes every named sheet and registers it for drawing.
// Sheets already registered are skipped.
func LoadSprites(names ...string) error {
	missing := make([]string, 0, len(names))
	for _, name := range names {
		if GetImage(name) == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	imgs, err := assets.LoadSprites(missing...)
	if err != nil {
		return fmt.Errorf("render: load sprites: %w", err)
	}
	for name, img := range imgs {
		RegisterImage(name, ebiten.NewImageFromImage(img))
	}
	return nil
}
