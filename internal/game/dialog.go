package game

import (
	"errors"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/digiharp/internal/audio"
)

// openSampleDialog lets the user pick another pluck sample. Cancelling the
// dialog is not an error.
func (g *Game) openSampleDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Pluck Sample"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: audio.Extensions(),
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	buf, err := audio.LoadSample(filename, g.format)
	if err != nil {
		return err
	}
	g.pool.Reload(buf)
	g.lastErr = nil
	g.logger.Info("sample loaded", "path", filename, "samples", buf.Len())
	return nil
}
