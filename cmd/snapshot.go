package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/shader-backdrop/internal/backdrop"
	"github.com/iburimskiy/shader-backdrop/internal/raster"
)

var snapshotOpts struct {
	clock    uint64
	pointerX float64
	pointerY float64
	width    int
	height   int
	frames   int
	output   string
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render frames to PNG without opening a window",
	Long: `Render the backdrop for a fixed clock, pointer and size into PNG files.
The same inputs always give the same pixels, so the output can be used as
a golden image.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		o := snapshotOpts
		if o.frames < 1 {
			return fmt.Errorf("--frames must be at least 1")
		}

		canvas := raster.New(o.width, o.height)
		r, err := backdrop.New(canvas,
			backdrop.WithParams(settings.Params()),
			backdrop.WithLogger(newLogger()),
		)
		if err != nil {
			return err
		}
		r.Resize(o.width, o.height)
		r.OnPointerMove(o.pointerX, o.pointerY)
		r.SetClock(o.clock)

		for i := 0; i < o.frames; i++ {
			if i == 0 {
				r.Draw()
			} else {
				r.RenderFrame()
			}
			path := framePath(o.output, i, o.frames)
			if err := writePNG(canvas, path); err != nil {
				return err
			}
			fmt.Printf("wrote %s (clock %d)\n", path, r.Clock())
		}
		return nil
	},
}

func init() {
	f := snapshotCmd.Flags()
	f.Uint64Var(&snapshotOpts.clock, "clock", 100, "frame clock of the first frame")
	f.Float64Var(&snapshotOpts.pointerX, "pointer-x", 0.5, "pointer x as a fraction of the width")
	f.Float64Var(&snapshotOpts.pointerY, "pointer-y", 0.5, "pointer y as a fraction of the height")
	f.IntVar(&snapshotOpts.width, "width", 800, "surface width in pixels")
	f.IntVar(&snapshotOpts.height, "height", 600, "surface height in pixels")
	f.IntVar(&snapshotOpts.frames, "frames", 1, "number of consecutive frames")
	f.StringVarP(&snapshotOpts.output, "output", "o", "backdrop.png", "output PNG path")
	rootCmd.AddCommand(snapshotCmd)
}

// framePath numbers the output file when more than one frame is written.
func framePath(output string, i, frames int) string {
	if frames == 1 {
		return output
	}
	ext := filepath.Ext(output)
	return fmt.Sprintf("%s-%04d%s", strings.TrimSuffix(output, ext), i, ext)
}

func writePNG(c *raster.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := c.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
