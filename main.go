package main

import (
	"fmt"
	"image"
	"log"
	"math/rand"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"agelife/life"
)

type mainThreadRunner interface {
	RunOnMain(func())
}

type mainThreadCaller interface {
	CallOnMainThread(func())
}

// runOnMain schedules fn on the GUI thread. Driver implementations
// differ across fyne versions, hence the two interfaces.
func runOnMain(d fyne.Driver, fn func()) {
	switch drv := d.(type) {
	case mainThreadRunner:
		drv.RunOnMain(fn)
	case mainThreadCaller:
		drv.CallOnMainThread(fn)
	default:
		fn()
	}
}

func newSeededRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// drawBoard repaints the back buffer from a grid snapshot. Dead cells
// are left as background.
func drawBoard(img *image.RGBA, snap [][]life.CellView, palette life.Palette, cellW, cellH int) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.Set(x, y, palette.Background)
		}
	}

	for i := range snap {
		for j := range snap[i] {
			if !snap[i][j].Alive {
				continue
			}
			c := palette.ColorFor(snap[i][j].Age)
			for dy := 0; dy < cellH; dy++ {
				for dx := 0; dx < cellW; dx++ {
					img.Set(j*cellW+dx, i*cellH+dy, c)
				}
			}
		}
	}
}

func statusLine(s life.Stats) string {
	return fmt.Sprintf("Gen %d - Pop %d (%.1f%%) - Avg age: %.1f",
		s.Generation, s.Population, s.Density*100, s.AvgAge)
}

func main() {
	cfg := DefaultConfig()

	a := app.New()
	w := a.NewWindow("Conway's Game of Life")

	grid, err := life.New(cfg.Rows, cfg.Cols, newSeededRand(cfg.Seed))
	if err != nil {
		log.Fatal(err)
	}
	grid.Seed(cfg.Threshold)

	cellW := displayWidth / cfg.Cols
	cellH := displayHeight / cfg.Rows

	img := image.NewRGBA(image.Rect(0, 0, cfg.Cols*cellW, cfg.Rows*cellH))
	drawBoard(img, grid.Snapshot(), cfg.Palette, cellW, cellH)

	canvasImg := canvas.NewImageFromImage(img)
	canvasImg.FillMode = canvas.ImageFillOriginal
	canvasImg.SetMinSize(fyne.NewSize(float32(displayWidth), float32(displayHeight)))

	statusLabel := widget.NewLabel(statusLine(grid.Stats()))

	paused := false
	pauseButton := widget.NewButton("Pause", nil)
	pauseButton.OnTapped = func() {
		paused = !paused
		if paused {
			pauseButton.SetText("Resume")
		} else {
			pauseButton.SetText("Pause")
		}
	}

	restartButton := widget.NewButton("Restart", func() {
		grid.Seed(cfg.Threshold)
		drawBoard(img, grid.Snapshot(), cfg.Palette, cellW, cellH)
		statusLabel.SetText(statusLine(grid.Stats()))
		canvasImg.Refresh()
	})

	controls := container.NewGridWithColumns(2, pauseButton, restartButton)
	content := container.NewBorder(
		nil,
		container.NewVBox(statusLabel, controls),
		nil,
		nil,
		canvasImg,
	)

	w.SetContent(content)
	w.Resize(fyne.NewSize(float32(displayWidth), float32(displayHeight+100)))
	w.CenterOnScreen()

	driver := a.Driver()

	go func() {
		ticker := time.NewTicker(cfg.Period)
		defer ticker.Stop()

		for range ticker.C {
			if paused {
				continue
			}

			grid.Advance()
			drawBoard(img, grid.Snapshot(), cfg.Palette, cellW, cellH)
			msg := statusLine(grid.Stats())

			runOnMain(driver, func() {
				statusLabel.SetText(msg)
				canvasImg.Refresh()
			})
		}
	}()

	w.ShowAndRun()
}
