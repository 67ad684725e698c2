package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"grid-snake/game/manager"
	"grid-snake/game/types"
)

const (
	borderPadding = 10 // Padding around game area
	maxToasts     = 4  // Most recent toasts shown at once
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	gameWidth       int32
	gameHeight      int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Stats panel takes a fixed share of the window width
	r.statsPanel = r.screenWidth / 4

	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func (r *Renderer) Draw(snap manager.Snapshot, toasts []Toast) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/30, r.statsPanel/10)
	lineHeight := fontSize + fontSize/2

	// Cell size from the available space and grid dimensions
	availableWidth := r.gameWidth - (borderPadding * 2)
	availableHeight := r.gameHeight - (borderPadding * 2)
	cellW := availableWidth / int32(snap.Grid.Width)
	cellH := availableHeight / int32(snap.Grid.Height)
	r.cellSize = min(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(snap.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(snap.Grid.Height)

	// Center the grid in the game area
	r.offsetX = borderPadding + (r.gameWidth-r.totalGridWidth)/2
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	// Grid background and lines
	rl.DrawRectangle(
		r.offsetX-1,
		r.offsetY-1,
		r.totalGridWidth+2,
		r.totalGridHeight+2,
		rl.DarkGray)

	for x := 0; x < snap.Grid.Width; x++ {
		for y := 0; y < snap.Grid.Height; y++ {
			rl.DrawRectangleLines(
				r.offsetX+int32(x*int(r.cellSize)),
				r.offsetY+int32(y*int(r.cellSize)),
				r.cellSize, r.cellSize, rl.Gray)
		}
	}

	for x := 0; x < snap.Grid.Width; x++ {
		for y := 0; y < snap.Grid.Height; y++ {
			p := types.Point{X: x, Y: y}
			var color rl.Color
			switch snap.ClassifyCell(p) {
			case manager.CellSnakeHead:
				color = rl.Lime
			case manager.CellSnakeBody:
				color = rl.Green
			case manager.CellFood:
				color = rl.Red
			default:
				continue
			}
			rl.DrawRectangle(
				r.offsetX+int32(x*int(r.cellSize)),
				r.offsetY+int32(y*int(r.cellSize)),
				r.cellSize, r.cellSize, color)
		}
	}

	r.drawStatusBanner(snap, fontSize)
	r.drawStatsPanel(snap, fontSize, lineHeight)
	r.drawToasts(toasts, fontSize)

	rl.EndDrawing()
}

func (r *Renderer) drawStatusBanner(snap manager.Snapshot, fontSize int32) {
	var banner string
	switch snap.Status {
	case manager.StatusIdle:
		banner = "PRESS SPACE TO START"
	case manager.StatusPaused:
		banner = "PAUSED - SPACE RESUMES"
	case manager.StatusGameOver:
		banner = "GAME OVER - SPACE RESTARTS"
	default:
		return
	}

	bannerSize := fontSize * 2
	width := rl.MeasureText(banner, bannerSize)
	x := r.offsetX + (r.totalGridWidth-width)/2
	y := r.offsetY + r.totalGridHeight/2 - bannerSize/2
	rl.DrawRectangle(x-10, y-5, width+20, bannerSize+10, rl.Color{R: 0, G: 0, B: 0, A: 200})
	rl.DrawText(banner, x, y, bannerSize, rl.Yellow)
}

func (r *Renderer) drawStatsPanel(snap manager.Snapshot, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(r.gameWidth, 0, r.statsPanel, r.screenHeight, rl.DarkGray)

	rl.DrawText("SNAKE", statsX, statsY, fontSize*2, rl.White)
	statsY += lineHeight * 2

	rl.DrawText("Score:", statsX, statsY, fontSize, rl.LightGray)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("%d", snap.Score), statsX+10, statsY, fontSize, rl.White)
	statsY += lineHeight * 2

	rl.DrawText("High Score:", statsX, statsY, fontSize, rl.LightGray)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("%d", snap.HighScore), statsX+10, statsY, fontSize, rl.Gold)
	statsY += lineHeight * 2

	rl.DrawText(fmt.Sprintf("State: %s", snap.Status), statsX, statsY, fontSize, rl.LightGray)
	statsY += lineHeight * 2

	rl.DrawText("Arrows: steer", statsX, statsY, fontSize, rl.Gray)
	statsY += lineHeight
	rl.DrawText("Space: start/pause", statsX, statsY, fontSize, rl.Gray)
	statsY += lineHeight
	rl.DrawText("R: reset", statsX, statsY, fontSize, rl.Gray)
}

func (r *Renderer) drawToasts(toasts []Toast, fontSize int32) {
	if len(toasts) > maxToasts {
		toasts = toasts[len(toasts)-maxToasts:]
	}

	y := r.screenHeight - 10
	for i := len(toasts) - 1; i >= 0; i-- {
		t := toasts[i]
		var color rl.Color
		switch t.Severity {
		case manager.SeveritySuccess:
			color = rl.Green
		case manager.SeverityWarning:
			color = rl.Orange
		default:
			color = rl.SkyBlue
		}

		text := fmt.Sprintf("%s: %s", t.Title, t.Message)
		width := rl.MeasureText(text, fontSize)
		y -= fontSize + 10
		rl.DrawRectangle(5, y-3, width+10, fontSize+6, rl.Color{R: 0, G: 0, B: 0, A: 180})
		rl.DrawText(text, 10, y, fontSize, color)
	}
}
