package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var (
	styleFree     = tcell.StyleDefault
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePath     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleWaypoint = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEndpoint = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus   = tcell.StyleDefault.Reverse(true)
)

// viewport maps grid cells onto screen cells. Several grid cells share a screen
// cell when the grid is larger than the screen; grid row 0 is drawn at the bottom.
type viewport struct {
	scale int
	rows  int // screen rows used by the map
	cols  int
}

func newViewport(grid *OccupancyGrid, screenW, screenH int) viewport {
	mapH := screenH - 1 // status line
	if mapH < 1 {
		mapH = 1
	}
	if screenW < 1 {
		screenW = 1
	}
	scale := 1
	for (grid.Height+scale-1)/scale > mapH || (grid.Width+scale-1)/scale > screenW {
		scale++
	}
	return viewport{
		scale: scale,
		rows:  (grid.Height + scale - 1) / scale,
		cols:  (grid.Width + scale - 1) / scale,
	}
}

func (v viewport) screenPos(c Cell) (x, y int) {
	return c.Col / v.scale, v.rows - 1 - c.Row/v.scale
}

// DrawPlan renders the grid, the traced path, its waypoints and both endpoints,
// with a one-line summary at the bottom. It does not call Show.
func DrawPlan(screen tcell.Screen, grid *OccupancyGrid, res PlanResult) {
	screen.Clear()
	w, h := screen.Size()
	v := newViewport(grid, w, h)

	for sy := 0; sy < v.rows; sy++ {
		for sx := 0; sx < v.cols; sx++ {
			screen.SetContent(sx, sy, ' ', nil, styleFree)
		}
	}
	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			c := Cell{Row: row, Col: col}
			if grid.IsObstacle(c) {
				x, y := v.screenPos(c)
				screen.SetContent(x, y, '█', nil, styleObstacle)
			}
		}
	}

	if len(res.Cells) > 0 {
		for _, c := range traceCells(res.Cells) {
			x, y := v.screenPos(c)
			screen.SetContent(x, y, '·', nil, stylePath)
		}
		for _, c := range res.Cells {
			x, y := v.screenPos(c)
			screen.SetContent(x, y, 'o', nil, styleWaypoint)
		}
		x, y := v.screenPos(res.Cells[0])
		screen.SetContent(x, y, 'S', nil, styleEndpoint)
		x, y = v.screenPos(res.Cells[len(res.Cells)-1])
		screen.SetContent(x, y, 'G', nil, styleEndpoint)
	}

	status := fmt.Sprintf(" %s %s  cost %.3f  waypoints %d  expanded %d  %.2f ms  1:%d ",
		res.Strategy, res.Status, res.Cost, len(res.Path), res.Expanded, res.ElapsedMs(), v.scale)
	for i, r := range []rune(status) {
		if i >= w {
			break
		}
		screen.SetContent(i, h-1, r, nil, styleStatus)
	}
}

// showPlan displays a plan in the terminal until Esc, Ctrl-C or q is pressed
func showPlan(grid *OccupancyGrid, res PlanResult) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	DrawPlan(screen, grid, res)
	screen.Show()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
			DrawPlan(screen, grid, res)
			screen.Show()
		case nil:
			return nil
		}
	}
}
