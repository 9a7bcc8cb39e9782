// Package terminal plays the game in a text terminal through tcell.
package terminal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridsnake/game"
	"gridsnake/game/types"
)

const (
	runeBody  = tcell.RuneBlock
	runeHead  = '@'
	runeApple = tcell.RuneDiamond

	// every board cell is two columns wide so it looks square
	cellWidth = 2
)

var playerColors = []tcell.Color{
	tcell.ColorGreen,
	tcell.ColorDodgerBlue,
	tcell.ColorOrange,
	tcell.ColorMediumPurple,
}

// Renderer draws frames and the score line on a tcell screen. All methods
// are safe to call from the session goroutine and the input goroutine.
type Renderer struct {
	mu     sync.Mutex
	screen tcell.Screen
	now    func() time.Time

	grid        types.Grid
	frame       game.Frame
	scores      []int
	notice      string
	noticeUntil time.Time
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, now: time.Now}
}

func (r *Renderer) Begin(grid types.Grid) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.grid = grid
	r.frame = game.Frame{}
	r.scores = nil
}

func (r *Renderer) Draw(frame game.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frame = frame
	r.redraw("")
}

func (r *Renderer) Scores(scores []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scores = scores
	r.redraw("")
}

// GameOver keeps the final board on screen; the prompt is drawn by the
// frontend.
func (r *Renderer) GameOver(summary game.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scores = summary.Scores
	r.redraw("")
}

// Notice flashes a one-line message under the scores for d.
func (r *Renderer) Notice(msg string, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notice = msg
	r.noticeUntil = r.now().Add(d)
	r.redraw("")
}

// Prompt redraws the board with a question in place of the notice line.
func (r *Renderer) Prompt(question string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.redraw(question)
}

func (r *Renderer) redraw(prompt string) {
	s := r.screen
	s.Clear()

	w, h := r.grid.Width*cellWidth, r.grid.Height
	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 0; x <= w+1; x++ {
		s.SetContent(x, 0, tcell.RuneHLine, nil, border)
		s.SetContent(x, h+1, tcell.RuneHLine, nil, border)
	}
	for y := 0; y <= h+1; y++ {
		s.SetContent(0, y, tcell.RuneVLine, nil, border)
		s.SetContent(w+1, y, tcell.RuneVLine, nil, border)
	}
	s.SetContent(0, 0, tcell.RuneULCorner, nil, border)
	s.SetContent(w+1, 0, tcell.RuneURCorner, nil, border)
	s.SetContent(0, h+1, tcell.RuneLLCorner, nil, border)
	s.SetContent(w+1, h+1, tcell.RuneLRCorner, nil, border)

	prevOwner := -1
	for _, sp := range r.frame.Sprites {
		if !r.grid.Contains(sp.Cell) {
			if sp.Kind == types.KindSnake {
				prevOwner = sp.Owner
			}
			continue
		}
		ch, style := runeApple, tcell.StyleDefault.Foreground(tcell.ColorRed)
		if sp.Kind == types.KindSnake {
			style = tcell.StyleDefault.Foreground(playerColors[sp.Owner%len(playerColors)])
			ch = runeBody
			if sp.Owner != prevOwner {
				ch = runeHead
				style = style.Bold(true)
			}
			prevOwner = sp.Owner
		}
		x, y := 1+sp.Cell.X*cellWidth, 1+sp.Cell.Y
		for i := 0; i < cellWidth; i++ {
			s.SetContent(x+i, y, ch, nil, style)
		}
	}

	x := 0
	for i, score := range r.scores {
		x = drawText(s, x, h+2, tcell.StyleDefault.Foreground(playerColors[i%len(playerColors)]), fmt.Sprintf("P%d: %d  ", i+1, score))
	}
	drawText(s, x, h+2, tcell.StyleDefault.Foreground(tcell.ColorGray), fmt.Sprintf("tick %d", r.frame.Tick))

	switch {
	case prompt != "":
		drawText(s, 0, h+3, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true), prompt)
	case r.notice != "" && r.now().Before(r.noticeUntil):
		drawText(s, 0, h+3, tcell.StyleDefault.Foreground(tcell.ColorYellow), r.notice)
	}
	s.Show()
}

// drawText writes str from (x, y) and returns the column after it.
func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) int {
	for _, ch := range str {
		s.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
