package termsim

import (
	"github.com/nsf/termbox-go"

	"periph.io/x/devices/v3/segmux/segcode"
)

// Screen shows frames on the terminal with termbox.
type Screen struct {
	quit chan struct{}
	done chan struct{}
}

// OpenScreen takes over the terminal. Call Close to give it back.
func OpenScreen() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()

	s := &Screen{
		quit: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go s.poll()
	return s, nil
}

func (s *Screen) poll() {
	defer close(s.done)
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventInterrupt:
			return
		case termbox.EventKey:
			if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q' {
				select {
				case s.quit <- struct{}{}:
				default:
				}
			}
		}
	}
}

// Draw renders frame with a status line below it.
func (s *Screen) Draw(frame [NumDigits]segcode.Code, status string) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	for y, row := range Render(frame) {
		put(1, y+1, row, termbox.ColorRed|termbox.AttrBold)
	}
	put(1, RenderRows+2, status, termbox.ColorDefault)
	put(1, RenderRows+3, "press q to quit", termbox.ColorDefault)
	return termbox.Flush()
}

func put(x, y int, text string, fg termbox.Attribute) {
	for i, ch := range text {
		termbox.SetCell(x+i, y, ch, fg, termbox.ColorDefault)
	}
}

// Quit returns a channel that receives when the user asks to quit.
func (s *Screen) Quit() <-chan struct{} {
	return s.quit
}

// Close restores the terminal.
func (s *Screen) Close() {
	termbox.Interrupt()
	<-s.done
	termbox.Close()
}
