package commands

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/AppleHolic/dvector/pkg/corpus"
)

// barProgress renders one mpb bar per speaker.
type barProgress struct {
	out io.Writer
	p   *mpb.Progress
	bar *mpb.Bar
}

// newProgress returns a bar renderer when w is a terminal, nil otherwise.
func newProgress(w io.Writer) corpus.Progress {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return nil
	}
	return &barProgress{out: w}
}

func (b *barProgress) Start(label string, total int) {
	b.p = mpb.New(mpb.WithOutput(b.out), mpb.WithWidth(64))
	b.bar = b.p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(label+" "),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(
			decor.Percentage(),
		),
	)
}

func (b *barProgress) Increment() {
	b.bar.Increment()
}

func (b *barProgress) Finish() {
	if !b.bar.Completed() {
		b.bar.Abort(false)
	}
	b.p.Wait()
	b.p, b.bar = nil, nil
}
