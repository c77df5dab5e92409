package experiments

import (
	"fmt"
	"io"

	"github.com/gosuri/uilive"
)

// Progress rewrites a single status line while training runs.
type Progress struct {
	writer *uilive.Writer
	total  int
}

func NewProgress(out io.Writer, total int) *Progress {
	writer := uilive.New()
	writer.Out = out
	return &Progress{writer: writer, total: total}
}

func (p *Progress) Start() {
	p.writer.Start()
}

func (p *Progress) Update(episode int, wins [3]int) {
	fmt.Fprintf(p.writer, "episode %d/%d  player one: %d  player two: %d  draws: %d\n",
		episode, p.total, wins[1], wins[2], wins[0])
	p.writer.Flush()
}

func (p *Progress) Stop() {
	p.writer.Stop()
}
