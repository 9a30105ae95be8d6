package main

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// barObserver renders eojeol counting progress as a spinner.
type barObserver struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func newBarObserver(w io.Writer) *barObserver {
	return &barObserver{w: w, bar: progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("counting eojeols"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("sents"),
		progressbar.OptionShowIts(),
		progressbar.OptionSpinnerType(14),
	)}
}

func (o *barObserver) Progress(sentences, retained int) {
	o.bar.Describe(fmt.Sprintf("counting eojeols (%d retained)", retained))
	_ = o.bar.Set(sentences)
}

func (o *barObserver) Done(sentences, retained int) {
	o.bar.Describe(fmt.Sprintf("counted eojeols (%d retained)", retained))
	_ = o.bar.Set(sentences)
	_ = o.bar.Finish()
	fmt.Fprintln(o.w)
}
