package demo

import (
	"fmt"
	"io"
)

// Separator ends every rendered block.
const Separator = "---------------------------"

// RenderText writes the report in the console format: a "<label>:" line,
// one "Num: <n>" line per emitted or returned value, then Separator.
func RenderText(w io.Writer, report *Report) error {
	for _, b := range report.Blocks {
		if err := RenderBlock(w, b); err != nil {
			return err
		}
	}
	return nil
}

// RenderBlock writes a single block.
func RenderBlock(w io.Writer, b Block) error {
	if _, err := fmt.Fprintf(w, "%s:\n", b.Label); err != nil {
		return err
	}
	for _, v := range b.Emitted {
		if _, err := fmt.Fprintf(w, "Num: %d\n", v); err != nil {
			return err
		}
	}
	if b.Result != nil {
		if _, err := fmt.Fprintf(w, "%sNum: %d\n", b.Prefix, *b.Result); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, Separator)
	return err
}
