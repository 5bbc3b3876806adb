package iocli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

type Stdio struct {
	out      io.Writer
	terminal bool
}

// NewStdio пишет в os.Stdout и определяет, является ли он терминалом
func NewStdio() IO {
	return &Stdio{
		out:      os.Stdout,
		terminal: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// NewWriter пишет в w без оформления для терминала
func NewWriter(w io.Writer) IO {
	return &Stdio{out: w}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) IsTerminal() bool {
	return s.terminal
}
