package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
)

// CommandHandler is called for each input line. It returns the reply to
// print and whether the loop should stop.
type CommandHandler func(command string) (reply string, quit bool)

// Lines reads r line by line on its own goroutine. The channel is closed
// at end of input or when ctx is cancelled.
func Lines(ctx context.Context, r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case ch <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			log.Printf("[WARN] read input: %v", err)
		}
	}()
	return ch
}

// Run prompts, reads commands from lines and writes replies to out until
// the handler asks to quit, input ends, or ctx is cancelled.
func Run(ctx context.Context, lines <-chan string, out io.Writer, prompt string, handler CommandHandler) {
	for {
		fmt.Fprint(out, prompt)
		select {
		case <-ctx.Done():
			log.Println("[INFO] shell stopped")
			return
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return
			}
			text := strings.TrimSpace(line)
			if text == "" {
				continue
			}
			reply, quit := handler(text)
			if reply != "" {
				fmt.Fprintln(out, reply)
			}
			if quit {
				return
			}
		}
	}
}
