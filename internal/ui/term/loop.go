package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/tweetboard/internal/view"
)

const help = `Type a message and press Enter to post it.
Start it with // to post a message beginning with /.
  /delete N   delete the N-th message
  /refresh    reload the list
  /help       show this help
  /quit       exit
`

// Run reads commands from in until EOF, /quit or context cancellation.
func Run(ctx context.Context, in io.Reader, out io.Writer, ctrl *view.Controller, surface *Surface) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("read input: %w", err)
					}
				default:
				}
				return nil
			}
			if quit := handleLine(ctx, strings.TrimSuffix(line, "\r"), out, ctrl, surface); quit {
				return nil
			}
		}
	}
}

func handleLine(ctx context.Context, line string, out io.Writer, ctrl *view.Controller, surface *Surface) bool {
	if !strings.HasPrefix(line, "/") {
		ctrl.SubmitMessage(ctx, line)
		return false
	}
	if strings.HasPrefix(line, "//") {
		ctrl.SubmitMessage(ctx, line[1:])
		return false
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/exit":
		return true
	case "/refresh":
		ctrl.RefreshList(ctx)
	case "/delete", "/rm":
		if len(fields) != 2 {
			fmt.Fprintln(out, "usage: /delete N")
			return false
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Fprintf(out, "not a number: %s\n", fields[1])
			return false
		}
		entry, ok := surface.Entry(n)
		if !ok {
			fmt.Fprintf(out, "no message #%d\n", n)
			return false
		}
		entry.Delete(ctx)
	case "/help":
		fmt.Fprint(out, help)
	default:
		fmt.Fprintf(out, "unknown command %s, try /help\n", fields[0])
	}
	return false
}
