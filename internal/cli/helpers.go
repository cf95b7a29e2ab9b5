package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/tapdeck/tapdeck/internal/session"
)

var stdin = bufio.NewReader(os.Stdin)

// promptLine reads one trimmed line from stdin.
func promptLine(label string) string {
	fmt.Print(label)
	line, _ := stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

// ack reports an auth operation's outcome to the user. A failure becomes a
// non-zero exit; the message is always shown, never swallowed.
func ack(res session.Result) error {
	if res.OK {
		if res.Message != "" {
			fmt.Println(res.Message)
		}
		return nil
	}
	return errors.New(res.Message)
}

func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func printTableHeader(w *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(w, strings.Join(cols, "\t"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
