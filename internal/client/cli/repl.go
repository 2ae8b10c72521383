package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. Every command
// receives the tokens after its name.
type execIface interface {
	Record(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Calendar(ctx context.Context, args []string) error
	Report(ctx context.Context, args []string) error
	Tags(ctx context.Context, args []string) error
	Goal(ctx context.Context, args []string) error
	Remind(ctx context.Context, args []string) error
	Backup(ctx context.Context, args []string) error
	Restore(ctx context.Context, args []string) error
}

const helpText = `Available commands:
  record [date]                         rate a day, pick emotions, add notes
  show [date] | delete [date]           view or remove a day
  list [YYYY-MM]                        entries of a month
  calendar [YYYY-MM]                    mood heat-map
  report month|year [date]              rating series and distribution
  tags month|year [date]                hashtags and the days they appear on
  goal [YYYY-MM] | goal create [YYYY-MM]
  goal add excited|stretch|task <title>
  goal toggle|remove <list> <n> | goal letter
  remind | remind daily on|off [HH:MM] | remind monthly on|off [DAY HOUR]
  backup <file> [json|yaml] | restore <file|s3:key> [json|yaml]
  help | exit`

// runREPL reads commands line by line from reader and dispatches them to
// a. The prompt shows statusFn. The loop ends on EOF, "exit" or "quit",
// or when ctx is cancelled between commands. Command errors are printed
// and never stop the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	handlers := map[string]func(context.Context, []string) error{
		"record":   a.Record,
		"show":     a.Show,
		"delete":   a.Delete,
		"l":        a.List,
		"list":     a.List,
		"calendar": a.Calendar,
		"cal":      a.Calendar,
		"report":   a.Report,
		"tags":     a.Tags,
		"goal":     a.Goal,
		"remind":   a.Remind,
		"backup":   a.Backup,
		"restore":  a.Restore,
	}

	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("memento %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help", "?":
			printlnFn(helpText)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		h, ok := handlers[cmd]
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if err := h(ctx, args); err != nil {
			printlnFn("error:", err)
		}
	}
}
