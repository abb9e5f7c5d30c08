// Command rpl is the simulator front-end: a terminal calculator driven
// by the RPL object runtime, implementing spec §6's external interface
// (flags, DB48X_TRACES, state persistence, dump-on-failure).
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"rpl/cmd/rpl/ui"
	"rpl/internal/arena"
	"rpl/internal/config"
	"rpl/internal/directory"
	"rpl/internal/dump"
	"rpl/internal/eval"
	"rpl/internal/object"
	"rpl/internal/parser"
	"rpl/internal/render"
	"rpl/internal/settings"
	"rpl/internal/trace"
)

type simConfig struct {
	tracePattern string
	noisy        bool
	silentBeep   bool
	testName     string
	onlyName     string
	dumpPath     string
	keymapPath   string
	memoryKB     int
}

var errorBanner = color.New(color.FgRed, color.Bold)

func main() {
	cfg := simConfig{}
	root := &cobra.Command{
		Use:   "rpl",
		Short: "RPL object-runtime simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulator(cfg)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&cfg.tracePattern, "trace", "t", "", "enable trace channels matching pattern(s)")
	flags.BoolVarP(&cfg.noisy, "noisy", "n", false, "noisy test output")
	flags.BoolVarP(&cfg.silentBeep, "silence-beep", "N", false, "silence the beep on error")
	flags.StringVarP(&cfg.testName, "test", "T", "", "select a built-in test by name (\"all\" = all)")
	flags.StringVarP(&cfg.onlyName, "only", "O", "", "select a single built-in test by name")
	flags.StringVarP(&cfg.dumpPath, "dump", "D", "", "dump-on-failure snapshot path")
	flags.StringVarP(&cfg.keymapPath, "keymap", "k", "", "keymap TOML file")
	flags.IntP("wait", "w", 2000, "default wait time in ms (unused outside test playback)")
	flags.IntP("key-delay", "d", 20, "key delay in ms (unused outside test playback)")
	flags.IntP("refresh", "r", 50, "refresh delay in ms")
	flags.IntP("image-wait", "i", 2000, "image wait in ms")
	flags.IntVarP(&cfg.memoryKB, "memory", "m", 256, "arena size in KB")
	flags.IntP("scale", "s", 1, "pixel scale")
	root.FParseErrWhitelist.UnknownFlags = true

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newEvaluator(cfg simConfig) *eval.State {
	sizeKB := cfg.memoryKB
	if sizeKB <= 0 {
		sizeKB = 256
	}
	a := arena.New(sizeKB*1024, object.ArenaSizer{})
	rootDir := directory.New(a, "", nil)
	s := eval.New(a, rootDir, settings.Default())

	pattern := trace.ChannelPatternFromEnv(cfg.tracePattern)
	tracer, err := trace.New(trace.Config{Level: trace.LevelDebug})
	if err == nil {
		a.SetGCTrace(trace.NewChannel(tracer, pattern, "gc"))
		s.SetTrace(trace.NewChannel(tracer, pattern, "eval"))
	}
	return s
}

func runSimulator(cfg simConfig) error {
	testSelector := cfg.testName
	if testSelector == "" {
		testSelector = cfg.onlyName
	}
	if testSelector != "" {
		tests, err := selfTestsByName(testSelector)
		if err != nil {
			return err
		}
		failed := runSelfTests(tests, cfg)
		for _, f := range failed {
			fmt.Fprintln(os.Stderr, errorBanner.Sprint("FAIL "+f))
		}
		if len(failed) > 0 {
			return fmt.Errorf("%d test(s) failed", len(failed))
		}
		if cfg.noisy {
			fmt.Printf("%d test(s) passed\n", len(tests))
		}
		return nil
	}

	s := newEvaluator(cfg)
	km, err := config.LoadKeymap(cfg.keymapPath)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return runBatch(s, os.Stdin, cfg)
	}
	return runInteractive(s, km, cfg)
}

// runBatch replays RPL source piped into stdin against a fresh
// evaluator and prints the final stack, used when stdin is not a
// terminal (scripted invocations, CI, end-to-end test harnesses).
func runBatch(s *eval.State, stdin *os.File, cfg simConfig) error {
	data, err := readAll(stdin)
	if err != nil {
		return err
	}
	if err := loadAndRun(s, data); err != nil {
		if cfg.dumpPath != "" {
			_ = dump.WriteOnFailure(cfg.dumpPath, s, err, time.Now())
		}
		fmt.Fprintln(os.Stderr, errorBanner.Sprint("ERROR: "+err.Error()))
		return err
	}
	for i := s.Depth() - 1; i >= 0; i-- {
		v, _ := s.Peek(s.Depth() - 1 - i)
		fmt.Println(render.Text(v, s.Settings, render.OnScreen))
	}
	return nil
}

// runInteractive drives the Bubble Tea REPL, running the evaluator on
// its own goroutine joined with the UI's keystroke loop via errgroup,
// sharing s.Ctx's atomic interrupt flag (spec §5).
func runInteractive(s *eval.State, km config.Keymap, cfg simConfig) error {
	events := make(chan ui.Event, 8)
	submits := make(chan ui.Submit)

	g := new(errgroup.Group)
	g.Go(func() error {
		defer close(events)
		for sub := range submits {
			s.Ctx.ClearInterrupt()
			events <- ui.Event{Busy: true, Stack: renderedStack(s)}
			err := loadAndRun(s, sub.Text)
			msg := ""
			if err != nil {
				msg = err.Error()
				if cfg.dumpPath != "" {
					_ = dump.WriteOnFailure(cfg.dumpPath, s, err, time.Now())
				}
			}
			events <- ui.Event{Stack: renderedStack(s), Error: msg}
		}
		return nil
	})

	model := ui.New(events, submits, func(msg tea.KeyMsg) (string, bool) {
		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyCtrlC {
			s.Ctx.Interrupt()
		}
		return translateKey(km, msg)
	})
	program := tea.NewProgram(model)
	_, runErr := program.Run()
	close(submits)
	waitErr := g.Wait()
	if runErr != nil {
		return runErr
	}
	return waitErr
}

func loadAndRun(s *eval.State, src string) error {
	prog, err := parser.ParseAll(src)
	if err != nil {
		return err
	}
	if derr := s.RunBody(prog); derr != nil {
		return derr
	}
	return nil
}

func renderedStack(s *eval.State) []string {
	depth := s.Depth()
	out := make([]string, 0, depth)
	for i := 0; i < depth; i++ {
		v, _ := s.Peek(i)
		out = append(out, render.Text(v, s.Settings, render.OnScreen))
	}
	return out
}

func renderTop(s *eval.State) string {
	if s.Depth() == 0 {
		return ""
	}
	v, _ := s.Peek(0)
	return render.Text(v, s.Settings, render.OnScreen)
}

func readAll(f *os.File) (string, error) {
	data, err := io.ReadAll(f)
	return string(data), err
}
