// tilequest-server serves the game over SSH. Every connection plays its own
// independent world; nothing is shared between sessions except the read-only
// map registry. Build:
//
//	go build -o tilequest-server ./cmd/server
//
// Usage:
//
//	./tilequest-server [--port 2222] [--key server_host_key] [--log server.log]
//
// Connect:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/joho/godotenv"
	xssh "golang.org/x/crypto/ssh"

	"tilequest/assets"
	"tilequest/internal/engine"
	"tilequest/internal/game"
	"tilequest/internal/gamemap"
	internalssh "tilequest/internal/ssh"
	"tilequest/internal/telemetry"
)

const defaultTerm = "xterm-256color"

// maxUserBytes bounds the SSH user name as it appears in logs.
const maxUserBytes = 16

// allowedTerms are the TERM values a client may select. Anything else falls
// back to defaultTerm so a client cannot point terminfo lookup at arbitrary
// names.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// termMu serialises os.Setenv("TERM") around terminfo screen creation.
var termMu sync.Mutex

func main() {
	_ = godotenv.Load()

	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	logPath := flag.String("log", "", "Write structured logs to this file (default stderr)")
	trace := flag.Bool("trace", false, "Export OpenTelemetry traces over OTLP/HTTP")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewJSONHandler(f, nil))
	}
	slog.SetDefault(logger)

	if *trace {
		shutdown, err := telemetry.Setup(context.Background())
		if err != nil {
			log.Fatalf("telemetry: %v", err)
		}
		defer func() { _ = shutdown(context.Background()) }()
	}

	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		log.Fatalf("host key: %v", err)
	}

	reg, err := gamemap.NewRegistry(logger, assets.Maps()...)
	if err != nil {
		log.Fatalf("maps: %v", err)
	}
	script := assets.MustLoadScript()

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			serveSession(s, reg, script, logger)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: anyone who can reach the port may play.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("tilequest SSH server listening", "port", *port)
	log.Fatal(srv.ListenAndServe())
}

// serveSession runs one game for the lifetime of an SSH connection.
func serveSession(s gossh.Session, reg *gamemap.Registry, script assets.Script, logger *slog.Logger) {
	logger = logger.With("user", sanitizeName(s.User()), "remote", s.RemoteAddr().String())

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "tilequest needs a terminal. Connect with: ssh -t -p <port> <host>")
		return
	}

	tty := internalssh.NewSessionTty(s, pty, winCh)
	screen, err := newSessionScreen(tty, sessionTerm(pty.Term, s.Environ()))
	if err != nil {
		logger.Error("screen setup failed", "err", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}

	cfg := engine.DefaultConfig()
	cfg.Script = script
	cfg.Logger = logger
	eng, err := engine.New(reg, cfg)
	if err != nil {
		screen.Fini()
		logger.Error("engine setup failed", "err", err)
		return
	}

	logger.Info("session started")
	if err := game.NewWithScreen(screen, eng, logger).Run(s.Context()); err != nil {
		logger.Error("session ended with error", "err", err)
		return
	}
	logger.Info("session ended")
}

// sessionTerm picks the terminal type for a session. The pty request wins
// over the TERM environment variable; unknown values use defaultTerm.
func sessionTerm(ptyTerm string, environ []string) string {
	term := ptyTerm
	if term == "" {
		for _, env := range environ {
			if v, ok := strings.CutPrefix(env, "TERM="); ok {
				term = v
				break
			}
		}
	}
	if !allowedTerms[term] {
		return defaultTerm
	}
	return term
}

func newSessionScreen(tty tcell.Tty, term string) (tcell.Screen, error) {
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// sanitizeName strips control characters from a client-supplied name and
// truncates it to maxUserBytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r == utf8.RuneError || unicode.IsControl(r) {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxUserBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unparsable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		signer, perr := xssh.ParsePrivateKey(data)
		if perr == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
		logger.Warn("host key unreadable, regenerating", "path", path, "err", perr)
	} else if !errors.Is(err, os.ErrNotExist) {
		logger.Warn("host key unreadable, regenerating", "path", path, "err", err)
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	block, err := xssh.MarshalPrivateKey(key, "tilequest server")
	if err != nil {
		return nil, fmt.Errorf("marshal host key: %w", err)
	}
	// A failed write only costs a new key next start.
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		logger.Warn("could not persist host key", "path", path, "err", err)
	} else {
		logger.Info("generated host key", "path", path)
	}
	return signer, nil
}
