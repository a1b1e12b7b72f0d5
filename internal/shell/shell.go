package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/inconshreveable/log15"

	"queue/internal/command"
	"queue/internal/lua"
	"queue/internal/storage"
)

// Shell is the interactive console over the queue store. It reads one
// command per line; `eval` and `script` lines are handed to the Lua
// engine, everything else to the command handler.
type Shell struct {
	config  *Config
	handler *command.Handler
	engine  *lua.ScriptEngine
	logger  log15.Logger
	session string
}

func NewShell(config *Config) (*Shell, error) {
	session := uuid.New().String()

	logger := log15.New("service", "qshell", "session", session)
	handler, err := logHandler(config)
	if err != nil {
		return nil, err
	}
	logger.SetHandler(handler)

	store := storage.NewStore()

	return &Shell{
		config:  config,
		handler: command.NewHandler(store, logger),
		engine:  lua.NewScriptEngine(lua.NewQueueExecutor(store)),
		logger:  logger,
		session: session,
	}, nil
}

func logHandler(config *Config) (log15.Handler, error) {
	lvl, err := log15.LvlFromString(config.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	if config.LogFile != "" {
		fileHandler, err := log15.FileHandler(config.LogFile, log15.LogfmtFormat())
		if err != nil {
			return nil, err
		}
		return log15.LvlFilterHandler(lvl, fileHandler), nil
	}
	return log15.LvlFilterHandler(lvl, log15.StderrHandler), nil
}

// Run reads command lines from in and writes replies to out until EOF,
// an `exit` command, or context cancellation.
func (sh *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	sh.logger.Info("session started")
	defer sh.logger.Info("session ended")

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(out, sh.config.Prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		reply, err := sh.dispatch(line)
		if err != nil {
			sh.logger.Debug("command failed", "line", line, "err", err)
			fmt.Fprintf(out, "(error) %v\n", err)
			continue
		}
		if reply != "" {
			fmt.Fprintln(out, reply)
		}
	}
}

// dispatch routes a line to the Lua engine or the command handler.
func (sh *Shell) dispatch(line string) (string, error) {
	switch {
	case strings.HasPrefix(line, "eval "):
		result, err := sh.engine.Eval(strings.TrimPrefix(line, "eval "), nil)
		if err != nil {
			return "", err
		}
		return formatResult(result), nil

	case strings.HasPrefix(line, "script "):
		path := strings.TrimSpace(strings.TrimPrefix(line, "script "))
		src, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading script: %w", err)
		}
		result, err := sh.engine.Eval(string(src), nil)
		if err != nil {
			return "", err
		}
		return formatResult(result), nil

	default:
		return sh.handler.Execute(line)
	}
}

// formatResult renders a Lua result the way the command replies look.
func formatResult(result interface{}) string {
	switch v := result.(type) {
	case nil:
		return "(nil)"
	case []interface{}:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = formatResult(item)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case map[string]interface{}:
		if errMsg, ok := v["err"]; ok {
			return fmt.Sprintf("(error) %v", errMsg)
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
