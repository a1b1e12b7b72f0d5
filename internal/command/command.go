package command

import (
	"fmt"
	"strings"

	"github.com/inconshreveable/log15"

	"queue/internal/storage"
)

// Handler parses text commands and dispatches them against the store.
// It is the narrow surface a console or script drives the queues
// through.
type Handler struct {
	store  *storage.Store
	logger log15.Logger
}

func NewHandler(store *storage.Store, logger log15.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Execute runs a single whitespace-separated command line and returns a
// printable reply.
func (h *Handler) Execute(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	cmd := strings.ToUpper(fields[0])
	args := fields[1:]

	if IsWriteCommand(cmd) {
		h.logger.Debug("write command", "cmd", cmd, "args", args)
	}

	return Dispatch(h.store, cmd, args)
}

// Dispatch executes a parsed command against a store and renders the
// result as a printable reply.
func Dispatch(store *storage.Store, cmd string, args []string) (string, error) {
	switch cmd {
	case "NEW":
		if err := checkArity(cmd, args, 1); err != nil {
			return "", err
		}
		if err := store.Create(args[0]); err != nil {
			return "", err
		}
		return "OK", nil

	case "DROP", "FREE":
		if err := checkArity(cmd, args, 1); err != nil {
			return "", err
		}
		if err := store.Drop(args[0]); err != nil {
			return "", err
		}
		return "OK", nil

	case "IH":
		if err := checkArity(cmd, args, 2); err != nil {
			return "", err
		}
		if err := store.InsertHead(args[0], args[1]); err != nil {
			return "", err
		}
		return "OK", nil

	case "IT":
		if err := checkArity(cmd, args, 2); err != nil {
			return "", err
		}
		if err := store.InsertTail(args[0], args[1]); err != nil {
			return "", err
		}
		return "OK", nil

	case "RH":
		if err := checkArity(cmd, args, 1); err != nil {
			return "", err
		}
		return store.RemoveHead(args[0])

	case "RT":
		if err := checkArity(cmd, args, 1); err != nil {
			return "", err
		}
		return store.RemoveTail(args[0])

	case "SIZE":
		if err := checkArity(cmd, args, 1); err != nil {
			return "", err
		}
		n, err := store.Size(args[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d", n), nil

	case "SHOW", "VALUES":
		if err := checkArity(cmd, args, 1); err != nil {
			return "", err
		}
		values, err := store.Values(args[0])
		if err != nil {
			return "", err
		}
		return "[" + strings.Join(values, " ") + "]", nil

	case "SORT":
		if err := checkArity(cmd, args, 1); err != nil {
			return "", err
		}
		if err := store.Sort(args[0]); err != nil {
			return "", err
		}
		return "OK", nil

	case "REVERSE":
		if err := checkArity(cmd, args, 1); err != nil {
			return "", err
		}
		if err := store.Reverse(args[0]); err != nil {
			return "", err
		}
		return "OK", nil

	case "SWAP":
		if err := checkArity(cmd, args, 1); err != nil {
			return "", err
		}
		if err := store.SwapPairs(args[0]); err != nil {
			return "", err
		}
		return "OK", nil

	case "DEDUP":
		if err := checkArity(cmd, args, 1); err != nil {
			return "", err
		}
		if err := store.DeleteDup(args[0]); err != nil {
			return "", err
		}
		return "OK", nil

	case "DMID":
		if err := checkArity(cmd, args, 1); err != nil {
			return "", err
		}
		if err := store.DeleteMiddle(args[0]); err != nil {
			return "", err
		}
		return "OK", nil

	case "QUEUES":
		if err := checkArity(cmd, args, 0); err != nil {
			return "", err
		}
		return "[" + strings.Join(store.Names(), " ") + "]", nil

	case "FLUSH":
		if err := checkArity(cmd, args, 0); err != nil {
			return "", err
		}
		store.Flush()
		return "OK", nil

	default:
		return "", fmt.Errorf("ERR unknown command '%s'", cmd)
	}
}

func checkArity(cmd string, args []string, want int) error {
	if len(args) != want {
		return fmt.Errorf("ERR wrong number of arguments for '%s' command", strings.ToLower(cmd))
	}
	return nil
}
