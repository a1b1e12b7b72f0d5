package lua

import (
	"fmt"
	"strings"

	"queue/internal/storage"
)

// QueueExecutor executes queue commands on behalf of Lua scripts
type QueueExecutor struct {
	store *storage.Store
}

// NewQueueExecutor creates a new queue command executor for Lua
func NewQueueExecutor(store *storage.Store) *QueueExecutor {
	return &QueueExecutor{
		store: store,
	}
}

// ExecuteCommand executes a queue command and returns the result
func (r *QueueExecutor) ExecuteCommand(cmdName string, args ...interface{}) (interface{}, error) {
	cmdName = strings.ToUpper(cmdName)

	stringArgs := make([]string, len(args))
	for i, arg := range args {
		stringArgs[i] = fmt.Sprintf("%v", arg)
	}

	switch cmdName {
	// ==================== REGISTRY COMMANDS ====================
	case "NEW":
		if len(stringArgs) < 1 {
			return nil, errWrongArgs("new")
		}
		if err := r.store.Create(stringArgs[0]); err != nil {
			return nil, err
		}
		return "OK", nil

	case "DROP", "FREE":
		if len(stringArgs) < 1 {
			return nil, errWrongArgs("drop")
		}
		if err := r.store.Drop(stringArgs[0]); err != nil {
			return nil, err
		}
		return "OK", nil

	case "QUEUES":
		return r.store.Names(), nil

	case "FLUSH":
		r.store.Flush()
		return "OK", nil

	// ==================== QUEUE COMMANDS ====================
	case "IH":
		if len(stringArgs) < 2 {
			return nil, errWrongArgs("ih")
		}
		if err := r.store.InsertHead(stringArgs[0], stringArgs[1]); err != nil {
			return nil, err
		}
		return "OK", nil

	case "IT":
		if len(stringArgs) < 2 {
			return nil, errWrongArgs("it")
		}
		if err := r.store.InsertTail(stringArgs[0], stringArgs[1]); err != nil {
			return nil, err
		}
		return "OK", nil

	case "RH":
		if len(stringArgs) < 1 {
			return nil, errWrongArgs("rh")
		}
		value, err := r.store.RemoveHead(stringArgs[0])
		if err == storage.ErrEmptyQueue {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return value, nil

	case "RT":
		if len(stringArgs) < 1 {
			return nil, errWrongArgs("rt")
		}
		value, err := r.store.RemoveTail(stringArgs[0])
		if err == storage.ErrEmptyQueue {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return value, nil

	case "SIZE":
		if len(stringArgs) < 1 {
			return nil, errWrongArgs("size")
		}
		n, err := r.store.Size(stringArgs[0])
		if err != nil {
			return nil, err
		}
		return int64(n), nil

	case "VALUES", "SHOW":
		if len(stringArgs) < 1 {
			return nil, errWrongArgs("values")
		}
		return r.store.Values(stringArgs[0])

	// ==================== STRUCTURAL TRANSFORMS ====================
	case "SORT":
		if len(stringArgs) < 1 {
			return nil, errWrongArgs("sort")
		}
		if err := r.store.Sort(stringArgs[0]); err != nil {
			return nil, err
		}
		return "OK", nil

	case "REVERSE":
		if len(stringArgs) < 1 {
			return nil, errWrongArgs("reverse")
		}
		if err := r.store.Reverse(stringArgs[0]); err != nil {
			return nil, err
		}
		return "OK", nil

	case "SWAP":
		if len(stringArgs) < 1 {
			return nil, errWrongArgs("swap")
		}
		if err := r.store.SwapPairs(stringArgs[0]); err != nil {
			return nil, err
		}
		return "OK", nil

	case "DEDUP":
		if len(stringArgs) < 1 {
			return nil, errWrongArgs("dedup")
		}
		if err := r.store.DeleteDup(stringArgs[0]); err != nil {
			return nil, err
		}
		return "OK", nil

	case "DMID":
		if len(stringArgs) < 1 {
			return nil, errWrongArgs("dmid")
		}
		if err := r.store.DeleteMiddle(stringArgs[0]); err != nil {
			return nil, err
		}
		return "OK", nil

	default:
		return nil, fmt.Errorf("ERR unknown command '%s'", cmdName)
	}
}

func errWrongArgs(cmd string) error {
	return fmt.Errorf("ERR wrong number of arguments for '%s' command", cmd)
}
