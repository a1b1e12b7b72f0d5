package command

// writeCommands is the set of commands that mutate a queue or the
// registry. The shell uses this to decide which commands to log.
var writeCommands = map[string]bool{
	// Registry commands
	"NEW": true, "DROP": true, "FREE": true, "FLUSH": true,

	// Insert/remove commands
	"IH": true, "IT": true, "RH": true, "RT": true,

	// Structural transforms
	"SORT": true, "REVERSE": true, "SWAP": true,
	"DEDUP": true, "DMID": true,
}

// IsWriteCommand checks if a command is a write operation.
func IsWriteCommand(cmd string) bool {
	return writeCommands[cmd]
}
