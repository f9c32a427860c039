package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Check  CheckCmd  `cmd:"" help:"Parse a script file or directory and report syntax errors."`
	Doctor DoctorCmd `cmd:"" help:"Doctor utilities for debugging script files."`
	Format FormatCmd `cmd:"" help:"Print a script file in canonical form, or rewrite it with --write."`
	Watch  WatchCmd  `cmd:"" help:"Re-check script files whenever they change."`
}
