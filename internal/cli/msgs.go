package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Scan directories and recover files into a separate tree"
	MsgScanShort       = "List files under a directory, optionally by extension"
	MsgFindShort       = "List files with an exact name"
	MsgListShort       = "Count files per extension under a directory"
	MsgRecoverShort    = "Copy files into a destination tree, preserving structure"
	MsgAliasesShort    = "Show the directory shorthands"
	MsgToolShort       = "Launch an external recovery tool"
	MsgManShort        = "Show the manual page for a command"
	MsgConsoleShort    = "Start the interactive console"
	MsgConfigShort     = "Print the effective configuration as TOML"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConsoleCancelled = "Interrupted."

	// Error messages
	MsgErrLoadConfig = "failed to load configuration"
	MsgErrPaths      = "failed to initialize paths"
	MsgErrRenderer   = "failed to create output renderer"
	MsgErrTopics     = "failed to load manual pages"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat        = "Output format: auto, term, text, json or xml"
	MsgFlagConfig        = "Configuration file (default $XDG_CONFIG_HOME/frece/config.toml)"
	MsgFlagExt           = "Only recover files with this extension"
	MsgFlagName          = "Only recover files with exactly this name"
	MsgFlagOnCollision   = "What to do when a destination file exists: overwrite, skip or rename"
	MsgFlagWorkers       = "Number of files copied in parallel"
	MsgFlagVerify        = "Compare checksums of every copy before committing it"
	MsgFlagDryRun        = "Report what would be copied without writing anything"
	MsgFlagPreserveTimes = "Keep source modification times on copies"
	MsgFlagToolDir       = "Working directory for the tool (accepts aliases)"
	MsgFlagDefaults      = "Print the built-in defaults instead of the effective configuration"
	MsgFlagHidden        = "Skip files and directories whose name starts with a dot"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/recover-long.txt
	msgRecoverLongRaw string
	MsgRecoverLong    = strings.TrimSpace(msgRecoverLongRaw)

	//go:embed msgs/recover-example.txt
	msgRecoverExampleRaw string
	MsgRecoverExample    = strings.TrimSpace(msgRecoverExampleRaw)

	//go:embed msgs/scan-example.txt
	msgScanExampleRaw string
	MsgScanExample    = strings.TrimSpace(msgScanExampleRaw)

	//go:embed msgs/tool-long.txt
	msgToolLongRaw string
	MsgToolLong    = strings.TrimSpace(msgToolLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
