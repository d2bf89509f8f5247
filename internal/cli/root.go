package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `        _
 _ __  | |__   __  __  ___   _   _   _ __    ___
| '_ \ | '_ \  \ \/ / / __| | | | | | '_ \  / __|
| |_) || |_) |  >  <  \__ \ | |_| | | | | | | (__
| .__/ |_.__/  /_/\_\ |___/  \__, | |_| |_|  \___|
|_|                          |___/                 `

var rootCmd = &cobra.Command{
	Use:   "pbxsync",
	Short: "Keep the Xcode build manifest in sync with the source tree",
	Long: asciiLogo + `

pbxsync scans a project tree for source files and records the untracked
ones in the Xcode build manifest (project.pbxproj): one file reference,
one build file, and one compile-phase membership entry per file. Lines
outside the insertion points stay byte-identical, and a sibling backup
is written once, before the first modification.

No Xcode required. No project regeneration. Just the missing records.

Exit Codes:
  0  - Success (including "nothing to do")
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Manifest file not found
  12 - User denied write approval
  13 - Manifest format error (section marker missing or malformed)
  14 - File path requires quoting this tool does not perform
  15 - Path rewrite target not found in the manifest`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for pbxsync")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
