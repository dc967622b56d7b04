// Command filelist writes the file list of a tree in manifest order.
//
// It is the list subcommand of fraghash as a binary of its own:
//
//	filelist [--concat] [-o FILE] [SRC]
//
// The header written in list mode carries writer=filelist@<commit>.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/dendrascience/fraghash/internal/cmd"
	"github.com/dendrascience/fraghash/version"
)

func main() {
	root := cmd.NewListCmd()
	root.Use = "filelist [SRC]"
	root.Version = version.GetFullVersion()
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.PersistentFlags().String("config", "", "Path to a YAML config file")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	if err := fang.Execute(context.Background(), root); err != nil {
		os.Exit(1)
	}
}
