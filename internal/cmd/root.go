package cmd

import (
	"github.com/dendrascience/fraghash/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the fraghash CLI.
// It sets up all subcommands, command groups, and global flags.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fraghash",
		Short: "fraghash - fragment hash manifests for file trees",
		Long: `fraghash writes File Fragment Hash Standard manifests.

Every regular file below a root is read in fixed-size fragments. Each
fragment is hashed on its own with cSHAKE256, and a running sum hash covers
all bytes read so far. The manifest is plain text and byte-stable for the
same tree, fragment size and algorithm.

Use subcommands to perform different operations:
  - hash: write a manifest
  - verify: check a tree against a manifest
  - list: write the file list in manifest order`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default $"+configEnv+")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	groupManifest := "manifest"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupManifest,
		Title: "Manifest Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	hashCmd := NewHashCmd()
	verifyCmd := NewVerifyCmd()
	listCmd := NewListCmd()
	algorithmsCmd := NewAlgorithmsCmd()
	seedCmd := NewSeedCmd()
	versionCmd := NewVersionCmd()

	hashCmd.GroupID = groupManifest
	verifyCmd.GroupID = groupManifest
	listCmd.GroupID = groupManifest
	algorithmsCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(algorithmsCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
