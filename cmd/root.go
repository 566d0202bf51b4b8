package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pianochord",
	Short: "Chord analysis and progression catalog tools",
	Long:  `Parses chord names, computes voicings and searches a catalog of jazz-standard progressions.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
