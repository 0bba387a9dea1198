package cmd

import (
	"github.com/spf13/cobra"
)

// Version do binário, também gravada no driver dos exports SARIF.
const Version = "0.1.0"

var projectRoot string
var debugMode bool

var rootCmd = &cobra.Command{
	Use:     "spotfix",
	Short:   "SpotFix - Corretor automático de achados do SpotBugs",
	Version: Version,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectRoot, "project-root", "p", ".", "Raiz do projeto Gradle analisado")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Habilita logs em nível debug")
}
