package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vitruves/bindery/internal/language"
)

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the languages bindery recognises",
		Long:  `List every supported language with the fence tag used in the output and the file extensions or names mapped to it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "LANGUAGE\tTAG\tFILES")
			for _, lang := range language.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", language.Name(lang), language.Tag(lang), strings.Join(language.Extensions(lang), " "))
			}
			return w.Flush()
		},
	}
}
