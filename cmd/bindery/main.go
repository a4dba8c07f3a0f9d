package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vitruves/bindery/internal/cmd"
	"github.com/vitruves/bindery/internal/logger"
)

const usageTemplate = `{{bold "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if .HasAvailableSubCommands}}

{{bold "Available Commands:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding | cyan}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{bold "Flags:"}}
{{flagUsages .LocalFlags}}{{end}}{{if .HasAvailableInheritedFlags}}

{{bold "Global Flags:"}}
{{flagUsages .InheritedFlags}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`

// flagUsages lists flags one per line with the names highlighted.
func flagUsages(flags *pflag.FlagSet) string {
	var b strings.Builder
	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden {
			return
		}
		name := fmt.Sprintf("    --%s", flag.Name)
		if flag.Shorthand != "" && flag.ShorthandDeprecated == "" {
			name = fmt.Sprintf("-%s, --%s", flag.Shorthand, flag.Name)
		}
		fmt.Fprintf(&b, "  %s  %s", color.YellowString("%-20s", name), flag.Usage)
		if flag.DefValue != "" && flag.DefValue != "false" && flag.DefValue != "[]" {
			fmt.Fprintf(&b, " (default %s)", flag.DefValue)
		}
		b.WriteString("\n")
	})
	return strings.TrimRight(b.String(), "\n")
}

func main() {
	cobra.AddTemplateFunc("bold", color.New(color.Bold).SprintFunc())
	cobra.AddTemplateFunc("cyan", func(text string) string {
		return color.CyanString(text)
	})
	cobra.AddTemplateFunc("flagUsages", flagUsages)

	root := cmd.NewRootCommand()
	root.SetUsageTemplate(usageTemplate)

	if err := root.Execute(); err != nil {
		logger.New(os.Stderr, logger.LevelError).Error("%v", err)
		os.Exit(1)
	}
}
