package main

import (
	"fmt"
	"os"

	configcmd "fjacquet/count-dashboard/cmd/config"
	"fjacquet/count-dashboard/cmd/export"
	"fjacquet/count-dashboard/cmd/report"
	"fjacquet/count-dashboard/cmd/root"
	"fjacquet/count-dashboard/cmd/serve"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(configcmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
