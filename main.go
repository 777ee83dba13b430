// Package main is the entry point for cinemcp.
package main

import (
	"github.com/cinemcp/cinemcp/cmd"
	"github.com/cinemcp/cinemcp/config"
	"github.com/cinemcp/cinemcp/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
