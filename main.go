package main

import (
	"github.com/huewheel/huewheel/cmd"
	"github.com/huewheel/huewheel/config"
	"github.com/huewheel/huewheel/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
