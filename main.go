package main

import (
	"context"
	"os"

	"github.com/yeremiapane/cafe-finder/commands"
	"github.com/yeremiapane/cafe-finder/utils"
)

func main() {
	utils.InitLogger()

	if err := commands.RootCmd().ExecuteContext(context.Background()); err != nil {
		utils.ErrorLogger.Error(err)
		os.Exit(1)
	}
}
