package main

import (
	"log"
	"os"
	"simassert/src/cmd"
	"simassert/src/shutdown"

	"github.com/joho/godotenv"
)

func main() {
	if _, err := os.Stat(".env"); err == nil {
		err := godotenv.Load()
		if err != nil {
			log.Print(err)
			shutdown.Exit(cmd.ExitCodeUsage)
		}
	}
	shutdown.Exit(cmd.Execute(os.Args[1:]))
}
