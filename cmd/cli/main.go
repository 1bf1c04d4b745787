package main

import (
	"context"
	"flag"
	"log"

	"github.com/dbelyakov/finbook/internal/cli"
)

func main() {

	serverAddr := flag.String("a", "http://localhost:8080", "server address")
	flag.Parse()

	ctx := context.Background()
	app := cli.NewApp(*serverAddr)

	if err := app.Register(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
