package main

import (
	"context"
	"flag"

	"github.com/dsmirnov/authgate/internal/client/cli"
)

func main() {

	serverURL := flag.String("s", "http://localhost:8080", "AuthGate server base URL")
	flag.Parse()

	app := cli.NewApp(*serverURL)
	app.Run(context.Background())
}
