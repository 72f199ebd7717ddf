// Package cli implements the interactive command-line client for the
// AuthGate HTTP API: register, login, and profile lookup.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dsmirnov/authgate/internal/client/client"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

type App struct {
	api    *client.APIClient
	reader *bufio.Reader
	token  string
}

func NewApp(serverURL string) *App {
	return &App{
		api:    client.New(serverURL),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

// Run drives the command loop until the user quits or input ends.
func (a *App) Run(ctx context.Context) {
	for {
		cmd, err := GetSimpleText(a.reader, "Enter command (register / login / profile / quit)", os.Stdout)
		if err != nil {
			return
		}

		switch cmd {
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "profile":
			a.Profile(ctx)
		case "quit", "exit":
			return
		case "":
			// ignore empty input
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
