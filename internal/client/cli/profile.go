package cli

import (
	"context"
	"fmt"
	"log"
	"time"
)

func (a *App) Profile(ctx context.Context) {

	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return
	}

	profile, err := a.api.Profile(ctx, a.token)
	if err != nil {
		log.Printf("Profile request unsuccessful: %s", err.Error())
		return
	}

	printlnFn(fmt.Sprintf("id:         %s", profile.ID))
	printlnFn(fmt.Sprintf("email:      %s", profile.Email))
	printlnFn(fmt.Sprintf("created at: %s", profile.CreatedAt.Format(time.RFC3339)))
}
