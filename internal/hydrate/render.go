package hydrate

import (
	"fmt"

	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/terminal"
)

const (
	cmdLogin    = "nook login"
	cmdRegister = "nook register"
	cmdLogout   = "nook logout"

	noBanner = "no banner"
)

func navbar(rec session.Record, ok bool) terminal.Log {
	if !ok || rec.AccessToken == "" {
		return terminal.NewFollowupLog("You are not logged in, to get started run", cmdLogin, cmdRegister)
	}
	return terminal.NewFollowupLog(
		fmt.Sprintf("Logged in as %s with %d credits, to log out run", rec.Name, rec.Credits),
		cmdLogout,
	)
}

func profileHeader(rec session.Record) terminal.Log {
	avatar := rec.Initials()
	if rec.Avatar != nil && rec.Avatar.URL != "" {
		avatar = rec.Avatar.URL
	}

	return terminal.NewTableLog(
		"Profile",
		[]string{headerName, headerEmail, headerCredits, headerAvatar},
		map[string]interface{}{
			headerName:    rec.Name,
			headerEmail:   rec.Email,
			headerCredits: rec.Credits,
			headerAvatar:  avatar,
		},
	)
}

func banner(rec session.Record) terminal.Log {
	if rec.Banner == nil || rec.Banner.URL == "" {
		return terminal.NewTextLog("Banner: %s", noBanner)
	}
	return terminal.NewTextLog("Banner: %s", rec.Banner.URL)
}

const (
	headerName    = "Name"
	headerEmail   = "Email"
	headerCredits = "Credits"
	headerAvatar  = "Avatar"
)
