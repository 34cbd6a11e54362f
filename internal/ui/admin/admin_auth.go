//go:build js && wasm

package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
)

// InitConsole restores a stored session, if any, and draws the console.
func InitConsole() {
	adminState.Token = loadStoredAdminToken()
	adminState.Checked = adminState.Token == ""
	bindStaticEvents()
	RenderAdminConsole()
	if !adminState.Checked {
		go checkSession()
	}
}

func checkSession() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	session, err := adminAPI().Session(ctx)
	adminState.Checked = true
	if err != nil {
		consoleWarn("admin session check failed", err.Error())
		performAdminLogout(model.Status{})
		return
	}
	adminState.SessionEmail = session.Email
	RenderAdminConsole()
	go loadCurrentContent()
}

func performAdminLogin() {
	email := strings.TrimSpace(adminState.LoginEmail)
	password := adminState.LoginPassword
	if email == "" || password == "" {
		setAdminStatus(model.Status{Tone: "error", Message: "Email and password are required."})
		return
	}
	adminState.Loading = true
	RenderAdminConsole()

	go func(email, password string) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		resp, err := adminAPI().Login(ctx, email, password)
		adminState.Loading = false
		adminState.LoginPassword = ""
		if err != nil {
			setAdminStatus(model.Status{Tone: "error", Message: err.Error()})
			RenderAdminConsole()
			return
		}
		adminState.Token = resp.Token
		adminState.SessionEmail = email
		persistAdminToken(resp.Token)
		RenderAdminConsole()
		loadCurrentContent()
	}(email, password)
}

// loadCurrentContent reads the deployed carousel into the editor.
func loadCurrentContent() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	videos, err := adminAPI().DeployedVideos(ctx)
	if err != nil {
		consoleWarn("Error loading content:", err.Error())
		setAdminStatus(model.Status{Tone: "error", Message: "Error loading content"})
		return
	}
	editor.Load(videos)
	renderVideoList()
	setAdminStatus(model.Status{Tone: "success", Message: "Content loaded successfully"})
}

func handleAdminLogout() {
	if editor.Dirty() && !confirmAction("You have unsaved changes. Are you sure you want to logout?") {
		return
	}
	performAdminLogout(model.Status{Tone: "success", Message: "Logged out."})
}

func handleAdminError(err error) bool {
	if errors.Is(err, ErrUnauthorized) {
		performAdminLogout(model.Status{Tone: "error", Message: ErrUnauthorized.Error()})
		return true
	}
	return false
}

func performAdminLogout(status model.Status) {
	adminState.Token = ""
	adminState.SessionEmail = ""
	adminState.Loading = false
	adminState.Pending = nil
	editor.Load(nil)
	persistAdminToken("")
	RenderAdminConsole()
	if status.Message != "" {
		setAdminStatus(status)
	}
}
