package notify

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"vectap/internal/domain"
)

// SystemNotifier dispatches desktop notifications to the platform's native
// notifier command. Commands go through the CommandRunner port, so the
// notifier itself stays testable without a desktop session.
type SystemNotifier struct {
	runner domain.CommandRunner
	goos   string
}

// NewSystemNotifier creates a notifier for the current platform.
func NewSystemNotifier(runner domain.CommandRunner) *SystemNotifier {
	return &SystemNotifier{runner: runner, goos: runtime.GOOS}
}

// Send delivers n using the platform notifier. The notification message must
// be non-empty; title defaults are the caller's concern.
func (s *SystemNotifier) Send(n domain.SystemNotification) error {
	if n.Message == "" {
		return fmt.Errorf("notification message is required")
	}

	ctx := context.Background()

	switch s.goos {
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`,
			escapeAppleScript(n.Message), escapeAppleScript(n.Title))
		if n.Subtitle != "" {
			script += fmt.Sprintf(` subtitle "%s"`, escapeAppleScript(n.Subtitle))
		}
		return s.check(s.runner.Run(ctx, "osascript", "-e", script))
	case "linux":
		summary := n.Title
		if n.Subtitle != "" {
			summary = summary + " — " + n.Subtitle
		}
		return s.check(s.runner.Run(ctx, "notify-send", summary, n.Message))
	case "windows":
		return s.check(s.runner.Run(ctx, "powershell", "-NoProfile", "-Command",
			toastScript(n)))
	default:
		return fmt.Errorf("desktop notifications are not supported on %s", s.goos)
	}
}

func (s *SystemNotifier) check(res domain.CommandResult) error {
	if res.Ok() {
		return nil
	}
	msg := strings.TrimSpace(res.Stderr)
	if msg == "" {
		msg = "notifier command failed"
	}
	return fmt.Errorf("send system notification: %s", msg)
}

// escapeAppleScript neutralizes characters that would terminate an
// AppleScript string literal. The arguments are passed as discrete argv
// elements, so no shell quoting is involved.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func toastScript(n domain.SystemNotification) string {
	title := escapePowerShell(n.Title)
	body := escapePowerShell(n.Message)
	if n.Subtitle != "" {
		body = escapePowerShell(n.Subtitle) + "`n" + body
	}
	return fmt.Sprintf(
		"[System.Reflection.Assembly]::LoadWithPartialName('System.Windows.Forms') | Out-Null; "+
			"$tip = New-Object System.Windows.Forms.NotifyIcon; "+
			"$tip.Icon = [System.Drawing.SystemIcons]::Information; "+
			"$tip.Visible = $true; "+
			"$tip.ShowBalloonTip(5000, '%s', '%s', 'Info')", title, body)
}

func escapePowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
