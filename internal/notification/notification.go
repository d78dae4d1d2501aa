// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/abrandt/huddle/internal/logger"
)

// notifyFunc matches the signature of beeep.Notify.
type notifyFunc func(title, message string, icon string) error

// beeepNotify adapts beeep.Notify (whose icon parameter is typed any) to
// the string-icon notifyFunc signature used throughout this package.
func beeepNotify(title, message string, icon string) error {
	return beeep.Notify(title, message, icon)
}

// notifier is the function used to deliver notifications. Tests swap it out
// via SetNotifier to avoid sending real desktop notifications.
var notifier notifyFunc = beeepNotify

// SetNotifier replaces the notification delivery function.
func SetNotifier(fn func(title, message string, icon string) error) {
	notifier = fn
}

// ResetNotifier restores the default beeep-backed delivery function.
func ResetNotifier() {
	notifier = beeepNotify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	logger.Debug("Notification: Sending notification - title=%q, message=%q", title, message)
	// Use empty string for icon - beeep handles platform defaults
	err := notifier(title, message, "")
	if err != nil {
		logger.Debug("Notification: Failed to send notification: %v", err)
	}
	return err
}

// MessageReceived sends a notification for a message that arrived in a
// conversation the user is not currently viewing.
func MessageReceived(conversationName, author, preview string) error {
	return Send(conversationName, author+": "+preview)
}

// DirectMessage sends a notification for an incoming direct message.
func DirectMessage(author, preview string) error {
	return Send(author, preview)
}
