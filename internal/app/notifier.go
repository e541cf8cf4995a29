package app

import (
	"context"
	"fmt"

	"vectap/internal/domain"
)

// Notifier dispatches desktop and push notifications on behalf of the
// editor extension.
type Notifier struct {
	system domain.SystemNotifier
	push   domain.PushSender
	logger domain.Logger

	defaultEndpoint string
	defaultTopic    string
}

// NewNotifier creates a notifier. defaultEndpoint and defaultTopic fill in
// push notifications that do not carry their own.
func NewNotifier(system domain.SystemNotifier, push domain.PushSender, logger domain.Logger, defaultEndpoint, defaultTopic string) *Notifier {
	return &Notifier{
		system:          system,
		push:            push,
		logger:          logger,
		defaultEndpoint: defaultEndpoint,
		defaultTopic:    defaultTopic,
	}
}

// System delivers a desktop notification. Total dispatch failure is logged,
// not propagated: a missing notifier binary must never break the operation
// the notification was about.
func (n *Notifier) System(sn domain.SystemNotification) {
	if err := n.system.Send(sn); err != nil {
		n.logger.Error("system notification failed", "err", err)
	}
}

// Push delivers a push notification, resolving endpoint and topic from the
// configured defaults when the notification does not name its own. A missing
// endpoint or message is an explicit error.
func (n *Notifier) Push(ctx context.Context, pn domain.PushNotification) error {
	if pn.Endpoint == "" {
		pn.Endpoint = n.defaultEndpoint
	}
	if pn.Topic == "" {
		pn.Topic = n.defaultTopic
	}

	if pn.Endpoint == "" {
		return fmt.Errorf("no push endpoint configured: pass --endpoint or set notify.endpoint")
	}
	if pn.Message == "" {
		return fmt.Errorf("push message is required")
	}

	return n.push.Send(ctx, pn)
}
