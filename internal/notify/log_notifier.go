package notify

import "log/slog"

// LogNotifier writes notifications to the structured log. Useful on its
// own in headless runs and as the inner notifier behind the Hub.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(notification Notification) {
	n.log.Info("user_notification",
		"kind", string(notification.Kind),
		"message", notification.Message,
		"notification_id", notification.ID,
	)
}
