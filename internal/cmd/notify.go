package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vectap/internal/domain"
)

var (
	notifyPush     bool
	notifyTitle    string
	notifySubtitle string
	notifyTags     string
	notifyPriority string
	notifyClick    string
	notifyTopic    string
	notifyEndpoint string
)

var notifyCmd = &cobra.Command{
	Use:   "notify MESSAGE...",
	Short: "Send a desktop or push notification",
	Long: `Send a notification on behalf of the editor extension. By default the
message goes to the platform's desktop notifier; with --push it is posted
to the configured ntfy-compatible endpoint instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNotify,
}

func init() {
	notifyCmd.Flags().BoolVar(&notifyPush, "push", false, "deliver as a push notification")
	notifyCmd.Flags().StringVar(&notifyTitle, "title", "Vectap", "notification title")
	notifyCmd.Flags().StringVar(&notifySubtitle, "subtitle", "", "notification subtitle (desktop only)")
	notifyCmd.Flags().StringVar(&notifyTags, "tags", "", "comma-separated ntfy tags (push only)")
	notifyCmd.Flags().StringVar(&notifyPriority, "priority", "", "ntfy priority (push only)")
	notifyCmd.Flags().StringVar(&notifyClick, "click", "", "URL opened when the push notification is tapped")
	notifyCmd.Flags().StringVar(&notifyTopic, "topic", "", "ntfy topic (default from config)")
	notifyCmd.Flags().StringVar(&notifyEndpoint, "endpoint", "", "ntfy server URL (default from config)")
	rootCmd.AddCommand(notifyCmd)
}

func runNotify(cmd *cobra.Command, args []string) error {
	w, err := buildWiring()
	if err != nil {
		return err
	}

	message := strings.Join(args, " ")

	if notifyPush {
		return w.notifier.Push(cmd.Context(), domain.PushNotification{
			Endpoint: notifyEndpoint,
			Topic:    notifyTopic,
			Title:    notifyTitle,
			Message:  message,
			Tags:     notifyTags,
			Priority: notifyPriority,
			Click:    notifyClick,
		})
	}

	w.notifier.System(domain.SystemNotification{
		Title:    notifyTitle,
		Subtitle: notifySubtitle,
		Message:  message,
	})
	fmt.Println("notification dispatched")
	return nil
}
