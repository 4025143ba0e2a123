package tui

import (
	"github.com/alexisbeaulieu97/coachmark/internal/config"
)

// Regions of the mail screen a tour can point at.
const (
	TargetCompose = "compose"
	TargetFolders = "folders"
	TargetInbox   = "inbox"
	TargetSearch  = "search"
	TargetStatus  = "status"
)

// Targets lists every region the mail screen exposes.
func Targets() []string {
	return []string{TargetCompose, TargetFolders, TargetInbox, TargetSearch, TargetStatus}
}

// DefaultTour is the walkthrough shown when no tour file is given.
func DefaultTour() *config.Tour {
	return &config.Tour{
		Version: "1.0.0",
		Name:    "Mailbox tour",
		Marks: []config.Mark{
			{
				Target:      TargetCompose,
				Order:       0,
				Title:       "Write a message",
				Description: "Start a new draft from here. Drafts are saved as you type.",
			},
			{
				Target:       TargetFolders,
				Order:        1,
				Title:        "Folders",
				Description:  "Move between your inbox, sent mail and archive. The badge counts unread messages.",
				CornerRadius: 1,
			},
			{
				Target: TargetInbox,
				Order:  2,
				Title:  "Your inbox",
				Description: "New mail lands at the top. Use the arrow keys to move through the list " +
					"and enter to open a message. Messages you have read lose their marker; " +
					"flagged messages keep theirs until you clear the flag. Threads are grouped " +
					"by subject, so a reply never gets separated from the message it answers, " +
					"and muted threads are skipped when you move with the arrow keys.",
				ScaleEffect: 1.05,
			},
			{
				Target:      TargetSearch,
				Order:       3,
				Title:       "Search",
				Description: "Find mail by sender, subject or any word in the body.",
				Background:  "#FFF7E6",
			},
			{
				Target:      TargetStatus,
				Order:       4,
				Title:       "Status bar",
				Description: "Sync state and the keys available right now.",
			},
		},
	}
}
