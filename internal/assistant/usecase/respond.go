package usecase

import (
	"fmt"
	"strings"

	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/humantime"
)

// respond turns an execution result into the conversational reply shown
// to the user, hiding IDs and raw timestamps. Pure function of its
// inputs.
func respond(action model.Action, intent model.ParsedIntent, result model.ExecutionResult) string {
	if !result.Success {
		if result.NeedsConfirmation && len(result.MultipleMatches) > 0 {
			return selectionPrompt(result.MultipleMatches)
		}
		if strings.Contains(result.Message, "No events found") ||
			strings.Contains(result.Message, "No matching events found") {
			return nothingFoundReply(intent)
		}
		message := result.Message
		if message == "" {
			message = "Something went wrong"
		}
		return "Sorry, " + message
	}

	switch action {
	case model.ActionCreate:
		return createdReply(intent, result)
	case model.ActionDelete:
		return cancelledReply(intent, result)
	case model.ActionMove:
		return movedReply(intent, result)
	case model.ActionList:
		return agendaReply(intent, result)
	}

	if result.Message != "" {
		return result.Message
	}
	return "Done!"
}

// selectionPrompt numbers the candidates so the next message can pick
// one by position.
func selectionPrompt(matches []model.EventCandidate) string {
	var b strings.Builder
	b.WriteString("I found multiple matches - which one did you mean?\n\n")
	for i, match := range matches {
		title := match.Title
		if title == "" {
			title = "Untitled"
		}
		switch {
		case match.TimeDisplay != "":
			fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, title, match.TimeDisplay)
		case strings.Contains(match.Start, "T"):
			fmt.Fprintf(&b, "%d. %s at %s\n", i+1, title, humantime.FormatTime(match.Start))
		default:
			fmt.Fprintf(&b, "%d. %s\n", i+1, title)
		}
	}
	b.WriteString("\nType 1, 2, 3... to select, or type a new command to cancel.")
	return strings.TrimSpace(b.String())
}

func nothingFoundReply(intent model.ParsedIntent) string {
	switch {
	case intent.Time != "" && intent.Date != "":
		date := humantime.FormatDate(intent.Date)
		clock := humantime.FormatTime(intent.Time)
		if intent.Title != "" {
			return fmt.Sprintf("Sorry, I couldn't find '%s' at %s on %s", intent.Title, clock, date)
		}
		return fmt.Sprintf("You have nothing scheduled at %s on %s", clock, date)
	case intent.Date != "":
		date := humantime.FormatDate(intent.Date)
		if intent.Title != "" {
			return fmt.Sprintf("Sorry, I couldn't find '%s' on %s", intent.Title, date)
		}
		return fmt.Sprintf("You have nothing scheduled for %s", date)
	default:
		return "Sorry, I couldn't find any matching events"
	}
}

func createdReply(intent model.ParsedIntent, result model.ExecutionResult) string {
	title := ""
	start := ""
	if result.Event != nil {
		title = result.Event.Title
		start = result.Event.Start
	}
	if title == "" {
		title = intent.Title
	}
	if title == "" {
		title = "Event"
	}

	var date, clock string
	if start != "" {
		date = humantime.FormatDate(start)
		clock = humantime.FormatTime(start)
	} else {
		date, clock = "today", "12:00 PM"
		if intent.Date != "" {
			date = humantime.FormatDate(intent.Date)
		}
		if intent.Time != "" {
			clock = humantime.FormatTime(intent.Time)
		}
	}

	return fmt.Sprintf("✓ Done! '%s' scheduled for %s at %s", title, date, clock)
}

func cancelledReply(intent model.ParsedIntent, result model.ExecutionResult) string {
	title := resultTitle(intent, result)
	if intent.Date != "" {
		return fmt.Sprintf("✓ Done! '%s' on %s has been cancelled", title, humantime.FormatDate(intent.Date))
	}
	return fmt.Sprintf("✓ Done! '%s' has been cancelled", title)
}

func movedReply(intent model.ParsedIntent, result model.ExecutionResult) string {
	title := resultTitle(intent, result)

	var date, clock string
	if intent.NewDate != "" {
		date = humantime.FormatDate(intent.NewDate)
	}
	if intent.NewTime != "" {
		clock = humantime.FormatTime(intent.NewTime)
	}

	switch {
	case date != "" && clock != "":
		return fmt.Sprintf("✓ Done! '%s' moved to %s at %s", title, date, clock)
	case date != "":
		return fmt.Sprintf("✓ Done! '%s' moved to %s", title, date)
	default:
		return fmt.Sprintf("✓ Done! '%s' has been rescheduled", title)
	}
}

func agendaReply(intent model.ParsedIntent, result model.ExecutionResult) string {
	if len(result.Events) == 0 {
		window := "that time"
		if intent.Date != "" {
			window = humantime.FormatDate(intent.Date)
		}
		return fmt.Sprintf("You have nothing scheduled for %s", window)
	}

	header := "your schedule"
	if intent.Date != "" {
		header = humantime.FormatDate(intent.Date)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here's what you have on %s:\n\n", header)
	for _, event := range result.Events {
		title := event.Title
		if title == "" {
			title = "Untitled"
		}
		switch {
		case event.TimeDisplay != "":
			fmt.Fprintf(&b, "• %s - %s\n", event.TimeDisplay, title)
		case strings.Contains(event.Start, "T"):
			fmt.Fprintf(&b, "• %s - %s\n", humantime.FormatTime(event.Start), title)
		default:
			fmt.Fprintf(&b, "• %s\n", title)
		}
	}
	return strings.TrimSpace(b.String())
}

// resultTitle prefers the title of the event the executor actually
// touched over the fuzzy title the user typed.
func resultTitle(intent model.ParsedIntent, result model.ExecutionResult) string {
	if result.Event != nil && result.Event.Title != "" {
		return result.Event.Title
	}
	if intent.Title != "" {
		return intent.Title
	}
	return "Event"
}
