package types

import "fmt"

// TicketStatus and TicketPriority are closed enumerations. Values
// arriving over the wire are parsed through ParseTicketStatus and
// ParseTicketPriority rather than stored as free-form strings.

type TicketStatus string

const (
	StatusToDo       TicketStatus = "To Do"
	StatusInProgress TicketStatus = "In Progress"
	StatusDone       TicketStatus = "Done"
)

type TicketPriority string

const (
	PriorityHigh   TicketPriority = "High"
	PriorityMedium TicketPriority = "Medium"
	PriorityLow    TicketPriority = "Low"
)

func ParseTicketStatus(s string) (TicketStatus, error) {
	switch TicketStatus(s) {
	case StatusToDo, StatusInProgress, StatusDone:
		return TicketStatus(s), nil
	}
	return "", fmt.Errorf("invalid ticket status %q", s)
}

func ParseTicketPriority(s string) (TicketPriority, error) {
	switch TicketPriority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return TicketPriority(s), nil
	}
	return "", fmt.Errorf("invalid ticket priority %q", s)
}

// TicketStatuses lists every valid status in board order
// (To Do, In Progress, Done).
func TicketStatuses() []TicketStatus {
	return []TicketStatus{StatusToDo, StatusInProgress, StatusDone}
}
