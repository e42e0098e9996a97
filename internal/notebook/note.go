package notebook

import "time"

// Note is a saved reflection. Content and Date are fixed at creation.
type Note struct {
	ID        string
	Content   string
	Date      string // display date, never recomputed
	CreatedAt time.Time
}

// Level classifies a notification for display.
type Level int

const (
	LevelSuccess Level = iota
	LevelWarning
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Notification is the transient message a transition asks the UI to show.
type Notification struct {
	Level       Level
	Title       string
	Description string
}

var (
	emptyDraftNotification = Notification{
		Level:       LevelWarning,
		Title:       "Atenção",
		Description: "Escreva algo antes de salvar.",
	}
	savedNotification = Notification{
		Level:       LevelSuccess,
		Title:       "Reflexão salva!",
		Description: "Sua reflexão foi adicionada ao caderno.",
	}
	deletedNotification = Notification{
		Level:       LevelSuccess,
		Title:       "Reflexão excluída",
		Description: "A reflexão foi removida do caderno.",
	}
)
