package mapper

import (
	"time"

	"taskcheck/internal/adapter/http/dto"
	"taskcheck/internal/core/domain"
	"taskcheck/pkg/botmsg"
)

const (
	CallbackAddTask   = "add_task"
	CallbackShowTasks = "show_tasks"
)

// FormatDue renders a deadline the way the original surface did, e.g.
// "Mon Jan  2 15:04:05 2006".
func FormatDue(deadline time.Time) string {
	return deadline.Format(time.ANSIC)
}

func MenuKeyboard(lang string) [][]dto.Button {
	return [][]dto.Button{
		{{Text: botmsg.Localize(botmsg.MsgButtonAddTask, lang, nil), Data: CallbackAddTask}},
		{{Text: botmsg.Localize(botmsg.MsgButtonShowTasks, lang, nil), Data: CallbackShowTasks}},
	}
}

func CancelKeyboard(lang string) [][]dto.Button {
	return [][]dto.Button{
		{{Text: botmsg.Localize(botmsg.MsgButtonCancel, lang, nil)}},
	}
}

func BackKeyboard(lang string) [][]dto.Button {
	return [][]dto.Button{
		{{Text: botmsg.Localize(botmsg.MsgButtonBack, lang, nil), Data: CallbackShowTasks}},
	}
}

func DoneBackKeyboard(lang string) [][]dto.Button {
	return [][]dto.Button{
		{
			{Text: botmsg.Localize(botmsg.MsgButtonDone, lang, nil), Data: CallbackShowTasks},
			{Text: botmsg.Localize(botmsg.MsgButtonBack, lang, nil), Data: CallbackShowTasks},
		},
	}
}

// ToTaskButtons renders one button per task, the task name doubling as the
// callback payload.
func ToTaskButtons(tasks []domain.Task) [][]dto.Button {
	keyboard := make([][]dto.Button, 0, len(tasks))
	for _, task := range tasks {
		keyboard = append(keyboard, []dto.Button{{Text: task.Name, Data: task.Name}})
	}
	return keyboard
}

// ToTaskCard renders the task detail text.
func ToTaskCard(lang string, task domain.Task) string {
	return botmsg.Localize(botmsg.MsgTaskCard, lang, map[string]any{
		"OwnerID":     task.OwnerID,
		"Name":        task.Name,
		"Description": task.Description,
		"Due":         FormatDue(task.Deadline),
	})
}

// ToCreatedCard renders the confirmation shown right after a task is
// persisted.
func ToCreatedCard(lang string, task domain.Task) string {
	return botmsg.Localize(botmsg.MsgTaskCreated, lang, map[string]any{
		"Name":        task.Name,
		"Description": task.Description,
		"Due":         FormatDue(task.Deadline),
	})
}
