package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskcheck/internal/adapter/http/dto"
	"taskcheck/internal/adapter/http/mapper"
	"taskcheck/internal/adapter/http/middleware"
	"taskcheck/internal/adapter/http/validation"
	"taskcheck/internal/core/domain"
	"taskcheck/internal/core/ports"
	"taskcheck/pkg/botmsg"
)

const (
	commandStart = "/start"
	commandMenu  = "/menu"
)

// UpdateHandler is the bot surface: it accepts platform updates, refreshes
// the user profile, dispatches to the wizard or the checker and renders the
// reply the bridge sends back.
type UpdateHandler struct {
	users  ports.UserRepository
	wizard ports.WizardService
	tasks  ports.TaskService
	now    func() time.Time
}

func NewUpdateHandler(users ports.UserRepository, wizard ports.WizardService, tasks ports.TaskService) *UpdateHandler {
	return &UpdateHandler{
		users:  users,
		wizard: wizard,
		tasks:  tasks,
		now:    time.Now,
	}
}

func (h *UpdateHandler) HandleUpdate(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			botmsg.CreateError(http.StatusBadRequest, botmsg.MsgInvalidUpdatePayload, lang),
		)
		return
	}

	event, err := validation.BuildEvent(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			botmsg.CreateError(http.StatusBadRequest, botmsg.MsgInvalidUpdatePayload, lang),
		)
		return
	}

	// Profile refresh on every interaction; never touches points.
	ctx := c.Request.Context()
	if _, err := h.users.Upsert(ctx, domain.User{
		ID:     event.UserID,
		Name:   event.DisplayName,
		Handle: event.Handle,
	}); err != nil {
		zap.L().Error("failed to upsert user", zap.Int64("user_id", event.UserID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			botmsg.CreateError(http.StatusInternalServerError, botmsg.MsgInternalError, lang),
		)
		return
	}

	if event.IsCallback {
		h.handleCallback(c, lang, event)
		return
	}
	h.handleMessage(c, lang, event)
}

func (h *UpdateHandler) handleCallback(c *gin.Context, lang string, event validation.Event) {
	switch event.Input {
	case mapper.CallbackAddTask:
		reply, err := h.wizard.Start(c.Request.Context(), event.UserID)
		if err != nil {
			h.internalError(c, lang, event.UserID, "failed to start wizard", err)
			return
		}
		c.JSON(http.StatusOK, h.renderWizard(lang, reply))
	case mapper.CallbackShowTasks:
		h.listTasks(c, lang, event.UserID)
	default:
		// Any other callback payload is a task name to check.
		h.checkTask(c, lang, event.UserID, event.Input)
	}
}

func (h *UpdateHandler) handleMessage(c *gin.Context, lang string, event validation.Event) {
	switch event.Input {
	case commandStart:
		c.JSON(http.StatusOK, dto.Reply{
			Text:           botmsg.Localize(botmsg.MsgWelcome, lang, nil),
			RemoveKeyboard: true,
		})
		return
	case commandMenu:
		c.JSON(http.StatusOK, dto.Reply{
			Text:     botmsg.Localize(botmsg.MsgMenu, lang, nil),
			Keyboard: mapper.MenuKeyboard(lang),
		})
		return
	}

	text := event.Input
	// Localized cancel buttons send their label as plain text; fold it onto
	// the canonical keyword before the wizard sees it.
	if strings.EqualFold(text, botmsg.Localize(botmsg.MsgButtonCancel, lang, nil)) {
		text = domain.CancelKeyword
	}

	reply, err := h.wizard.Advance(c.Request.Context(), event.UserID, text, h.now())
	if err != nil {
		h.internalError(c, lang, event.UserID, "failed to advance wizard", err)
		return
	}
	c.JSON(http.StatusOK, h.renderWizard(lang, reply))
}

func (h *UpdateHandler) listTasks(c *gin.Context, lang string, userID int64) {
	tasks, err := h.tasks.ListTasks(c.Request.Context(), userID)
	if err != nil {
		h.internalError(c, lang, userID, "failed to list tasks", err)
		return
	}

	if len(tasks) == 0 {
		c.JSON(http.StatusOK, dto.Reply{Text: botmsg.Localize(botmsg.MsgTaskListEmpty, lang, nil)})
		return
	}
	c.JSON(http.StatusOK, dto.Reply{
		Text:     botmsg.Localize(botmsg.MsgTaskList, lang, nil),
		Keyboard: mapper.ToTaskButtons(tasks),
	})
}

func (h *UpdateHandler) checkTask(c *gin.Context, lang string, userID int64, name string) {
	result, err := h.tasks.Check(c.Request.Context(), userID, name, h.now())
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusOK, dto.Reply{Text: botmsg.Localize(botmsg.MsgTaskNotFound, lang, nil)})
		return
	case errors.Is(err, domain.ErrTaskSettled):
		c.JSON(http.StatusOK, dto.Reply{
			Text:     botmsg.Localize(botmsg.MsgTaskSettled, lang, nil) + "\n\n" + mapper.ToTaskCard(lang, result.Task),
			Keyboard: mapper.BackKeyboard(lang),
		})
		return
	case err != nil:
		h.internalError(c, lang, userID, "failed to check task", err)
		return
	}

	noticeKey := botmsg.MsgCheckOnTime
	if result.Outcome == domain.OutcomeLate {
		noticeKey = botmsg.MsgCheckLate
	}
	notice := botmsg.Localize(noticeKey, lang, map[string]any{"Points": result.Task.Points})

	c.JSON(http.StatusOK, dto.Reply{
		Text:     notice + "\n\n" + mapper.ToTaskCard(lang, result.Task),
		Keyboard: mapper.DoneBackKeyboard(lang),
	})
}

func (h *UpdateHandler) renderWizard(lang string, reply domain.WizardReply) dto.Reply {
	switch reply.Status {
	case domain.WizardPromptName:
		return dto.Reply{Text: botmsg.Localize(botmsg.MsgPromptTaskName, lang, nil), Keyboard: mapper.CancelKeyboard(lang)}
	case domain.WizardNameTaken:
		return dto.Reply{Text: botmsg.Localize(botmsg.MsgTaskNameTaken, lang, nil), Keyboard: mapper.CancelKeyboard(lang)}
	case domain.WizardPromptDescription:
		return dto.Reply{Text: botmsg.Localize(botmsg.MsgPromptTaskDescription, lang, nil), Keyboard: mapper.CancelKeyboard(lang)}
	case domain.WizardPromptPoints:
		return dto.Reply{Text: botmsg.Localize(botmsg.MsgPromptTaskPoints, lang, nil), Keyboard: mapper.CancelKeyboard(lang)}
	case domain.WizardInvalidPoints:
		return dto.Reply{Text: botmsg.Localize(botmsg.MsgInvalidPoints, lang, nil), Keyboard: mapper.CancelKeyboard(lang)}
	case domain.WizardPromptDeadline:
		return dto.Reply{Text: botmsg.Localize(botmsg.MsgPromptTaskDeadline, lang, nil), Keyboard: mapper.CancelKeyboard(lang)}
	case domain.WizardInvalidDuration:
		return dto.Reply{Text: botmsg.Localize(botmsg.MsgInvalidDuration, lang, nil), Keyboard: mapper.CancelKeyboard(lang)}
	case domain.WizardBusy:
		return dto.Reply{Text: botmsg.Localize(botmsg.MsgWizardBusy, lang, nil), Keyboard: mapper.CancelKeyboard(lang)}
	case domain.WizardCancelled:
		return dto.Reply{Text: botmsg.Localize(botmsg.MsgCancelled, lang, nil), RemoveKeyboard: true}
	case domain.WizardCreated:
		return dto.Reply{Text: mapper.ToCreatedCard(lang, *reply.Task), Keyboard: mapper.BackKeyboard(lang), RemoveKeyboard: true}
	default:
		return dto.Reply{Text: botmsg.Localize(botmsg.MsgIdleHint, lang, nil)}
	}
}

func (h *UpdateHandler) internalError(c *gin.Context, lang string, userID int64, msg string, err error) {
	zap.L().Error(msg, zap.Int64("user_id", userID), zap.Error(err))
	c.JSON(
		http.StatusInternalServerError,
		botmsg.CreateError(http.StatusInternalServerError, botmsg.MsgInternalError, lang),
	)
}
