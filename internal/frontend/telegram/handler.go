package telegram

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vadimtrunov/MovieSearch/internal/catalog"
	"github.com/vadimtrunov/MovieSearch/internal/core"
)

const (
	unauthorizedMsg = "Sorry, you are not authorized to use this bot."

	helpMsg = "Send a title to search OMDb.\n\n" +
		"/search <title> - search (empty searches the default title)\n" +
		"/type <all|movie|series|episode> - filter searches\n" +
		"/movies - list titles\n" +
		"/list <type> - list titles of one type\n" +
		"/movie <imdb id> - show one title"
)

// handleMessage processes an incoming text message.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}
	userID := msg.From.ID
	chatID := msg.Chat.ID

	b.logger.Debug("received message",
		slog.Int64("user_id", userID),
	)

	if !b.sessions.isAllowed(userID) {
		b.sendText(chatID, unauthorizedMsg)
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	cmd, arg := parseCommand(text)
	switch cmd {
	case "":
		b.search(ctx, chatID, text)
	case "start", "help":
		b.sendText(chatID, helpMsg)
	case "search":
		b.search(ctx, chatID, arg)
	case "type":
		b.setType(chatID, arg)
	case "movies":
		b.list(ctx, chatID, core.CategoryAll)
	case "list":
		category, ok := core.ParseCategory(arg)
		if !ok {
			category = core.Category(arg)
		}
		b.list(ctx, chatID, category)
	case "movie":
		if arg == "" {
			b.sendText(chatID, "Usage: /movie <imdb id>")
			return
		}
		b.showDetail(ctx, chatID, 0, arg)
	default:
		b.sendText(chatID, helpMsg)
	}
}

// parseCommand splits "/cmd@bot arg" into cmd and arg. Plain text yields an
// empty cmd.
func parseCommand(text string) (cmd, arg string) {
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	head, rest, _ := strings.Cut(text[1:], " ")
	head, _, _ = strings.Cut(head, "@")
	return strings.ToLower(head), strings.TrimSpace(rest)
}

// search submits query with the chat's selected category.
func (b *Bot) search(ctx context.Context, chatID int64, query string) {
	sess := b.sessions.get(chatID)

	sess.mu.Lock()
	sess.search.Query = query
	req := sess.search.Submit()
	sess.mu.Unlock()

	b.typing(chatID)
	res := b.svc.Search(ctx, req)

	if r, ok := b.applySearch(sess, req.Seq, res); ok {
		b.send(chatID, r)
	}
}

// changePage fetches another page of the chat's committed search and edits
// the results message in place.
func (b *Bot) changePage(ctx context.Context, chatID int64, messageID, page int) {
	sess := b.sessions.get(chatID)

	sess.mu.Lock()
	if !sess.search.Submitted() {
		sess.mu.Unlock()
		return
	}
	req := sess.search.ChangePage(page)
	sess.mu.Unlock()

	res := b.svc.Search(ctx, req)

	if r, ok := b.applySearch(sess, req.Seq, res); ok {
		b.edit(chatID, messageID, r)
	}
}

// applySearch stores a result and renders the search view. ok is false when
// a newer request superseded this one.
func (b *Bot) applySearch(sess *chatSession, seq uint64, res catalog.MoviesResult) (reply, bool) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if !sess.search.Apply(seq, res) {
		return reply{}, false
	}
	sess.last = catalog.ViewSearch
	return searchReply(sess.search), true
}

func searchReply(s *catalog.SearchState) reply {
	heading := "Results for " + s.CommittedQuery()
	if s.CommittedQuery() == "" {
		heading = "Results"
	}
	if c := s.CommittedCategory(); c != core.CategoryAll {
		heading += " (" + c.Option() + ")"
	}
	return resultsReply(heading, s.Movies(), s.Err(), s.Page(), s.ShowPrevious(), s.ShowNext())
}

func listReply(l *catalog.ListState) reply {
	return resultsReply(l.Heading(), l.Movies(), l.Err(), 0, false, false)
}

func (b *Bot) setType(chatID int64, arg string) {
	category, ok := core.ParseCategory(strings.ToLower(arg))
	if !ok {
		b.sendText(chatID, "Unknown type. Use one of: all, movie, series, episode.")
		return
	}
	sess := b.sessions.get(chatID)
	sess.mu.Lock()
	sess.search.Category = category
	sess.mu.Unlock()
	b.sendText(chatID, "Search type set to "+category.Option()+".")
}

// list shows the list view for category: one fetch, no pagination.
func (b *Bot) list(ctx context.Context, chatID int64, category core.Category) {
	sess := b.sessions.get(chatID)
	state := catalog.NewListState(category)
	req := state.Request()

	b.typing(chatID)
	state.Apply(req.Seq, b.svc.Search(ctx, req))

	sess.mu.Lock()
	sess.list = state
	sess.last = catalog.ViewList
	sess.mu.Unlock()

	b.send(chatID, listReply(state))
}

// showDetail fetches one record. A non-zero messageID edits that message and
// offers a back button to the results it replaced.
func (b *Bot) showDetail(ctx context.Context, chatID int64, messageID int, id string) {
	state := catalog.NewDetailState(id)
	if messageID == 0 {
		b.typing(chatID)
	}
	state.Apply(b.svc.FetchMovieDetails(ctx, id))

	if messageID == 0 {
		b.send(chatID, detailReply(state, false))
		return
	}
	b.edit(chatID, messageID, detailReply(state, true))
}

// back re-renders the chat's last result view without refetching.
func (b *Bot) back(chatID int64, messageID int) {
	sess := b.sessions.get(chatID)

	sess.mu.Lock()
	var r reply
	switch sess.last {
	case catalog.ViewSearch:
		r = searchReply(sess.search)
	case catalog.ViewList:
		r = listReply(sess.list)
	default:
		sess.mu.Unlock()
		return
	}
	sess.mu.Unlock()

	b.edit(chatID, messageID, r)
}

// handleCallback processes inline keyboard callback queries.
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.From == nil || cq.Message == nil || cq.Message.Chat == nil {
		return
	}
	userID := cq.From.ID
	chatID := cq.Message.Chat.ID
	messageID := cq.Message.MessageID

	b.logger.Debug("received callback",
		slog.Int64("user_id", userID),
		slog.String("data", cq.Data),
	)

	// Acknowledge the callback immediately.
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		b.logger.Debug("callback ack failed", slog.String("error", err.Error()))
	}

	if !b.sessions.isAllowed(userID) {
		return
	}

	switch {
	case strings.HasPrefix(cq.Data, callbackMovie):
		b.showDetail(ctx, chatID, messageID, strings.TrimPrefix(cq.Data, callbackMovie))
	case strings.HasPrefix(cq.Data, callbackPage):
		page, err := strconv.Atoi(strings.TrimPrefix(cq.Data, callbackPage))
		if err != nil || page < 1 {
			return
		}
		b.changePage(ctx, chatID, messageID, page)
	case cq.Data == callbackBack:
		b.back(chatID, messageID)
	}
}

// typing shows the typing indicator; best effort.
func (b *Bot) typing(chatID int64) {
	if _, err := b.api.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		b.logger.Debug("chat action failed", slog.String("error", err.Error()))
	}
}

// send delivers r as a new MarkdownV2 message, retrying as plain text.
func (b *Bot) send(chatID int64, r reply) {
	msg := tgbotapi.NewMessage(chatID, r.text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	if r.keyboard != nil {
		msg.ReplyMarkup = r.keyboard
	}
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn("failed to send markdown, retrying plain",
			slog.String("error", err.Error()),
		)
		plain := tgbotapi.NewMessage(chatID, r.plain)
		if r.keyboard != nil {
			plain.ReplyMarkup = r.keyboard
		}
		if _, err := b.api.Send(plain); err != nil {
			b.logger.Error("failed to send message",
				slog.Int64("chat_id", chatID),
				slog.String("error", err.Error()),
			)
		}
	}
}

// edit replaces the text and keyboard of an existing message.
func (b *Bot) edit(chatID int64, messageID int, r reply) {
	var edit tgbotapi.EditMessageTextConfig
	if r.keyboard != nil {
		edit = tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, r.text, *r.keyboard)
	} else {
		edit = tgbotapi.NewEditMessageText(chatID, messageID, r.text)
	}
	edit.ParseMode = tgbotapi.ModeMarkdownV2

	if _, err := b.api.Send(edit); err != nil {
		if strings.Contains(err.Error(), "message is not modified") {
			return
		}
		b.logger.Warn("failed to edit message, sending new one",
			slog.String("error", err.Error()),
		)
		b.send(chatID, r)
	}
}

// sendText sends a plain text message (no parse mode).
func (b *Bot) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send message",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
	}
}
