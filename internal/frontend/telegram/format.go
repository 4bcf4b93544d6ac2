package telegram

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vadimtrunov/MovieSearch/internal/catalog"
	"github.com/vadimtrunov/MovieSearch/internal/core"
)

const maxButtonLabel = 40 // max characters in inline keyboard button label

// Callback data prefixes.
const (
	callbackMovie = "movie:"
	callbackPage  = "page:"
	callbackBack  = "back"
)

// mdV2Replacer escapes special characters for Telegram MarkdownV2.
var mdV2Replacer = strings.NewReplacer(
	`\`, `\\`,
	"_", "\\_",
	"*", "\\*",
	"[", "\\[",
	"]", "\\]",
	"(", "\\(",
	")", "\\)",
	"~", "\\~",
	"`", "\\`",
	">", "\\>",
	"#", "\\#",
	"+", "\\+",
	"-", "\\-",
	"=", "\\=",
	"|", "\\|",
	"{", "\\{",
	"}", "\\}",
	".", "\\.",
	"!", "\\!",
)

// EscapeMdV2 escapes a string for safe use in Telegram MarkdownV2.
func EscapeMdV2(s string) string {
	return mdV2Replacer.Replace(s)
}

// FormatBold returns MarkdownV2 bold text.
func FormatBold(s string) string {
	return "*" + EscapeMdV2(s) + "*"
}

// FormatItalic returns MarkdownV2 italic text.
func FormatItalic(s string) string {
	return "_" + EscapeMdV2(s) + "_"
}

// reply is a rendered message: MarkdownV2 text, its plain fallback and an
// optional inline keyboard.
type reply struct {
	text     string
	plain    string
	keyboard *tgbotapi.InlineKeyboardMarkup
}

// resultsReply renders a result list. page is 0 for list views, which carry
// no pagination row.
func resultsReply(heading string, movies []core.MovieSummary, errText string, page int, showPrev, showNext bool) reply {
	if errText != "" {
		return reply{
			text:  FormatBold(heading) + "\n\n" + EscapeMdV2(errText),
			plain: heading + "\n\n" + errText,
		}
	}
	if len(movies) == 0 {
		return reply{
			text:  FormatBold(heading) + "\n\nNo results\\.",
			plain: heading + "\n\nNo results.",
		}
	}

	var md, plain strings.Builder
	md.WriteString(FormatBold(heading) + "\n")
	plain.WriteString(heading + "\n")
	if page > 0 {
		md.WriteString(FormatItalic(fmt.Sprintf("Page %d", page)) + "\n")
		plain.WriteString(fmt.Sprintf("Page %d\n", page))
	}
	md.WriteString("\n")
	plain.WriteString("\n")

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, c := range catalog.Cards(movies) {
		line := fmt.Sprintf("%d. %s (%s)", i+1, c.Title, c.Year)
		md.WriteString(EscapeMdV2(line) + "\n")
		plain.WriteString(line + "\n")
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(buttonLabel(c.Title, c.Year), callbackMovie+c.ID),
		))
	}

	var pager []tgbotapi.InlineKeyboardButton
	if showPrev {
		pager = append(pager, tgbotapi.NewInlineKeyboardButtonData("« Previous", callbackPage+strconv.Itoa(page-1)))
	}
	if showNext {
		pager = append(pager, tgbotapi.NewInlineKeyboardButtonData("Next »", callbackPage+strconv.Itoa(page+1)))
	}
	if len(pager) > 0 {
		rows = append(rows, pager)
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return reply{text: md.String(), plain: plain.String(), keyboard: &kb}
}

// detailReply renders one record. withBack adds the back button.
func detailReply(state *catalog.DetailState, withBack bool) reply {
	var r reply
	if m := state.Movie(); m != nil {
		var md, plain strings.Builder
		title := fmt.Sprintf("%s (%s)", m.Title, m.Year)
		md.WriteString(FormatBold(title) + "\n\n")
		plain.WriteString(title + "\n\n")
		for _, f := range [][2]string{
			{"Genre", m.Genre},
			{"Director", m.Director},
			{"Actors", m.Actors},
			{"IMDb rating", m.Rating},
		} {
			md.WriteString(FormatItalic(f[0]) + ": " + EscapeMdV2(f[1]) + "\n")
			plain.WriteString(f[0] + ": " + f[1] + "\n")
		}
		md.WriteString("\n" + EscapeMdV2(m.Plot))
		plain.WriteString("\n" + m.Plot)
		r = reply{text: md.String(), plain: plain.String()}
	} else {
		r = reply{text: EscapeMdV2(state.Err()), plain: state.Err()}
	}

	if withBack {
		kb := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« Back", callbackBack),
		))
		r.keyboard = &kb
	}
	return r
}

func buttonLabel(title, year string) string {
	label := title
	if r := []rune(label); len(r) > maxButtonLabel {
		label = string(r[:maxButtonLabel]) + "…"
	}
	if year != "" {
		label += " (" + year + ")"
	}
	return label
}
