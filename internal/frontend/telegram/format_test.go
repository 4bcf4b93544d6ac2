package telegram

import (
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadimtrunov/MovieSearch/internal/catalog"
	"github.com/vadimtrunov/MovieSearch/internal/catalog/catalogtest"
)

func TestEscapeMdV2(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "hello world", want: "hello world"},
		{name: "dots", in: "hello.", want: "hello\\."},
		{name: "exclamation", in: "Done!", want: "Done\\!"},
		{name: "parentheses", in: "(2024)", want: "\\(2024\\)"},
		{name: "brackets", in: "[link]", want: "\\[link\\]"},
		{name: "underscores", in: "foo_bar", want: "foo\\_bar"},
		{name: "stars", in: "*bold*", want: "\\*bold\\*"},
		{name: "mixed", in: "Dune (2021) - 8.0*", want: "Dune \\(2021\\) \\- 8\\.0\\*"},
		{name: "all specials", in: "_*[]()~`>#+-=|{}.!", want: "\\_\\*\\[\\]\\(\\)\\~\\`\\>\\#\\+\\-\\=\\|\\{\\}\\.\\!"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EscapeMdV2(tt.in)
			if got != tt.want {
				t.Errorf("EscapeMdV2(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatBold(t *testing.T) {
	got := FormatBold("Dune")
	want := "*Dune*"
	if got != want {
		t.Errorf("FormatBold(%q) = %q, want %q", "Dune", got, want)
	}

	got = FormatBold("Dune (2021)")
	want = "*Dune \\(2021\\)*"
	if got != want {
		t.Errorf("FormatBold(%q) = %q, want %q", "Dune (2021)", got, want)
	}
}

func TestFormatItalic(t *testing.T) {
	got := FormatItalic("description")
	want := "_description_"
	if got != want {
		t.Errorf("FormatItalic(%q) = %q, want %q", "description", got, want)
	}
}

func callbacks(kb *tgbotapi.InlineKeyboardMarkup) []string {
	var out []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			if btn.CallbackData != nil {
				out = append(out, *btn.CallbackData)
			}
		}
	}
	return out
}

func TestResultsReply(t *testing.T) {
	r := resultsReply("Results for Batman", catalogtest.BatmanResults(), "", 1, false, true)

	assert.Contains(t, r.text, "*Results for Batman*")
	assert.Contains(t, r.text, "_Page 1_")
	assert.Contains(t, r.text, "1\\. Batman Begins \\(2005\\)")
	assert.Contains(t, r.plain, "3. Batman (1989)")
	require.NotNil(t, r.keyboard)
	assert.Equal(t, []string{"movie:tt0372784", "movie:tt1877830", "movie:tt0096895", "page:2"}, callbacks(r.keyboard))

	r = resultsReply("Results", catalogtest.BatmanResults(), "", 3, true, true)
	assert.Equal(t, []string{"page:2", "page:4"}, callbacks(r.keyboard)[3:])
}

func TestResultsReply_ListHasNoPager(t *testing.T) {
	r := resultsReply("All Movies", catalogtest.BatmanResults(), "", 0, false, false)

	assert.NotContains(t, r.plain, "Page")
	for _, data := range callbacks(r.keyboard) {
		assert.True(t, strings.HasPrefix(data, "movie:"), data)
	}
}

func TestResultsReply_Error(t *testing.T) {
	r := resultsReply("Results for x", catalogtest.BatmanResults(), "Movie not found!", 1, false, true)

	assert.Contains(t, r.text, "Movie not found\\!")
	assert.Contains(t, r.plain, "Movie not found!")
	assert.Nil(t, r.keyboard)
}

func TestDetailReply(t *testing.T) {
	d := catalog.NewDetailState("tt0468569")
	d.Apply(catalog.DetailResult{Movie: catalogtest.DarkKnight()})

	r := detailReply(d, true)

	for _, want := range []string{"The Dark Knight (2008)", "Genre: Action, Crime, Drama", "Director: Christopher Nolan", "IMDb rating: 9.0", "the Joker"} {
		assert.Contains(t, r.plain, want)
	}
	assert.Contains(t, r.text, "*The Dark Knight \\(2008\\)*")
	assert.Equal(t, []string{"back"}, callbacks(r.keyboard))

	failed := catalog.NewDetailState("bogus")
	failed.Apply(catalog.DetailResult{Err: "Incorrect IMDb ID."})
	r = detailReply(failed, false)
	assert.Equal(t, "Incorrect IMDb ID.", r.plain)
	assert.Nil(t, r.keyboard)
}

func TestButtonLabel(t *testing.T) {
	assert.Equal(t, "Alien (1979)", buttonLabel("Alien", "1979"))
	long := strings.Repeat("x", 50)
	assert.Equal(t, strings.Repeat("x", 40)+"… (2000)", buttonLabel(long, "2000"))
}
