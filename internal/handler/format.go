package handler

import (
	"fmt"
	"strings"

	"vocabook/internal/domain"

	tele "gopkg.in/telebot.v3"
)

const (
	answerPrefix = "answer_"
	pagePrefix   = "page_"
	statsLimit   = 15
)

func formatQuestion(q *domain.Question) string {
	return "🎯 " + q.Prompt
}

// choicesMarkup puts every choice on its own row
func choicesMarkup(q *domain.Question) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(q.Choices)+1)
	for i, choice := range q.Choices {
		rows = append(rows, markup.Row(markup.Data(choice, fmt.Sprintf("%s%d", answerPrefix, i))))
	}
	rows = append(rows, markup.Row(btnBack))
	markup.Inline(rows...)
	return markup
}

func formatResult(q *domain.Question, chosen int, result *domain.GradeResult) string {
	var b strings.Builder

	if result.Correct {
		b.WriteString("✅ Correct!\n\n")
	} else {
		b.WriteString("❌ Wrong.\n\n")
		if chosen >= 0 && chosen < len(q.Choices) {
			fmt.Fprintf(&b, "Your answer: %s\n", q.Choices[chosen])
		}
	}
	fmt.Fprintf(&b, "%s → %s\n\n", q.Word, result.CorrectAnswer)

	st := result.Stats
	fmt.Fprintf(&b, "📊 %d correct, %d wrong (%.1f%%)",
		st.Correct, st.Wrong, domain.RoundAccuracy(st.Accuracy()))
	return b.String()
}

func formatWordsPage(page domain.Page, categories []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📚 Your words (page %d/%d):\n\n", page.Number, page.Total)
	for _, w := range page.Words {
		if w.Category != "" {
			fmt.Fprintf(&b, "• %s — %s [%s]\n", w.Word, w.Meaning, w.Category)
		} else {
			fmt.Fprintf(&b, "• %s — %s\n", w.Word, w.Meaning)
		}
	}

	if len(categories) > 0 {
		fmt.Fprintf(&b, "\n🏷 Categories: %s", strings.Join(categories, ", "))
	}
	return b.String()
}

func pageMarkup(page domain.Page) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	navRow := tele.Row{}
	if page.HasPrev() {
		navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("%s%d", pagePrefix, page.Number-1)))
	}
	if page.HasNext() {
		navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("%s%d", pagePrefix, page.Number+1)))
	}
	if len(navRow) > 0 {
		rows = append(rows, navRow)
	}

	rows = append(rows, markup.Row(btnBack))
	markup.Inline(rows...)
	return markup
}

// formatStats lists at most limit rows of the report
func formatStats(rows []domain.StatsRow, summary domain.Summary, limit int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 Stats\n\nWords: %d, practised: %d\n", summary.WordCount, summary.StatsCount)
	if len(rows) == 0 {
		b.WriteString("\nNo quiz attempts yet.")
		return b.String()
	}

	b.WriteString("\n")
	for i, row := range rows {
		if i == limit {
			fmt.Fprintf(&b, "…and %d more", len(rows)-limit)
			break
		}
		fmt.Fprintf(&b, "%d. %s — %.1f%% (%d/%d)\n", i+1, row.Word, row.Accuracy, row.Correct, row.Total)
	}
	return strings.TrimRight(b.String(), "\n")
}
