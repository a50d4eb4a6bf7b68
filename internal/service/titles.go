package service

import "math"

// scoreTitle maps an inclusive score range to a quiz title.
type scoreTitle struct {
	min   int
	max   int
	title string
}

// quizTitles is evaluated in order; the first matching range wins. Ranges are
// absolute scores, not fractions of the quiz length.
var quizTitles = []scoreTitle{
	{0, 4, "📚 Սկսնակ"},
	{5, 9, "💗 Ցածր մակարդակ"},
	{10, 14, "💙 Հետաքրքրված ֆուտբոլասեր"},
	{15, 19, "💕 Միջին մակարդակ"},
	{20, 24, "🎯 Անչափ տեղեկացված"},
	{25, 99, "🥇 Գիտակ"},
	{100, math.MaxInt, "🏆 Վարպետ"},
}

// TitleForScore returns the quiz title for a final score. The lookup is total:
// any score outside the table (negative) falls back to the first tier.
func TitleForScore(score int) string {
	for _, t := range quizTitles {
		if score >= t.min && score <= t.max {
			return t.title
		}
	}
	return quizTitles[0].title
}
