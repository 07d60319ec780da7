package domain

// Page is one screen of a word list
type Page struct {
	Words  []Word
	Number int
	Total  int
}

// HasPrev reports whether a previous page exists
func (p Page) HasPrev() bool {
	return p.Number > 1
}

// HasNext reports whether a following page exists
func (p Page) HasNext() bool {
	return p.Number < p.Total
}

// Paginate returns page number (1-based) of words split into pages of size.
// Out of range numbers are clamped.
func Paginate(words []Word, number, size int) Page {
	if size < 1 {
		size = 1
	}
	total := (len(words) + size - 1) / size
	if total == 0 {
		return Page{Number: 1, Total: 1}
	}

	number = min(max(number, 1), total)
	start := (number - 1) * size
	end := min(start+size, len(words))

	return Page{
		Words:  words[start:end],
		Number: number,
		Total:  total,
	}
}
