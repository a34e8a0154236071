package domain

// Ptr returns a pointer to a copy of s, handy for optional descriptions.
func Ptr(s string) *string {
	return &s
}

// TaskCount returns the number of tasks across all columns of the board.
func (b *BoardWithColumns) TaskCount() int {
	n := 0
	for _, c := range b.Columns {
		n += len(c.Tasks)
	}
	return n
}
