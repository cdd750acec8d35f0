package store

// Channel consumes one line of output. Anything with this shape works: a
// logger method, a UI callback or a function that drops its input.
type Channel func(msg string)

// Discard is a Channel that ignores everything.
func Discard(string) {}

func orDiscard(c Channel) Channel {
	if c == nil {
		return Discard
	}
	return c
}
