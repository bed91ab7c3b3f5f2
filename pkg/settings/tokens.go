package settings

type tokenEntry[T comparable] struct {
	value T
	token string
}

// tokenTable is a bidirectional value<->token mapping with a fallback value
// for unknown tokens.
type tokenTable[T comparable] struct {
	entries  []tokenEntry[T]
	fallback T
}

func (tt tokenTable[T]) lookup(token string) (T, bool) {
	for _, e := range tt.entries {
		if e.token == token {
			return e.value, true
		}
	}

	return tt.fallback, false
}

func (tt tokenTable[T]) parse(token string) T {
	v, _ := tt.lookup(token)
	return v
}

func (tt tokenTable[T]) format(v T) string {
	for _, e := range tt.entries {
		if e.value == v {
			return e.token
		}
	}

	return tt.format(tt.fallback)
}

func (tt tokenTable[T]) tokens() []string {
	out := make([]string, len(tt.entries))
	for i, e := range tt.entries {
		out[i] = e.token
	}

	return out
}
