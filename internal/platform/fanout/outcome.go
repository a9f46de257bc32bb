package fanout

// Status tells a caller why an item in a batch has or lacks a value.
type Status string

const (
	StatusOK     Status = "ok"
	StatusAbsent Status = "absent"
	StatusFailed Status = "failed"
)

// Outcome is the per-item result of a fan-out. Absent means the provider
// answered but had nothing; Failed means the provider could not be reached
// or errored, and Err carries the cause.
type Outcome[T any] struct {
	Value  T      `json:"value,omitempty"`
	Status Status `json:"status"`
	Err    error  `json:"-"`
}

func OK[T any](value T) Outcome[T] {
	return Outcome[T]{Value: value, Status: StatusOK}
}

func Absent[T any]() Outcome[T] {
	return Outcome[T]{Status: StatusAbsent}
}

func Failed[T any](err error) Outcome[T] {
	return Outcome[T]{Status: StatusFailed, Err: err}
}

func (o Outcome[T]) IsOK() bool {
	return o.Status == StatusOK
}
