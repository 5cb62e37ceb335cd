package order

type Status string

const (
	StatusDraft           Status = "draft"
	StatusPriced          Status = "priced"
	StatusFulfilled       Status = "fulfilled"
	StatusPartiallyFailed Status = "partially_failed"
)

var validNext = map[Status]map[Status]bool{
	StatusDraft:           {StatusPriced: true},
	StatusPriced:          {StatusFulfilled: true, StatusPartiallyFailed: true},
	StatusFulfilled:       {},
	StatusPartiallyFailed: {},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := validNext[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return s == StatusFulfilled || s == StatusPartiallyFailed
}
