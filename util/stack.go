package util

// Stack is a LIFO of A. The zero value is an empty stack.
type Stack[A any] struct {
	items []A
}

func NewStack[A any](items ...A) *Stack[A] {
	s := &Stack[A]{}
	s.PushAll(items...)
	return s
}

func (s *Stack[A]) Push(v A) {
	s.items = append(s.items, v)
}

// PushAll pushes vs so that vs[0] ends up at the top of the stack,
// which is what a FIFO reader of vs expects to pop first
func (s *Stack[A]) PushAll(vs ...A) {
	for v := range Reverse(vs) {
		s.Push(v)
	}
}

func (s *Stack[A]) Pop() (ret A, ok bool) {
	if len(s.items) <= 0 {
		return ret, false
	}
	lastIndex := len(s.items) - 1
	defer func() {
		s.items = s.items[:lastIndex]
	}()
	return s.items[len(s.items)-1], true
}

func (s *Stack[A]) Len() int {
	return len(s.items)
}

// Map replaces every item in place, keeping the order
func (s *Stack[A]) Map(f func(A) A) {
	for i, item := range s.items {
		s.items[i] = f(item)
	}
}
