package util

import (
	"fmt"
	"iter"
	"strings"
)

func Reverse[A any](slice []A) iter.Seq[A] {
	return func(yield func(A) bool) {
		for i := len(slice) - 1; i >= 0; i-- {
			if !yield(slice[i]) {
				return
			}
		}
	}
}

// JoinString renders every element with fmt.Sprint and joins them with sep
func JoinString[A any](elems []A, sep string) string {
	sb := strings.Builder{}
	for i, e := range elems {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(fmt.Sprint(e))
	}
	return sb.String()
}
