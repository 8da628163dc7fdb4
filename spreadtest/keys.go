package spreadtest

import (
	"crypto/rand"

	"github.com/iov-one/spread"
)

// NewCondition returns a random condition. Each call returns a
// different value.
func NewCondition() spread.Condition {
	data := make([]byte, 20)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return spread.NewCondition("mock", "random", data)
}

// NewAddress returns the address of a random condition.
func NewAddress() spread.Address {
	return NewCondition().Address()
}
