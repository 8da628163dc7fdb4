package x

import (
	"github.com/iov-one/spread"
)

//--------------- serialization stuff ---------------------

// MustMarshal will succeed or panic
func MustMarshal(obj spread.Marshaller) []byte {
	bz, err := obj.Marshal()
	if err != nil {
		panic(err)
	}
	return bz
}

// MustUnmarshal will succeed or panic
func MustUnmarshal(obj spread.Persistent, bz []byte) {
	err := obj.Unmarshal(bz)
	if err != nil {
		panic(err)
	}
}

//-------------------- Validation ---------

// Validater is any struct that can be validated.
// Not the same as a Validator, which votes on the blocks.
type Validater interface {
	Validate() error
}

// MustValidate panics if the object is not valid
func MustValidate(obj Validater) {
	err := obj.Validate()
	if err != nil {
		panic(err)
	}
}
