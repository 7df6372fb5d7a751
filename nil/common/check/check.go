package check

import "fmt"

// PanicIfErr panics if err is not nil.
// Use it only where an error means a programming or setup mistake that can't be handled.
func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}

func PanicIfNotf(flag bool, format string, args ...any) {
	if !flag {
		panic(fmt.Sprintf(format, args...))
	}
}
