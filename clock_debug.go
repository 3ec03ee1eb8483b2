//go:build clock_debug

package clock

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
