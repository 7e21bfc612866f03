package assert

import "github.com/oomph-ac/puppeteer/oerror"

// IsTrue panics with an OomphError built from message if ok is false.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
