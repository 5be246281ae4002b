// Command apistruct sends requests to configured API endpoints and prints
// the decoded responses.
//
//	apistruct endpoints
//	apistruct get users 42 --param expand=posts
//	apistruct post users --data '{"name":"ann"}' --output yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
