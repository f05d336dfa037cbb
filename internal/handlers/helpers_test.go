package handlers_test

import "fmt"

func withID(format string, id uint) string {
	return fmt.Sprintf(format, id)
}
