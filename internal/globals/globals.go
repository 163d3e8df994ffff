package globals

import "fmt"

var HadError bool

var ReportError = func(line int, message string) {
	fmt.Println(fmt.Sprintf("[line %d] Error: %s", line, message))
	HadError = true
}
