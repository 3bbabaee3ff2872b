package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// zipArgs lists the arguments of a zip transform call: the parent at index
// hot passes its fresh value, every other parent is read through Get.
func zipArgs(count, hot int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		if i == hot {
			sb.WriteString("v")
		} else {
			sb.WriteString("c")
		}
		sb.WriteString(strconv.Itoa(i))
		if i != hot {
			sb.WriteString(".Get()")
		}
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
