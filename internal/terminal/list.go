package terminal

import (
	"strings"
)

var (
	listFields = []string{logFieldMessage, logFieldData}
)

type list struct {
	message string
	data    []string
}

func newList(message string, data []interface{}) list {
	l := list{message: message, data: make([]string, 0, len(data))}
	for _, item := range data {
		l.data = append(l.data, parseValue(item))
	}
	return l
}

func (l list) Message() (string, error) {
	rows := make([]string, 0, len(l.data)+1)
	rows = append(rows, l.message)
	for _, item := range l.data {
		rows = append(rows, Indent+item)
	}
	return strings.Join(rows, "\n"), nil
}

func (l list) Payload() ([]string, map[string]interface{}, error) {
	return listFields, map[string]interface{}{
		logFieldMessage: l.message,
		logFieldData:    l.data,
	}, nil
}
