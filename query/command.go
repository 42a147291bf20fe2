package query

import "fmt"

// Command is the kind of statement a State renders to.
type Command uint8

const (
	Select Command = iota
	Delete
	Insert
	Update
)

func (c Command) String() string {
	switch c {
	case Select:
		return "SELECT"
	case Delete:
		return "DELETE"
	case Insert:
		return "INSERT"
	case Update:
		return "UPDATE"
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}
