package cmd

import (
	"github.com/google/subcommands"
)

// Commands lists the exl subcommands by group.
var Commands = map[string][]subcommands.Command{
	"ledgers": {
		&splitCmd{},
		&interestCmd{},
	},
	"help": {
		&exchangesCmd{},
		&topicCmd{},
	},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, group := range []string{"ledgers", "help"} {
		for _, cmd := range Commands[group] {
			c.Register(cmd, group)
		}
	}
}
