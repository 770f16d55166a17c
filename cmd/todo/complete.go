package main

import "strings"

var commands = []string{"add", "clear", "done", "exit", "help", "ls", "quit", "rm", "tag", "tags", "undo", "untag"}

func complete(line string) []string {
	var out []string
	for _, c := range commands {
		if strings.HasPrefix(c, strings.ToLower(line)) {
			out = append(out, c)
		}
	}
	return out
}
